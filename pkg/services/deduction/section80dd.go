package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// disabilityAmount maps a disability tier to its flat deduction. An unset
// tier contributes nothing.
func disabilityAmount(tier domain.DisabilityTier, limits StatutoryLimits) domain.Money {
	switch tier {
	case domain.DisabilityModerate:
		return limits.DisabilityModerateAmount
	case domain.DisabilitySevere:
		return limits.DisabilitySevereAmount
	default:
		return domain.ZeroINR()
	}
}

// Section80DD claims the flat deduction for maintenance of a disabled
// dependant. The amount depends only on the disability tier, not on actual
// expenses.
type Section80DD struct {
	Relation domain.Relation
	Tier     domain.DisabilityTier
}

// dependantRelations are the relations a dependant claim may name. Self is
// excluded; the employee's own disability is Section 80U's ground.
var dependantRelations = map[domain.Relation]struct{}{
	domain.RelationSpouse:  {},
	domain.RelationChild:   {},
	domain.RelationParent:  {},
	domain.RelationSibling: {},
}

func (s Section80DD) Eligible(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	if _, ok := dependantRelations[s.Relation]; !ok {
		return domain.ZeroINR(), tr
	}
	eligible := disabilityAmount(s.Tier, limits)
	tr.Put("80dd/relation", string(s.Relation))
	tr.Put("80dd/disability_tier", string(s.Tier))
	tr.Put("80dd/eligible", eligible)
	return eligible, tr
}
