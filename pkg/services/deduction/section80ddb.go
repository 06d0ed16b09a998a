package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Self-claims are assessed at a fixed reference age, so they always draw the
// under-60 expense cap. Only dependant claims consult DependantAge.
const selfReferenceAge = 30

// Section80DDB claims medical treatment expenses for specified diseases, for
// the employee or an eligible dependant.
type Section80DDB struct {
	MedicalExpense domain.Money
	Relation       domain.Relation
	DependantAge   int
}

func (s Section80DDB) Eligible(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	if _, ok := dependantRelations[s.Relation]; !ok && s.Relation != domain.RelationSelf {
		return domain.ZeroINR(), tr
	}

	age := selfReferenceAge
	if s.Relation != domain.RelationSelf {
		age = s.DependantAge
	}
	cap := limits.MedicalTreatmentCap
	if domain.IsSeniorCitizen(age) {
		cap = limits.MedicalTreatmentSeniorCap
	}

	eligible := s.MedicalExpense.Min(cap)
	tr.Put("80ddb/medical_expense", s.MedicalExpense)
	tr.Put("80ddb/relation", string(s.Relation))
	tr.Put("80ddb/limit", cap)
	tr.Put("80ddb/eligible", eligible)
	return eligible, tr
}
