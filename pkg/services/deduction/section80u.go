package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Section80U claims the flat deduction for the employee's own disability,
// with the same tier amounts as 80DD.
type Section80U struct {
	Tier domain.DisabilityTier
}

func (s Section80U) Eligible(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	eligible := disabilityAmount(s.Tier, limits)
	if eligible.IsZero() {
		return eligible, tr
	}
	tr.Put("80u/disability_tier", string(s.Tier))
	tr.Put("80u/eligible", eligible)
	return eligible, tr
}
