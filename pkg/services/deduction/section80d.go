package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Section80D holds the health insurance premiums. The self+family limit is
// driven by the employee's age, passed in as context; the parent limit by the
// parent's age held here.
type Section80D struct {
	SelfFamilyPremium domain.Money
	ParentPremium     domain.Money
	PreventiveCheckup domain.Money
	ParentAge         int
}

func (s Section80D) premiumLimit(age int, limits StatutoryLimits) domain.Money {
	if domain.IsSeniorCitizen(age) {
		return limits.HealthPremiumSeniorCap
	}
	return limits.HealthPremiumCap
}

func (s Section80D) Eligible(regime domain.TaxRegime, limits StatutoryLimits, employeeAge int) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}

	selfLimit := s.premiumLimit(employeeAge, limits)
	selfEligible := s.SelfFamilyPremium.Min(selfLimit)
	tr.Put("80d/self_family_premium", s.SelfFamilyPremium)
	tr.Put("80d/self_family_limit", selfLimit)
	tr.Put("80d/self_family_eligible", selfEligible)

	// The preventive checkup claim consumes whatever headroom the self+family
	// premium left under its limit, up to the checkup ceiling.
	headroom := selfLimit.Sub(selfEligible).Max(domain.ZeroINR())
	checkupEligible := s.PreventiveCheckup.Min(limits.PreventiveCheckupCap).Min(headroom)
	tr.Put("80d/preventive_checkup", s.PreventiveCheckup)
	tr.Put("80d/preventive_checkup_eligible", checkupEligible)

	parentLimit := s.premiumLimit(s.ParentAge, limits)
	parentEligible := s.ParentPremium.Min(parentLimit)
	tr.Put("80d/parent_premium", s.ParentPremium)
	tr.Put("80d/parent_limit", parentLimit)
	tr.Put("80d/parent_eligible", parentEligible)

	eligible := selfEligible.Add(checkupEligible).Add(parentEligible)
	tr.Put("80d/eligible", eligible)
	return eligible, tr
}
