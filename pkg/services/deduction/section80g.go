package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// FullExemptionFunds are the listed funds deductible at 100% with no
// income-based qualifying limit.
type FullExemptionFunds struct {
	NationalDefenceFund               domain.Money
	PMNationalReliefFund              domain.Money
	NationalFoundationCommunalHarmony domain.Money
	ZilaSakshartaSamiti               domain.Money
	NationalIllnessAssistanceFund     domain.Money
	SwachhBharatKosh                  domain.Money
	CleanGangaFund                    domain.Money
	NationalChildrenFund              domain.Money
	ArmyCentralWelfareFund            domain.Money
	ChiefMinisterReliefFund           domain.Money
}

func (f FullExemptionFunds) Total() domain.Money {
	return f.NationalDefenceFund.
		Add(f.PMNationalReliefFund).
		Add(f.NationalFoundationCommunalHarmony).
		Add(f.ZilaSakshartaSamiti).
		Add(f.NationalIllnessAssistanceFund).
		Add(f.SwachhBharatKosh).
		Add(f.CleanGangaFund).
		Add(f.NationalChildrenFund).
		Add(f.ArmyCentralWelfareFund).
		Add(f.ChiefMinisterReliefFund)
}

// HalfExemptionFunds are the listed funds deductible at 50% with no
// income-based qualifying limit.
type HalfExemptionFunds struct {
	JawaharlalNehruMemorialFund domain.Money
	PMDroughtReliefFund         domain.Money
	IndiraGandhiMemorialTrust   domain.Money
	RajivGandhiFoundation       domain.Money
}

func (f HalfExemptionFunds) Total() domain.Money {
	return f.JawaharlalNehruMemorialFund.
		Add(f.PMDroughtReliefFund).
		Add(f.IndiraGandhiMemorialTrust).
		Add(f.RajivGandhiFoundation)
}

// FullExemptionCauses are deductible at 100% but capped by the qualifying
// limit of 10% of adjusted gross income.
type FullExemptionCauses struct {
	FamilyPlanningAssociation domain.Money
	IndianOlympicAssociation  domain.Money
	SportsDevelopmentFund     domain.Money
}

func (f FullExemptionCauses) Total() domain.Money {
	return f.FamilyPlanningAssociation.
		Add(f.IndianOlympicAssociation).
		Add(f.SportsDevelopmentFund)
}

// HalfExemptionCauses are deductible at 50%, capped by the same qualifying
// limit.
type HalfExemptionCauses struct {
	CharitableInstitutions      domain.Money
	ReligiousPlaceRenovation    domain.Money
	HousingDevelopmentAuthority domain.Money
	MinorityCorporation         domain.Money
	GovernmentCharitablePurpose domain.Money
}

func (f HalfExemptionCauses) Total() domain.Money {
	return f.CharitableInstitutions.
		Add(f.ReligiousPlaceRenovation).
		Add(f.HousingDevelopmentAuthority).
		Add(f.MinorityCorporation).
		Add(f.GovernmentCharitablePurpose)
}

// Section80G holds donations in the four legally distinct categories.
type Section80G struct {
	FullExemption          FullExemptionFunds
	HalfExemption          HalfExemptionFunds
	FullExemptionWithLimit FullExemptionCauses
	HalfExemptionWithLimit HalfExemptionCauses
}

// Eligible needs the adjusted gross income base to derive the qualifying
// limit for the last two categories.
func (s Section80G) Eligible(regime domain.TaxRegime, limits StatutoryLimits, adjustedGrossIncome domain.Money) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}

	qualifyingLimit := adjustedGrossIncome.Percent(limits.DonationIncomeLimitRate)
	tr.Put("80g/adjusted_gross_income", adjustedGrossIncome)
	tr.Put("80g/qualifying_limit", qualifyingLimit)

	fullNoLimit := s.FullExemption.Total()
	halfNoLimit := s.HalfExemption.Total().Percent(50)
	fullLimited := s.FullExemptionWithLimit.Total().Min(qualifyingLimit)
	halfLimited := s.HalfExemptionWithLimit.Total().Percent(50).Min(qualifyingLimit)

	tr.Put("80g/full_exemption", fullNoLimit)
	tr.Put("80g/half_exemption", halfNoLimit)
	tr.Put("80g/full_exemption_with_limit", fullLimited)
	tr.Put("80g/half_exemption_with_limit", halfLimited)

	eligible := fullNoLimit.Add(halfNoLimit).Add(fullLimited).Add(halfLimited)
	tr.Put("80g/eligible", eligible)
	return eligible, tr
}
