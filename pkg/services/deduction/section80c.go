package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Section80C holds the eleven investment buckets claimable under Section 80C.
// The zero value is an absent section.
type Section80C struct {
	LifeInsurancePremium domain.Money
	PublicProvidentFund  domain.Money
	ELSS                 domain.Money
	NSC                  domain.Money
	SukanyaSamriddhi     domain.Money
	TaxSaverFD           domain.Money
	HomeLoanPrincipal    domain.Money
	TuitionFees          domain.Money
	ULIP                 domain.Money
	SeniorCitizenSavings domain.Money
	InfrastructureBonds  domain.Money
}

// Total sums all buckets without applying any cap.
func (s Section80C) Total() domain.Money {
	return s.LifeInsurancePremium.
		Add(s.PublicProvidentFund).
		Add(s.ELSS).
		Add(s.NSC).
		Add(s.SukanyaSamriddhi).
		Add(s.TaxSaverFD).
		Add(s.HomeLoanPrincipal).
		Add(s.TuitionFees).
		Add(s.ULIP).
		Add(s.SeniorCitizenSavings).
		Add(s.InfrastructureBonds)
}

// Eligible caps the bucket sum at the section limit. The cap shared with
// 80CCC and 80CCD(1) is applied by the Ledger, not here.
func (s Section80C) Eligible(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}

	tr.Put("80c/life_insurance_premium", s.LifeInsurancePremium)
	tr.Put("80c/public_provident_fund", s.PublicProvidentFund)
	tr.Put("80c/elss", s.ELSS)
	tr.Put("80c/nsc", s.NSC)
	tr.Put("80c/sukanya_samriddhi", s.SukanyaSamriddhi)
	tr.Put("80c/tax_saver_fd", s.TaxSaverFD)
	tr.Put("80c/home_loan_principal", s.HomeLoanPrincipal)
	tr.Put("80c/tuition_fees", s.TuitionFees)
	tr.Put("80c/ulip", s.ULIP)
	tr.Put("80c/senior_citizen_savings", s.SeniorCitizenSavings)
	tr.Put("80c/infrastructure_bonds", s.InfrastructureBonds)

	total := s.Total()
	eligible := total.Min(limits.CombinedInvestmentCap)
	tr.Put("80c/total_invested", total)
	tr.Put("80c/section_limit", limits.CombinedInvestmentCap)
	tr.Put("80c/eligible", eligible)
	return eligible, tr
}
