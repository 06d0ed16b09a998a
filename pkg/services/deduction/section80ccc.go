package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Section80CCC holds the pension fund contribution. It carries no cap of its
// own; the combined 80C/80CCC/80CCD(1) ceiling binds at the Ledger.
type Section80CCC struct {
	PensionFundContribution domain.Money
}

func (s Section80CCC) Eligible(regime domain.TaxRegime, _ StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	tr.Put("80ccc/pension_fund_contribution", s.PensionFundContribution)
	tr.Put("80ccc/eligible", s.PensionFundContribution)
	return s.PensionFundContribution, tr
}
