package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Section80GGC claims contributions to registered political parties.
// Uncapped; verifying the non-cash payment mode is the caller's concern.
type Section80GGC struct {
	PartyContribution domain.Money
}

func (s Section80GGC) Eligible(regime domain.TaxRegime, _ StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	tr.Put("80ggc/party_contribution", s.PartyContribution)
	tr.Put("80ggc/eligible", s.PartyContribution)
	return s.PartyContribution, tr
}
