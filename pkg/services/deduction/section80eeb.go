package deduction

import (
	"time"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

// Section80EEB claims electric vehicle loan interest. The vehicle purchase
// must fall inside the statutory window, boundaries included.
type Section80EEB struct {
	LoanInterest domain.Money
	PurchaseDate time.Time
}

func (s Section80EEB) purchasedInWindow(limits StatutoryLimits) bool {
	return !s.PurchaseDate.Before(limits.EVPurchaseWindowStart) &&
		!s.PurchaseDate.After(limits.EVPurchaseWindowEnd)
}

func (s Section80EEB) Eligible(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	if s.PurchaseDate.IsZero() || !s.purchasedInWindow(limits) {
		return domain.ZeroINR(), tr
	}
	eligible := s.LoanInterest.Min(limits.EVLoanInterestCap)
	tr.Put("80eeb/loan_interest", s.LoanInterest)
	tr.Put("80eeb/purchase_date", s.PurchaseDate.Format("2006-01-02"))
	tr.Put("80eeb/limit", limits.EVLoanInterestCap)
	tr.Put("80eeb/eligible", eligible)
	return eligible, tr
}
