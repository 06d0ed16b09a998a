package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// InterestIncome carries the interest figures feeding the 80TTA/80TTB
// exemption. Which section applies is decided purely by the employee's age.
type InterestIncome struct {
	SavingsAccount   domain.Money
	FixedDeposit     domain.Money
	RecurringDeposit domain.Money
	PostOffice       domain.Money
}

// Exemption computes the interest exemption. At or over the senior citizen
// age, 80TTB covers every interest source; below it, 80TTA covers savings
// account interest only and the remaining sources are excluded outright.
func (s InterestIncome) Exemption(regime domain.TaxRegime, limits StatutoryLimits, age int) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}

	if domain.IsSeniorCitizen(age) {
		total := s.SavingsAccount.
			Add(s.FixedDeposit).
			Add(s.RecurringDeposit).
			Add(s.PostOffice)
		eligible := total.Min(limits.SeniorInterestCap)
		tr.Put("80ttb/savings_account", s.SavingsAccount)
		tr.Put("80ttb/fixed_deposit", s.FixedDeposit)
		tr.Put("80ttb/recurring_deposit", s.RecurringDeposit)
		tr.Put("80ttb/post_office", s.PostOffice)
		tr.Put("80ttb/limit", limits.SeniorInterestCap)
		tr.Put("80ttb/eligible", eligible)
		return eligible, tr
	}

	eligible := s.SavingsAccount.Min(limits.SavingsInterestCap)
	tr.Put("80tta/savings_account", s.SavingsAccount)
	tr.Put("80tta/limit", limits.SavingsInterestCap)
	tr.Put("80tta/eligible", eligible)
	return eligible, tr
}
