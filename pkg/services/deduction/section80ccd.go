package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Section80CCD1 holds the employee's own NPS contribution. Uncapped at the
// section level; it shares the combined investment ceiling at the Ledger.
type Section80CCD1 struct {
	EmployeeContribution domain.Money
}

func (s Section80CCD1) Eligible(regime domain.TaxRegime, _ StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	tr.Put("80ccd1/employee_contribution", s.EmployeeContribution)
	tr.Put("80ccd1/eligible", s.EmployeeContribution)
	return s.EmployeeContribution, tr
}

// Section80CCD1B holds the additional NPS contribution with its own separate
// ceiling.
type Section80CCD1B struct {
	AdditionalContribution domain.Money
}

func (s Section80CCD1B) Eligible(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	eligible := s.AdditionalContribution.Min(limits.AdditionalNPSCap)
	tr.Put("80ccd1b/additional_contribution", s.AdditionalContribution)
	tr.Put("80ccd1b/limit", limits.AdditionalNPSCap)
	tr.Put("80ccd1b/eligible", eligible)
	return eligible, tr
}

// Section80CCD2 holds the employer's NPS contribution together with the
// salary context its cap is computed from.
type Section80CCD2 struct {
	EmployerContribution domain.Money
	BasicPlusDA          domain.Money
	GovernmentEmployee   bool
}

// salaryCap is the percentage-of-salary ceiling: 14% of basic+DA for
// government employees, 10% otherwise.
func (s Section80CCD2) salaryCap(limits StatutoryLimits) domain.Money {
	rate := limits.EmployerNPSDefaultRate
	if s.GovernmentEmployee {
		rate = limits.EmployerNPSGovtRate
	}
	return s.BasicPlusDA.Percent(rate)
}

// capped applies the salary ceiling without any regime gate. The Ledger uses
// it directly for the new-regime total, where this contribution is the only
// surviving deduction.
func (s Section80CCD2) capped(limits StatutoryLimits) domain.Money {
	return s.EmployerContribution.Min(s.salaryCap(limits))
}

func (s Section80CCD2) Eligible(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	eligible := s.capped(limits)
	tr.Put("80ccd2/employer_contribution", s.EmployerContribution)
	tr.Put("80ccd2/government_employee", s.GovernmentEmployee)
	tr.Put("80ccd2/salary_cap", s.salaryCap(limits))
	tr.Put("80ccd2/eligible", eligible)
	return eligible, tr
}
