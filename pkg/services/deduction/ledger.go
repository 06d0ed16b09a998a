// Package deduction implements the statutory deduction and exemption
// calculators of the Indian Income Tax Act and the ledger that aggregates
// them. Everything in this package is pure computation over immutable inputs:
// no I/O, no shared state, safe for concurrent use across independent calls.
package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Ledger composes the optional statutory sections declared by one employee.
// Absent sections stay at their zero value and contribute nothing; there are
// no nil section references anywhere.
type Ledger struct {
	// Limits override the statutory amounts. The zero value falls back to
	// DefaultStatutoryLimits.
	Limits StatutoryLimits

	Investments         Section80C
	PensionFund         Section80CCC
	NPSEmployee         Section80CCD1
	NPSAdditional       Section80CCD1B
	NPSEmployer         Section80CCD2
	HealthInsurance     Section80D
	DisabledDependant   Section80DD
	MedicalTreatment    Section80DDB
	EducationLoan       Section80E
	ElectricVehicleLoan Section80EEB
	Donations           Section80G
	PartyContribution   Section80GGC
	OwnDisability       Section80U
	Interest            InterestIncome
	HouseRent           HouseRentStatement

	// OtherDeductions is a free-form bucket for deductions with no dedicated
	// calculator.
	OtherDeductions domain.Money
}

func (l Ledger) effectiveLimits() StatutoryLimits {
	if l.Limits.CombinedInvestmentCap.IsZero() {
		return DefaultStatutoryLimits()
	}
	return l.Limits
}

// TotalDeductions computes the total deduction against gross total income and
// the full diagnostic trail of the computation.
//
// Under the new regime only the employer NPS contribution survives. That
// figure is derived here with its salary cap applied, outside the section
// gate that zeroes every calculator for the new regime.
//
// Under the old regime the 80C buckets, 80CCC, 80CCD(1) and the EPF employee
// contribution share one combined ceiling; every other section is added on
// top, and 80G is seeded last with the income remaining after all of them.
func (l Ledger) TotalDeductions(regime domain.TaxRegime, age int, grossIncome, epfEmployee domain.Money) (domain.Money, domain.Trail) {
	limits := l.effectiveLimits()
	var tr domain.Trail

	if !regime.AllowsDeductions() {
		total := l.NPSEmployer.capped(limits)
		tr.Put("total/employer_nps_contribution", total)
		tr.Put("total/total_deductions", total)
		return total, tr
	}

	total := domain.ZeroINR()
	add := func(amount domain.Money, fragment domain.Trail) {
		tr.Merge(fragment)
		total = total.Add(amount)
	}

	// Combined cap group. The section fragments are merged for the audit
	// trail, but the group is built from the raw amounts: the ceiling binds
	// once, across all four contributors.
	_, cTrail := l.Investments.Eligible(regime, limits)
	tr.Merge(cTrail)
	_, cccTrail := l.PensionFund.Eligible(regime, limits)
	tr.Merge(cccTrail)
	_, ccd1Trail := l.NPSEmployee.Eligible(regime, limits)
	tr.Merge(ccd1Trail)

	group := epfEmployee.
		Add(l.Investments.Total()).
		Add(l.PensionFund.PensionFundContribution).
		Add(l.NPSEmployee.EmployeeContribution).
		Min(limits.CombinedInvestmentCap)
	tr.Put("total/epf_employee_contribution", epfEmployee)
	tr.Put("total/combined_cap_group", group)
	total = total.Add(group)

	add(l.NPSAdditional.Eligible(regime, limits))
	add(l.NPSEmployer.Eligible(regime, limits))
	add(l.HealthInsurance.Eligible(regime, limits, age))
	add(l.DisabledDependant.Eligible(regime, limits))
	add(l.MedicalTreatment.Eligible(regime, limits))
	add(l.EducationLoan.Eligible(regime, limits))
	add(l.ElectricVehicleLoan.Eligible(regime, limits))
	add(l.PartyContribution.Eligible(regime, limits))
	add(l.OwnDisability.Eligible(regime, limits))

	total = total.Add(l.OtherDeductions)
	tr.Put("total/other_deductions", l.OtherDeductions)

	// 80G goes last: its qualifying limit is a percentage of income net of
	// every other deduction. Computed in a single pass, without iterating to
	// a fixed point over 80G's own effect on that base.
	adjustedGrossIncome := grossIncome.Sub(total).Max(domain.ZeroINR())
	tr.Put("total/adjusted_gross_income", adjustedGrossIncome)
	add(l.Donations.Eligible(regime, limits, adjustedGrossIncome))

	tr.Put("total/total_deductions", total)
	return total, tr
}

// InterestExemption computes the 80TTA/80TTB exemption. It is an exemption
// against other income, not a deduction, and never enters TotalDeductions.
func (l Ledger) InterestExemption(regime domain.TaxRegime, age int) (domain.Money, domain.Trail) {
	return l.Interest.Exemption(regime, l.effectiveLimits(), age)
}

// HRAExemption computes the house rent allowance exemption. Like the interest
// exemption it applies against salary income, outside TotalDeductions.
func (l Ledger) HRAExemption(regime domain.TaxRegime) (domain.Money, domain.Trail) {
	return l.HouseRent.Exemption(regime, l.effectiveLimits())
}
