package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// Section80E claims education loan interest. No cap applies; the loan must be
// for the employee, spouse or a child.
type Section80E struct {
	LoanInterest domain.Money
	Relation     domain.Relation
}

var educationLoanRelations = map[domain.Relation]struct{}{
	domain.RelationSelf:   {},
	domain.RelationSpouse: {},
	domain.RelationChild:  {},
}

func (s Section80E) Eligible(regime domain.TaxRegime, _ StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}
	if _, ok := educationLoanRelations[s.Relation]; !ok {
		return domain.ZeroINR(), tr
	}
	tr.Put("80e/loan_interest", s.LoanInterest)
	tr.Put("80e/relation", string(s.Relation))
	tr.Put("80e/eligible", s.LoanInterest)
	return s.LoanInterest, tr
}
