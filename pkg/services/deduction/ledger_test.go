package deduction

import (
	"testing"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCombinedCap(t *testing.T) {
	ledger := Ledger{
		Investments: Section80C{PublicProvidentFund: domain.Rupees(150000)},
		PensionFund: Section80CCC{PensionFundContribution: domain.Rupees(100000)},
		NPSEmployee: Section80CCD1{EmployeeContribution: domain.Rupees(100000)},
	}

	total, tr := ledger.TotalDeductions(
		domain.RegimeOld, 40, domain.Rupees(2000000), domain.Rupees(50000))

	// 150000 + 100000 + 100000 + 50000 EPF collapses to the single ceiling.
	assert.True(t, domain.Rupees(150000).Equal(total))

	group, ok := tr.Lookup("total/combined_cap_group")
	require.True(t, ok)
	assert.True(t, domain.Rupees(150000).Equal(group.(domain.Money)))
}

func TestLedgerNewRegime(t *testing.T) {
	ledger := Ledger{
		Investments: Section80C{ELSS: domain.Rupees(150000)},
		HealthInsurance: Section80D{
			SelfFamilyPremium: domain.Rupees(25000),
		},
		NPSEmployer: Section80CCD2{
			EmployerContribution: domain.Rupees(90000),
			BasicPlusDA:          domain.Rupees(600000),
		},
	}

	t.Run("only the employer NPS contribution survives", func(t *testing.T) {
		total, tr := ledger.TotalDeductions(
			domain.RegimeNew, 40, domain.Rupees(1200000), domain.Rupees(50000))
		assert.True(t, domain.Rupees(60000).Equal(total))

		_, ok := tr.Lookup("total/employer_nps_contribution")
		assert.True(t, ok)
	})

	t.Run("without an employer contribution the total is zero", func(t *testing.T) {
		bare := Ledger{Investments: Section80C{ELSS: domain.Rupees(150000)}}
		total, _ := bare.TotalDeductions(
			domain.RegimeNew, 40, domain.Rupees(1200000), domain.Rupees(50000))
		assert.True(t, total.IsZero())
	})

	t.Run("interest exemption is zero under the new regime", func(t *testing.T) {
		withInterest := ledger
		withInterest.Interest = InterestIncome{SavingsAccount: domain.Rupees(9000)}
		exemption, _ := withInterest.InterestExemption(domain.RegimeNew, 40)
		assert.True(t, exemption.IsZero())
	})
}

func TestLedgerOldRegimeComposition(t *testing.T) {
	ledger := Ledger{
		Investments: Section80C{
			LifeInsurancePremium: domain.Rupees(80000),
			NSC:                  domain.Rupees(50000),
			ELSS:                 domain.Rupees(40000),
		},
		EducationLoan: Section80E{
			LoanInterest: domain.Rupees(50000),
			Relation:     domain.RelationChild,
		},
		Donations: Section80G{
			FullExemptionWithLimit: FullExemptionCauses{
				FamilyPlanningAssociation: domain.Rupees(200000),
			},
		},
	}

	total, tr := ledger.TotalDeductions(
		domain.RegimeOld, 40, domain.Rupees(1200000), domain.ZeroINR())

	// Combined group 150000 + 80E 50000 leaves an adjusted gross income of
	// 1000000, so the 80G qualifying limit caps the donation at 100000.
	assert.True(t, domain.Rupees(300000).Equal(total))

	agi, ok := tr.Lookup("total/adjusted_gross_income")
	require.True(t, ok)
	assert.True(t, domain.Rupees(1000000).Equal(agi.(domain.Money)))

	reported, ok := tr.Lookup("total/total_deductions")
	require.True(t, ok)
	assert.True(t, total.Equal(reported.(domain.Money)))
}

func TestLedgerOtherDeductionsAndExemptions(t *testing.T) {
	ledger := Ledger{
		OtherDeductions: domain.Rupees(12000),
		Interest:        InterestIncome{SavingsAccount: domain.Rupees(9000)},
	}

	total, _ := ledger.TotalDeductions(
		domain.RegimeOld, 40, domain.Rupees(800000), domain.ZeroINR())

	// The interest exemption never enters the deduction total.
	assert.True(t, domain.Rupees(12000).Equal(total))

	exemption, _ := ledger.InterestExemption(domain.RegimeOld, 40)
	assert.True(t, domain.Rupees(9000).Equal(exemption))
}

func TestLedgerIdempotence(t *testing.T) {
	ledger := Ledger{
		Investments:   Section80C{ELSS: domain.Rupees(90000)},
		OwnDisability: Section80U{Tier: domain.DisabilityModerate},
	}

	first, firstTrail := ledger.TotalDeductions(
		domain.RegimeOld, 40, domain.Rupees(900000), domain.Rupees(20000))
	second, secondTrail := ledger.TotalDeductions(
		domain.RegimeOld, 40, domain.Rupees(900000), domain.Rupees(20000))

	assert.True(t, first.Equal(second))
	assert.Equal(t, firstTrail.Len(), secondTrail.Len())
}

func TestLedgerMonotonicity(t *testing.T) {
	base := Ledger{
		EducationLoan: Section80E{
			LoanInterest: domain.Rupees(40000),
			Relation:     domain.RelationSelf,
		},
		Donations: Section80G{
			HalfExemptionWithLimit: HalfExemptionCauses{
				CharitableInstitutions: domain.Rupees(400000),
			},
		},
	}
	gross := domain.Rupees(1000000)

	before, _ := base.TotalDeductions(domain.RegimeOld, 40, gross, domain.ZeroINR())

	// Raising the loan interest shrinks 80G's qualifying limit, but the
	// aggregate total still never decreases.
	increased := base
	increased.EducationLoan.LoanInterest = domain.Rupees(90000)
	after, _ := increased.TotalDeductions(domain.RegimeOld, 40, gross, domain.ZeroINR())

	assert.False(t, before.GreaterThan(after))
}

func TestLedgerCustomLimits(t *testing.T) {
	limits := DefaultStatutoryLimits()
	limits.CombinedInvestmentCap = domain.Rupees(200000)

	ledger := Ledger{
		Limits:      limits,
		Investments: Section80C{PublicProvidentFund: domain.Rupees(250000)},
	}

	total, _ := ledger.TotalDeductions(
		domain.RegimeOld, 40, domain.Rupees(900000), domain.ZeroINR())
	assert.True(t, domain.Rupees(200000).Equal(total))
}
