package deduction

import (
	"testing"
	"time"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestSection80CCD2SalaryCap(t *testing.T) {
	limits := DefaultStatutoryLimits()
	section := Section80CCD2{
		EmployerContribution: domain.Rupees(90000),
		BasicPlusDA:          domain.Rupees(600000),
	}

	t.Run("non-government cap is 10 percent", func(t *testing.T) {
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(60000).Equal(eligible))
	})

	t.Run("government cap is 14 percent", func(t *testing.T) {
		govt := section
		govt.GovernmentEmployee = true
		eligible, _ := govt.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(84000).Equal(eligible))
	})

	t.Run("contribution under the cap passes through", func(t *testing.T) {
		small := Section80CCD2{
			EmployerContribution: domain.Rupees(30000),
			BasicPlusDA:          domain.Rupees(600000),
		}
		eligible, _ := small.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(30000).Equal(eligible))
	})
}

func TestSection80CCD1B(t *testing.T) {
	limits := DefaultStatutoryLimits()
	eligible, _ := Section80CCD1B{AdditionalContribution: domain.Rupees(70000)}.
		Eligible(domain.RegimeOld, limits)
	assert.True(t, domain.Rupees(50000).Equal(eligible))
}

func TestSection80DD(t *testing.T) {
	limits := DefaultStatutoryLimits()

	t.Run("severe disability of a child is a flat amount", func(t *testing.T) {
		section := Section80DD{Relation: domain.RelationChild, Tier: domain.DisabilitySevere}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(125000).Equal(eligible))
	})

	t.Run("moderate disability", func(t *testing.T) {
		section := Section80DD{Relation: domain.RelationParent, Tier: domain.DisabilityModerate}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(75000).Equal(eligible))
	})

	t.Run("self is not an eligible dependant", func(t *testing.T) {
		section := Section80DD{Relation: domain.RelationSelf, Tier: domain.DisabilitySevere}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, eligible.IsZero())
	})

	t.Run("new regime yields zero", func(t *testing.T) {
		section := Section80DD{Relation: domain.RelationChild, Tier: domain.DisabilitySevere}
		eligible, _ := section.Eligible(domain.RegimeNew, limits)
		assert.True(t, eligible.IsZero())
	})
}

func TestSection80DDB(t *testing.T) {
	limits := DefaultStatutoryLimits()

	t.Run("senior dependant draws the higher cap", func(t *testing.T) {
		section := Section80DDB{
			MedicalExpense: domain.Rupees(120000),
			Relation:       domain.RelationParent,
			DependantAge:   70,
		}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(100000).Equal(eligible))
	})

	t.Run("self claims use the under-60 cap regardless of expense", func(t *testing.T) {
		section := Section80DDB{
			MedicalExpense: domain.Rupees(90000),
			Relation:       domain.RelationSelf,
		}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(40000).Equal(eligible))
	})

	t.Run("unset relation contributes nothing", func(t *testing.T) {
		eligible, _ := Section80DDB{MedicalExpense: domain.Rupees(50000)}.
			Eligible(domain.RegimeOld, limits)
		assert.True(t, eligible.IsZero())
	})
}

func TestSection80E(t *testing.T) {
	limits := DefaultStatutoryLimits()

	t.Run("uncapped for an eligible relation", func(t *testing.T) {
		section := Section80E{LoanInterest: domain.Rupees(400000), Relation: domain.RelationChild}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(400000).Equal(eligible))
	})

	t.Run("parent loans are not eligible", func(t *testing.T) {
		section := Section80E{LoanInterest: domain.Rupees(400000), Relation: domain.RelationParent}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, eligible.IsZero())
	})
}

func TestSection80EEB(t *testing.T) {
	limits := DefaultStatutoryLimits()

	t.Run("interest capped inside the purchase window", func(t *testing.T) {
		section := Section80EEB{
			LoanInterest: domain.Rupees(180000),
			PurchaseDate: time.Date(2022, time.June, 15, 0, 0, 0, 0, time.UTC),
		}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(150000).Equal(eligible))
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		for _, date := range []time.Time{
			time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		} {
			section := Section80EEB{LoanInterest: domain.Rupees(50000), PurchaseDate: date}
			eligible, _ := section.Eligible(domain.RegimeOld, limits)
			assert.True(t, domain.Rupees(50000).Equal(eligible), date)
		}
	})

	t.Run("purchase outside the window contributes nothing", func(t *testing.T) {
		section := Section80EEB{
			LoanInterest: domain.Rupees(50000),
			PurchaseDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		}
		eligible, _ := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, eligible.IsZero())
	})
}

func TestSection80G(t *testing.T) {
	limits := DefaultStatutoryLimits()
	income := domain.Rupees(1000000) // qualifying limit 100000

	t.Run("four categories combine", func(t *testing.T) {
		section := Section80G{
			FullExemption: FullExemptionFunds{PMNationalReliefFund: domain.Rupees(20000)},
			HalfExemption: HalfExemptionFunds{PMDroughtReliefFund: domain.Rupees(10000)},
			FullExemptionWithLimit: FullExemptionCauses{
				FamilyPlanningAssociation: domain.Rupees(150000),
			},
			HalfExemptionWithLimit: HalfExemptionCauses{
				CharitableInstitutions: domain.Rupees(80000),
			},
		}
		// 20000 + 5000 + min(150000, 100000) + min(40000, 100000) = 165000
		eligible, _ := section.Eligible(domain.RegimeOld, limits, income)
		assert.True(t, domain.Rupees(165000).Equal(eligible))
	})

	t.Run("qualifying limit binds the half-exemption causes", func(t *testing.T) {
		section := Section80G{
			HalfExemptionWithLimit: HalfExemptionCauses{
				ReligiousPlaceRenovation: domain.Rupees(300000),
			},
		}
		// min(150000, 100000) = 100000
		eligible, _ := section.Eligible(domain.RegimeOld, limits, income)
		assert.True(t, domain.Rupees(100000).Equal(eligible))
	})

	t.Run("listed funds ignore the qualifying limit", func(t *testing.T) {
		section := Section80G{
			FullExemption: FullExemptionFunds{NationalDefenceFund: domain.Rupees(500000)},
		}
		eligible, _ := section.Eligible(domain.RegimeOld, limits, income)
		assert.True(t, domain.Rupees(500000).Equal(eligible))
	})
}

func TestSection80GGCAndU(t *testing.T) {
	limits := DefaultStatutoryLimits()

	eligible, _ := Section80GGC{PartyContribution: domain.Rupees(200000)}.
		Eligible(domain.RegimeOld, limits)
	assert.True(t, domain.Rupees(200000).Equal(eligible))

	eligible, _ = Section80U{Tier: domain.DisabilitySevere}.Eligible(domain.RegimeOld, limits)
	assert.True(t, domain.Rupees(125000).Equal(eligible))

	eligible, _ = Section80U{}.Eligible(domain.RegimeOld, limits)
	assert.True(t, eligible.IsZero())
}
