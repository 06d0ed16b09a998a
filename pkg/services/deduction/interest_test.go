package deduction

import (
	"testing"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestExemptionAgeSwitch(t *testing.T) {
	limits := DefaultStatutoryLimits()
	income := InterestIncome{
		SavingsAccount:   domain.Rupees(8000),
		FixedDeposit:     domain.Rupees(20000),
		RecurringDeposit: domain.Rupees(5000),
		PostOffice:       domain.Rupees(2000),
	}

	t.Run("senior citizens claim every source under 80TTB", func(t *testing.T) {
		eligible, tr := income.Exemption(domain.RegimeOld, limits, 65)
		assert.True(t, domain.Rupees(35000).Equal(eligible))
		_, ok := tr.Lookup("80ttb/eligible")
		require.True(t, ok)
	})

	t.Run("80TTB cap binds", func(t *testing.T) {
		heavy := income
		heavy.FixedDeposit = domain.Rupees(60000)
		eligible, _ := heavy.Exemption(domain.RegimeOld, limits, 65)
		assert.True(t, domain.Rupees(50000).Equal(eligible))
	})

	t.Run("under 60 only savings interest counts", func(t *testing.T) {
		younger := InterestIncome{
			SavingsAccount:   domain.Rupees(12000),
			FixedDeposit:     domain.Rupees(50000),
			RecurringDeposit: domain.Rupees(5000),
			PostOffice:       domain.Rupees(2000),
		}
		eligible, tr := younger.Exemption(domain.RegimeOld, limits, 45)
		assert.True(t, domain.Rupees(10000).Equal(eligible))
		_, ok := tr.Lookup("80tta/eligible")
		require.True(t, ok)
		_, ok = tr.Lookup("80ttb/eligible")
		assert.False(t, ok)
	})

	t.Run("new regime yields zero", func(t *testing.T) {
		eligible, _ := income.Exemption(domain.RegimeNew, limits, 65)
		assert.True(t, eligible.IsZero())
	})
}
