package deduction

import (
	"testing"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection80C(t *testing.T) {
	limits := DefaultStatutoryLimits()
	section := Section80C{
		LifeInsurancePremium: domain.Rupees(80000),
		NSC:                  domain.Rupees(50000),
		ELSS:                 domain.Rupees(40000),
	}

	t.Run("old regime caps the bucket sum", func(t *testing.T) {
		eligible, tr := section.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(150000).Equal(eligible))

		total, ok := tr.Lookup("80c/total_invested")
		require.True(t, ok)
		assert.True(t, domain.Rupees(170000).Equal(total.(domain.Money)))
	})

	t.Run("new regime yields zero", func(t *testing.T) {
		eligible, tr := section.Eligible(domain.RegimeNew, limits)
		assert.True(t, eligible.IsZero())
		assert.Equal(t, 0, tr.Len())
	})

	t.Run("below the cap the sum passes through", func(t *testing.T) {
		small := Section80C{PublicProvidentFund: domain.Rupees(60000)}
		eligible, _ := small.Eligible(domain.RegimeOld, limits)
		assert.True(t, domain.Rupees(60000).Equal(eligible))
	})

	t.Run("zero value is an absent section", func(t *testing.T) {
		eligible, _ := Section80C{}.Eligible(domain.RegimeOld, limits)
		assert.True(t, eligible.IsZero())
	})
}
