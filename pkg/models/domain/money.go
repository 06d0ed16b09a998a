package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point rupee amount. The currency is always INR; the engine
// never mixes currencies, so Money carries only the magnitude.
type Money struct {
	amount decimal.Decimal
}

// ZeroINR returns a zero rupee amount. The zero value of Money is equivalent.
func ZeroINR() Money {
	return Money{}
}

// Rupees builds a Money from a whole rupee amount.
func Rupees(r int64) Money {
	return Money{amount: decimal.NewFromInt(r)}
}

// MoneyFromFloat builds a Money from a float rupee amount.
func MoneyFromFloat(r float64) Money {
	return Money{amount: decimal.NewFromFloat(r)}
}

// MoneyFromString parses a decimal rupee amount such as "25000" or "1250.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub subtracts other from m. The result may be negative; callers that must
// stay non-negative clamp with Max(ZeroINR()).
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) Min(other Money) Money {
	if m.amount.LessThan(other.amount) {
		return m
	}
	return other
}

func (m Money) Max(other Money) Money {
	if m.amount.GreaterThan(other.amount) {
		return m
	}
	return other
}

// Percent returns p percent of m, e.g. Rupees(30000).Percent(10) == Rupees(3000).
func (m Money) Percent(p int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(p)).Div(decimal.NewFromInt(100))}
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return "INR " + m.amount.StringFixed(2)
}

// MarshalJSON renders the amount as a quoted decimal string, e.g. "150000.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.amount.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("failed to parse money value %s: %w", string(data), err)
	}
	m.amount = d
	return nil
}
