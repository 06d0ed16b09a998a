package domain

// TaxRegime selects between the two mutually exclusive personal income tax
// computation modes.
type TaxRegime string

const (
	RegimeOld TaxRegime = "old"
	RegimeNew TaxRegime = "new"
)

// ParseTaxRegime validates a raw regime string.
func ParseTaxRegime(s string) (TaxRegime, error) {
	switch TaxRegime(s) {
	case RegimeOld:
		return RegimeOld, nil
	case RegimeNew:
		return RegimeNew, nil
	default:
		return "", &ValidationError{Field: "regime", Reason: "must be one of: old, new"}
	}
}

// AllowsDeductions reports whether itemized deductions apply at all under this
// regime. Every section calculator gates on this single capability rather than
// comparing regime tags locally.
func (r TaxRegime) AllowsDeductions() bool {
	return r == RegimeOld
}

func (r TaxRegime) String() string {
	return string(r)
}
