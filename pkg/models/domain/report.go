package domain

// Statement represents a complete deduction computation rendered for audit or
// display.
type Statement struct {
	Title             string
	Regime            TaxRegime
	GrossIncome       Money
	TotalDeductions   Money
	InterestExemption Money
	Sections          []StatementSection
}

// StatementSection groups the figures of one statutory section.
type StatementSection struct {
	Title string
	Lines []StatementLine
}

// StatementLine is a single named figure within a section.
type StatementLine struct {
	Name  string
	Value string
}
