package deduction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

var sectionTitles = map[string]string{
	"80c":     "Section 80C - Investments",
	"80ccc":   "Section 80CCC - Pension Fund",
	"80ccd1":  "Section 80CCD(1) - Employee NPS",
	"80ccd1b": "Section 80CCD(1B) - Additional NPS",
	"80ccd2":  "Section 80CCD(2) - Employer NPS",
	"80d":     "Section 80D - Health Insurance",
	"80dd":    "Section 80DD - Disabled Dependant",
	"80ddb":   "Section 80DDB - Medical Treatment",
	"80e":     "Section 80E - Education Loan",
	"80eeb":   "Section 80EEB - Electric Vehicle Loan",
	"80g":     "Section 80G - Donations",
	"80ggc":   "Section 80GGC - Political Party Contribution",
	"80u":     "Section 80U - Own Disability",
	"80tta":   "Section 80TTA - Savings Interest",
	"80ttb":   "Section 80TTB - Interest Income",
	"hra":     "HRA Exemption",
	"total":   "Totals",
}

// BuildStatement assembles a renderable statement from computed totals and
// the merged diagnostic trail, grouping trail entries by their section prefix
// in order of first appearance.
func BuildStatement(
	title string,
	regime domain.TaxRegime,
	grossIncome, totalDeductions, interestExemption domain.Money,
	tr domain.Trail,
) domain.Statement {
	st := domain.Statement{
		Title:             title,
		Regime:            regime,
		GrossIncome:       grossIncome,
		TotalDeductions:   totalDeductions,
		InterestExemption: interestExemption,
	}

	index := map[string]int{}
	for _, entry := range tr.Entries() {
		prefix, name := splitTrailKey(entry.Key)
		i, ok := index[prefix]
		if !ok {
			st.Sections = append(st.Sections, domain.StatementSection{Title: sectionTitle(prefix)})
			i = len(st.Sections) - 1
			index[prefix] = i
		}
		st.Sections[i].Lines = append(st.Sections[i].Lines, domain.StatementLine{
			Name:  name,
			Value: formatTrailValue(entry.Value),
		})
	}
	return st
}

func splitTrailKey(key string) (prefix, name string) {
	if i := strings.IndexByte(key, '/'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, key
}

func sectionTitle(prefix string) string {
	if title, ok := sectionTitles[prefix]; ok {
		return title
	}
	return strings.ToUpper(prefix)
}

func formatTrailValue(v any) string {
	switch value := v.(type) {
	case domain.Money:
		return value.String()
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
