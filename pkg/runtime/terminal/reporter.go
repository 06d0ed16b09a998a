package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

// Reporter outputs statements to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(statement *domain.Statement) error {
	tmpl := `
{{.Title}} ({{.Regime}} regime)
Gross Income: {{.GrossIncome}}
Total Deductions: {{.TotalDeductions}}
Interest Exemption: {{.InterestExemption}}

{{range .Sections}}
=== {{.Title}} ===
{{range .Lines}}
- {{.Name}}: {{.Value}}
{{end}}
{{end}}
`
	t, err := template.New("statement").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, statement)
}
