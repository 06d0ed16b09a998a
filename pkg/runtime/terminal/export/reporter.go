package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  44,
		ValueWidth: 24,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(statement *domain.Statement) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value string) string {
			return fmt.Sprintf("| %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `
{{.Title}} ({{.Regime}} regime)

Gross Income: {{.GrossIncome}}
Total Deductions: {{.TotalDeductions}}
Interest Exemption: {{.InterestExemption}}

{{range .Sections}}
=== {{.Title}} ===
{{separator}}
{{formatRow "Name" "Value"}}
{{separator}}
{{range .Lines}}{{formatRow .Name .Value}}
{{end}}{{separator}}
{{end}}
`

	t, err := template.New("statement").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, statement)
}
