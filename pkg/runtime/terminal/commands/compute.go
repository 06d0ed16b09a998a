package commands

import (
	"fmt"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/fin-tools/tax-atlas/pkg/services/declaration"
	"github.com/fin-tools/tax-atlas/pkg/services/deduction"
	"github.com/spf13/cobra"
)

// Reporter renders a computed statement.
type Reporter interface {
	Handle(statement *domain.Statement) error
}

type ComputeCmd struct {
	declarationPath string
	regime          string
	age             int
	grossIncome     float64
	epf             float64
	exportTable     bool
	reporter        Reporter
	exporter        Reporter
}

func NewComputeCmd(reporter, exporter Reporter) *cobra.Command {
	cc := &ComputeCmd{reporter: reporter, exporter: exporter}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the deduction statement for a declaration file",
		RunE:  cc.run,
	}

	cmd.Flags().StringVarP(&cc.declarationPath, "file", "f", "", "Path to the declaration file")
	cmd.Flags().StringVar(&cc.regime, "regime", "", "Override the declared tax regime (old or new)")
	cmd.Flags().IntVar(&cc.age, "age", 0, "Override the declared employee age")
	cmd.Flags().Float64Var(&cc.grossIncome, "gross-income", 0, "Override the declared gross income")
	cmd.Flags().Float64Var(&cc.epf, "epf", 0, "Override the declared EPF employee contribution")
	cmd.Flags().BoolVar(&cc.exportTable, "export", false, "Render the statement as a table")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (cc *ComputeCmd) run(cmd *cobra.Command, args []string) error {
	decl, err := declaration.Load(cc.declarationPath)
	if err != nil {
		return fmt.Errorf("failed to read declaration: %w", err)
	}

	regime := decl.Regime
	if cc.regime != "" {
		regime, err = domain.ParseTaxRegime(cc.regime)
		if err != nil {
			return err
		}
	}
	age := decl.Age
	if cmd.Flags().Changed("age") {
		age = cc.age
	}
	grossIncome := decl.GrossIncome
	if cmd.Flags().Changed("gross-income") {
		grossIncome = domain.MoneyFromFloat(cc.grossIncome)
	}
	epf := decl.EPFEmployee
	if cmd.Flags().Changed("epf") {
		epf = domain.MoneyFromFloat(cc.epf)
	}

	total, trail := decl.Ledger.TotalDeductions(regime, age, grossIncome, epf)
	exemption, exemptionTrail := decl.Ledger.InterestExemption(regime, age)
	trail.Merge(exemptionTrail)
	_, hraTrail := decl.Ledger.HRAExemption(regime)
	trail.Merge(hraTrail)

	statement := deduction.BuildStatement(
		"Deduction Statement", regime, grossIncome, total, exemption, trail)

	if cc.exportTable {
		return cc.exporter.Handle(&statement)
	}
	return cc.reporter.Handle(&statement)
}
