package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type sectionInfo struct {
	code        string
	description string
}

var supportedSections = []sectionInfo{
	{"80C", "Investments in life insurance, PPF, ELSS, NSC and similar instruments"},
	{"80CCC", "Contributions to annuity pension funds"},
	{"80CCD(1)", "Employee contributions to the National Pension System"},
	{"80CCD(1B)", "Additional self contributions to the National Pension System"},
	{"80CCD(2)", "Employer contributions to the National Pension System"},
	{"80D", "Health insurance premiums and preventive checkups"},
	{"80DD", "Maintenance of a dependant with a disability"},
	{"80DDB", "Treatment of specified medical ailments"},
	{"80E", "Interest on education loans"},
	{"80EEB", "Interest on electric vehicle loans"},
	{"80G", "Donations to approved funds and charities"},
	{"80GGC", "Contributions to political parties"},
	{"80U", "Taxpayers with a disability"},
	{"80TTA", "Savings account interest for taxpayers below sixty"},
	{"80TTB", "Deposit interest for senior citizens"},
	{"HRA", "House rent allowance exemption"},
}

func NewSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the statutory sections the tool understands",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range supportedSections {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", s.code, s.description)
			}
			return nil
		},
	}
}
