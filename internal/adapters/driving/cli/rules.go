package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered rules in execution order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if pipelineService == nil {
			return errors.New("pipeline service not configured")
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY\tRANK\tDESCRIPTION")
		for _, rule := range pipelineService.Rules() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", rule.ID, rule.Category, rule.OrderRank, rule.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
