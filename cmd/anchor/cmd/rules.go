package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "list the available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := a.dispatcher.Rules()
			for _, name := range table.Names() {
				// Names only lists registered rules.
				rule, _ := table.Lookup(name)
				if rule.TakesParam {
					fmt.Fprintf(cmd.OutOrStdout(), "%s[:param]\n", name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
