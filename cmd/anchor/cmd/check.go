package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	anchor "github.com/SimonDaKappa/go-anchor"
	"github.com/SimonDaKappa/go-anchor/internal/logger"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		flagRule string
		flagJSON bool
		flagPath string
	)

	cmd := &cobra.Command{
		Use:   "check VALUE",
		Short: "check one value against one rule",
		Long: `Check one value against one rule.

VALUE is taken as a string unless --json is given, in which case it is parsed
as a JSON document and the value at --path (default: the whole document) is
checked. The rule is a rule reference such as "email", "uuid:4" or
"after:'2020-01-01 10:00:00'".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := anchor.ParseRuleRef(flagRule)
			if err != nil {
				return err
			}

			var wrapped *anchor.Anchor
			if flagJSON {
				wrapped, err = a.dispatcher.FromJSON(args[0], flagPath)
			} else {
				wrapped, err = a.dispatcher.New(args[0])
			}
			if err != nil {
				return err
			}

			if _, err := wrapped.To(ref.Name, a.checkOptions(ref, false)...); err != nil {
				a.log.Debug("check failed", logger.Rule(ref.Name), logger.Error(err))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&flagRule, "rule", "", "rule reference, e.g. email or uuid:4")
	_ = cmd.MarkFlagRequired("rule")

	cmd.Flags().BoolVar(&flagJSON, "json", false, "parse VALUE as a JSON document")
	cmd.Flags().StringVar(&flagPath, "path", "", "gjson path of the value to check (requires --json)")

	return cmd
}
