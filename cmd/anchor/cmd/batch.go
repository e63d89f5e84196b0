package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	anchor "github.com/SimonDaKappa/go-anchor"
	"github.com/SimonDaKappa/go-anchor/internal/logger"
)

// batchFile is the document read by the batch command.
//
//	checks:
//	  - name: contact
//	    value: bill@example.com
//	    rule: email
//	  - name: launch
//	    value: "2030-01-01"
//	    rule: after
//	    param: "2020-01-01"
type batchFile struct {
	Checks []batchCheck `yaml:"checks"`
}

type batchCheck struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
	// Rule is usually a rule reference string. Any other YAML shape is
	// handed to ToRuleset as is.
	Rule  any `yaml:"rule"`
	Param any `yaml:"param"`
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "run every check listed in a YAML file",
		Long: `Run every check listed in a YAML file and report each outcome.

The command fails if any check fails; all failures are reported together.
FILE may be "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readBatchFile(cmd, args[0])
			if err != nil {
				return err
			}
			return a.runBatch(cmd.OutOrStdout(), file)
		},
	}
}

func readBatchFile(cmd *cobra.Command, path string) (batchFile, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return batchFile{}, fmt.Errorf("cannot read batch file: %w", err)
	}

	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return batchFile{}, fmt.Errorf("cannot parse batch file %s: %w", path, err)
	}
	return file, nil
}

func (a *app) runBatch(out io.Writer, file batchFile) error {
	var result *multierror.Error

	for i, check := range file.Checks {
		name := check.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		if err := a.runCheck(check); err != nil {
			a.log.Debug("batch check failed", logger.Rule(fmt.Sprint(check.Rule)), logger.Error(err))
			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			continue
		}
		fmt.Fprintf(out, "PASS %s\n", name)
	}

	return result.ErrorOrNil()
}

func (a *app) runCheck(check batchCheck) error {
	wrapped, err := a.dispatcher.New(check.Value)
	if err != nil {
		return err
	}

	var opts []anchor.CheckOption
	if check.Param != nil {
		opts = append(opts, anchor.WithParam(check.Param))
	}

	s, ok := check.Rule.(string)
	if !ok {
		_, err = wrapped.ToRuleset(check.Rule, opts...)
		return err
	}

	ref, err := anchor.ParseRuleRef(s)
	if err != nil {
		return err
	}
	_, err = wrapped.To(ref.Name, append(a.checkOptions(ref, check.Param != nil), opts...)...)
	return err
}
