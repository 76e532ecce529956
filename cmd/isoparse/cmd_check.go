package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var config parserConfig

	cmd := &cobra.Command{
		Use:           "check <input>...",
		Short:         "Report whether each input is a valid ISO-8601 date or time",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := config.parser()
			if err != nil {
				return err
			}

			failed := 0
			for _, input := range args {
				if _, err := p.Parse(input); err != nil {
					log.Debugf("%s", err)
					fmt.Fprintf(cmd.OutOrStdout(), "invalid\t%s\n", input)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", input)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs invalid", failed, len(args))
			}

			return nil
		},
	}
	config.bind(cmd)

	return cmd
}
