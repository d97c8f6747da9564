package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	humanCommandName = "human"
	humanHelpShort   = "Print sizes in human readable form"
	humanHelpLong    = `Print each size in the largest unit in which it is at least one, rounded
to --places digits after the radix.`
	humanHelpExample = `
# Prints 0.98 KiB
bytesize human --min-unit KiB 1KB
`
)

func newHumanCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     humanCommandName + " SIZE...",
		Short:   humanHelpShort,
		Long:    humanHelpLong,
		Args:    cobra.MinimumNArgs(1),
		Example: humanHelpExample,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runHuman(cmd, st, args)
	}

	return cmd
}

// runHuman runs the "bytesize human" command
func runHuman(cmd *cobra.Command, st *state, args []string) error {
	for _, arg := range args {
		s, err := st.parse(arg)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), st.human(s, st.cfg.Places))
	}

	return nil
}
