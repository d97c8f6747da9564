package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	bytesCommandName = "bytes"
	bytesHelpShort   = "Print sizes as a number of bytes"
	bytesHelpLong    = `Print each size as its exact, signed number of bytes. Fractions of a byte are truncated.`
	bytesHelpExample = `
bytesize bytes "1.5 GiB" 1KB
`
)

func newBytesCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     bytesCommandName + " SIZE...",
		Short:   bytesHelpShort,
		Long:    bytesHelpLong,
		Args:    cobra.MinimumNArgs(1),
		Example: bytesHelpExample,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBytes(cmd, st, args)
	}

	return cmd
}

// runBytes runs the "bytesize bytes" command
func runBytes(cmd *cobra.Command, st *state, args []string) error {
	for _, arg := range args {
		s, err := st.parse(arg)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), s.BytesString())
	}

	return nil
}
