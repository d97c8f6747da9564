package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bytesize"
)

const (
	convertCommandName = "convert"
	convertHelpShort   = "Print a size in a given unit"
	convertHelpLong    = `Print a size as an exact decimal number of the given unit.`
	convertHelpExample = `
# Prints 1.5
bytesize convert 1536 KiB
`
)

func newConvertCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     convertCommandName + " SIZE UNIT",
		Short:   convertHelpShort,
		Long:    convertHelpLong,
		Args:    cobra.ExactArgs(2),
		Example: convertHelpExample,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, st, args[0], args[1])
	}

	return cmd
}

// runConvert runs the "bytesize convert" command
func runConvert(cmd *cobra.Command, st *state, size, name string) error {
	s, err := st.parse(size)
	if err != nil {
		return err
	}

	u, ok := st.loc.LookupUnit(name)
	if !ok {
		return bytesize.ErrInvalidSpec.New("unknown unit %q", name)
	}

	value, err := s.ConvertTo(u)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)

	return nil
}
