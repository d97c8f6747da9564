package commands

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/calebcase/bytesize/unit"
)

const (
	tableCommandName = "table"
	tableHelpShort   = "Print a size in every unit"
	tableHelpLong    = `Print a size as an exact decimal number of each binary and decimal unit.`
	tableHelpExample = `
bytesize table "1.5 GiB"
`
)

func newTableCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     tableCommandName + " SIZE",
		Short:   tableHelpShort,
		Long:    tableHelpLong,
		Args:    cobra.ExactArgs(1),
		Example: tableHelpExample,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTable(cmd, st, args[0])
	}

	return cmd
}

// runTable runs the "bytesize table" command
func runTable(cmd *cobra.Command, st *state, size string) error {
	s, err := st.parse(size)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("UNIT", "VALUE")

	for _, u := range unit.Units {
		value, err := s.ConvertTo(u)
		if err != nil {
			return err
		}

		table.AddRow(st.loc.UnitName(u), value)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)

	return nil
}
