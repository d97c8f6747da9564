// Package commands implements the bytesize command line.
package commands

import (
	"github.com/spf13/cobra"
)

const (
	CommandName = "bytesize"
	helpShort   = "Parse, convert and format byte sizes"
	helpLong    = `The bytesize tool parses sizes such as "1.5 GiB" exactly and prints
them as bytes, in a given unit or in human readable form.`

	flagLogLevel      = "log-level"
	flagLogLevelShort = "l"
	flagLogLevelHelp  = "Sets the log level.  Valid values are \"error\", \"info\", \"debug\", and \"trace\"."

	flagConfig     = "config"
	flagConfigHelp = "Path to a YAML configuration file"

	flagLocale     = "locale"
	flagLocaleHelp = "Path to a YAML locale with the radix and translated unit names"

	flagPlaces      = "places"
	flagPlacesShort = "p"
	flagPlacesHelp  = "Maximum number of digits after the radix.  A negative value keeps every digit."

	flagMinUnit      = "min-unit"
	flagMinUnitShort = "m"
	flagMinUnitHelp  = "Smallest unit used for human readable output.  Its family (KiB or KB) selects the unit ladder."
)

// NewRootCmd - create the root cobra command
func NewRootCmd() *cobra.Command {
	st := newState()

	cmd := NewCommand(CommandName, helpShort, helpLong)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return st.load(cmd)
	}

	// Add commands
	cmd.AddCommand(newBytesCmd(st))
	cmd.AddCommand(newConvertCmd(st))
	cmd.AddCommand(newHumanCmd(st))
	cmd.AddCommand(newRoundCmd(st))
	cmd.AddCommand(newTableCmd(st))

	flags := cmd.PersistentFlags()
	flags.StringP(flagLogLevel, flagLogLevelShort, "info", flagLogLevelHelp)
	flags.String(flagConfig, "", flagConfigHelp)
	flags.String(flagLocale, "", flagLocaleHelp)
	flags.IntP(flagPlaces, flagPlacesShort, 2, flagPlacesHelp)
	flags.StringP(flagMinUnit, flagMinUnitShort, "B", flagMinUnitHelp)

	return cmd
}

// NewCommand - utility method to create cobra commands
func NewCommand(use string, short string, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
	}

	// Disable usage output on errors
	cmd.SilenceUsage = true

	return cmd
}
