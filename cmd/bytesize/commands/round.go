package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/bytesize"
)

const (
	roundCommandName = "round"
	roundHelpShort   = "Round sizes to a multiple of another size"
	roundHelpLong    = `Round each size to a multiple of --to. The result is printed exactly.`
	roundHelpExample = `
# Prints 2 KiB
bytesize round --to 1KiB --dir up 1500
`

	flagTo     = "to"
	flagToHelp = "The size to round to a multiple of"

	flagDir     = "dir"
	flagDirHelp = "Rounding direction.  Valid values are \"up\", \"down\", and \"half-up\"."
)

func newRoundCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     roundCommandName + " SIZE...",
		Short:   roundHelpShort,
		Long:    roundHelpLong,
		Args:    cobra.MinimumNArgs(1),
		Example: roundHelpExample,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runRound(cmd, st, args)
	}

	cmd.Flags().String(flagTo, "1 MiB", flagToHelp)
	cmd.Flags().String(flagDir, bytesize.RoundHalfUp.String(), flagDirHelp)

	return cmd
}

// runRound runs the "bytesize round" command
func runRound(cmd *cobra.Command, st *state, args []string) error {
	dir, err := bytesize.ParseRound(st.cfg.Dir)
	if err != nil {
		return err
	}

	for _, arg := range args {
		s, err := st.parse(arg)
		if err != nil {
			return err
		}

		r, err := s.RoundToNearest(st.cfg.To, dir)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"size": s.BytesString(),
			"to":   st.cfg.To.BytesString(),
			"dir":  dir,
		}).Debug("rounded size")

		fmt.Fprintln(cmd.OutOrStdout(), st.human(r, -1))
	}

	return nil
}
