package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/calebcase/bytesize/cmd/bytesize/commands"
)

func main() {
	// Allow timestamps for logging
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	// Allow prefix matching to minimize typing
	cobra.EnablePrefixMatching = true

	flags := pflag.NewFlagSet(commands.CommandName, pflag.ExitOnError)
	pflag.CommandLine = flags

	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
