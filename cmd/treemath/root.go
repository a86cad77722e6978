package main

import (
	"github.com/spf13/cobra"
	"go.mau.fi/libsignal/logger"
	"ratchettree-go/pkg/util"
)

var verbose bool

// rootCmd is the entry point for the tree math CLI.
var rootCmd = &cobra.Command{
	Use:           "treemath",
	Short:         "Generate, verify and inspect left-balanced tree math vectors",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Logger = util.NewConsoleLogger(cmd.ErrOrStderr(), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
