package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"go.mau.fi/libsignal/logger"
	"os"
	"ratchettree-go/pkg/treemath"
	"ratchettree-go/pkg/vectors"
)

var generateFlags struct {
	size uint32
	out  string
}

// generateCmd writes the binary vector for a tree of the given size.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the tree math vector for a number of leaves",
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateFlags.size == 0 {
			return fmt.Errorf("--size must be at least 1")
		}

		data, err := vectors.Generate(treemath.RosterIndex(generateFlags.size)).Encode()
		if err != nil {
			return err
		}

		if generateFlags.out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(generateFlags.out, data, 0o644); err != nil {
			return err
		}
		logger.Info("Wrote vector for ", generateFlags.size, " leaves to ", generateFlags.out)
		return nil
	},
}

func init() {
	generateCmd.Flags().Uint32VarP(&generateFlags.size, "size", "n", 8, "number of leaves")
	generateCmd.Flags().StringVarP(&generateFlags.out, "out", "o", "", "output file (stdout if empty)")
	rootCmd.AddCommand(generateCmd)
}
