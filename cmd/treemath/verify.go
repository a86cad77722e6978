package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"ratchettree-go/pkg/vectors"
)

var verifyDump string

// verifyCmd checks a binary vector file against the tree math.
var verifyCmd = &cobra.Command{
	Use:   "verify FILE",
	Short: "Verify a binary tree math vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var opts []vectors.Option
		if verifyDump != "" {
			f, err := os.Create(verifyDump)
			if err != nil {
				return err
			}
			defer f.Close()
			opts = append(opts, vectors.WithDump(f))
		}

		if err := vectors.VerifyBytes(data, opts...); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDump, "dump", "", "also write the vector as JSON to this file")
	rootCmd.AddCommand(verifyCmd)
}
