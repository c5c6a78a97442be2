package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print lexdiag's version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("lexdiag %s (%s)\n", Version, GitCommit)
		return nil
	},
}
