package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time.
	Version   = "dev"
	GitCommit = "unknown"
)

var noColor bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "lexdiag",
		Short: "JS/TS/JSX lexical diagnostics tool",
		Long: `lexdiag tokenizes JavaScript, TypeScript, and JSX source and reports
lexical diagnostics (malformed literals, disallowed characters, unclosed
strings/templates/regexps) without running a full parser.`,
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	noColor = cfg.NoColor
	lexJSON = cfg.JSON

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", noColor, "disable colored output")

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
