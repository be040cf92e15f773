package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jsexpr",
	Short: "jsexpr expression evaluator",
	Long: `jsexpr evaluates expressions from a JavaScript-compatible subset:
arithmetic, string concatenation, comparison, logical short-circuit,
ternary, optional chaining, and JSON member access, against a caller-
provided environment of identifiers.

It does not run statements, declarations, or control flow - only the
single-expression grammar a host embeds for things like feature-flag
rules, filter predicates, and templated lookups.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
