package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/inspirehep/inspire-query-parser/cmd/iqp/commands"
	"github.com/inspirehep/inspire-query-parser/logger"
)

var rootCmd = &cobra.Command{
	Use:   "iqp",
	Short: "iqp - INSPIRE query parser",
	Long: `iqp - Parse INSPIRE search queries into an AST.

Understands both the legacy SPIRES dialect (find a ellis) and the
Invenio dialect (author:ellis). Parsing is total: input the grammar
cannot read degrades to a plaintext query instead of failing.

Examples:
  iqp parse "find a ellis and t boson"   # Show the parse tree
  iqp parse -j "date > 2000"             # AST as JSON
  iqp parse -s "a ellis"                 # Canonical re-serialization
  iqp keywords                           # List recognized field aliases`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if verbose, _ := cmd.Flags().GetCount("verbose"); verbose > 0 {
			return logger.SetLevel(zapcore.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console output")

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.KeywordsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
