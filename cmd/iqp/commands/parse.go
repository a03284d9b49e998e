package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/inspirehep/inspire-query-parser/ast"
	"github.com/inspirehep/inspire-query-parser/errors"
	"github.com/inspirehep/inspire-query-parser/keyword"
	"github.com/inspirehep/inspire-query-parser/parser"
)

var (
	parseJSON      bool
	parseSerialize bool
	parseKeywords  string
)

// ParseCmd represents the parse command
var ParseCmd = &cobra.Command{
	Use:   "parse QUERY...",
	Short: "Parse a search query and print its AST",
	Long: `Parse a search query and print the resulting AST.

Multiple arguments are joined with spaces, so quoting the whole query
is optional unless it contains shell metacharacters.

Examples:
  iqp parse find a ellis and t boson
  iqp parse "author:ellis or title:'Higgs boson'"
  iqp parse -s "a ellis"          # canonical Invenio form
  iqp parse -j "date > 2000"      # JSON output`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	ParseCmd.Flags().BoolVarP(&parseJSON, "json", "j", false, "Output the AST as JSON")
	ParseCmd.Flags().BoolVarP(&parseSerialize, "serialize", "s", false, "Output the canonical re-serialized query")
	ParseCmd.Flags().StringVarP(&parseKeywords, "keywords", "k", "", "TOML file with alternate keyword tables")
}

func runParse(cmd *cobra.Command, args []string) error {
	var opts []parser.Option
	if parseKeywords != "" {
		reg, err := loadRegistry(parseKeywords)
		if err != nil {
			return err
		}
		opts = append(opts, parser.WithRegistry(reg))
	}

	result := parser.NewDriver(opts...).Parse(strings.Join(args, " "))

	switch {
	case parseJSON:
		out, err := json.MarshalIndent(map[string]interface{}{
			"ast":           ast.ToMap(result.Root),
			"fallback_used": result.FallbackUsed,
		}, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode AST")
		}
		fmt.Println(string(out))
	case parseSerialize:
		fmt.Println(ast.Serialize(result.Root))
	default:
		fmt.Print(ast.TreeFormat(result.Root))
	}

	if result.FallbackUsed && !parseJSON {
		fmt.Fprintln(cmd.ErrOrStderr(), pterm.Yellow("warning: query only partially understood; unrecognized parts run as plain text"))
	}
	return nil
}

func loadRegistry(path string) (*keyword.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open keyword file")
	}
	defer f.Close()

	reg, err := keyword.LoadTOML(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load keyword tables from %s", path)
	}
	return reg, nil
}
