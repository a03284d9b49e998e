package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/inspirehep/inspire-query-parser/keyword"
)

// KeywordsCmd represents the keywords command
var KeywordsCmd = &cobra.Command{
	Use:   "keywords [alias]",
	Short: "List recognized field keywords and their aliases",
	Long: `List every canonical field keyword the parser recognizes, with its
aliases and whether it takes date-shaped or nested-query values.

With an alias argument, resolve just that alias:
  iqp keywords ti

A custom table can be inspected the same way:
  iqp keywords -k mykeywords.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeywords,
}

var keywordsFile string

func init() {
	KeywordsCmd.Flags().StringVarP(&keywordsFile, "keywords", "k", "", "TOML file with alternate keyword tables")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	reg := keyword.Default()
	if keywordsFile != "" {
		loaded, err := loadRegistry(keywordsFile)
		if err != nil {
			return err
		}
		reg = loaded
	}

	if len(args) == 1 {
		kw, ok := reg.Resolve(args[0])
		if !ok {
			fmt.Println(pterm.Yellow(fmt.Sprintf("%q is not a recognized keyword; it will parse as free text", args[0])))
			return nil
		}
		tag := ""
		if kw.Date {
			tag = " " + pterm.LightCyan("(date)")
		} else if kw.Nested {
			tag = " " + pterm.LightCyan("(nested)")
		}
		fmt.Printf("%s -> %s%s\n", args[0], pterm.Green(kw.Name), tag)
		return nil
	}

	byCanonical := make(map[string][]string)
	kinds := make(map[string]keyword.Keyword)
	for _, alias := range reg.Aliases() {
		kw, ok := reg.Resolve(alias)
		if !ok {
			continue
		}
		byCanonical[kw.Name] = append(byCanonical[kw.Name], alias)
		kinds[kw.Name] = kw
	}

	names := make([]string, 0, len(byCanonical))
	for name := range byCanonical {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		kw := kinds[name]
		tag := ""
		if kw.Date {
			tag = " " + pterm.LightCyan("(date)")
		} else if kw.Nested {
			tag = " " + pterm.LightCyan("(nested)")
		}
		fmt.Printf("%s%s\n", pterm.Green(name), tag)
		fmt.Printf("  %s\n", strings.Join(byCanonical[name], ", "))
	}
	return nil
}
