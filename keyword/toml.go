package keyword

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/inspirehep/inspire-query-parser/errors"
)

// tomlTables is the on-disk shape of a keyword table document:
//
//	[fields]
//	title = ["title", "ti", "t"]
//
//	[datefields]
//	date = ["date", "d", "year"]
//
//	[nested]
//	citedby = ["citedby"]
type tomlTables struct {
	Fields     map[string][]string `toml:"fields"`
	DateFields map[string][]string `toml:"datefields"`
	Nested     map[string][]string `toml:"nested"`
}

// LoadTOML builds a registry from a TOML keyword table document.
// Supplying a table is the only externally adjustable behavior of the
// grammar; the document fully replaces the defaults rather than
// merging with them.
func LoadTOML(r io.Reader) (*Registry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keyword tables")
	}

	var tables tomlTables
	if err := toml.Unmarshal(raw, &tables); err != nil {
		return nil, errors.Wrap(err, "failed to decode keyword tables")
	}
	if len(tables.Fields) == 0 && len(tables.DateFields) == 0 && len(tables.Nested) == 0 {
		return nil, errors.New("keyword table document defines no fields")
	}

	return NewRegistry(tables.Fields, tables.DateFields, tables.Nested), nil
}
