// Package keyword maps field aliases from both query dialects to
// canonical field names.
//
// The table has a twofold use: the grammar uses its aliases to
// recognize field qualifiers (SPIRES `t boson` as well as Invenio
// `title:boson`), and the AST builder uses it to normalize shortened
// aliases to their full canonical form. The table is configuration,
// not grammar: adding an alias never requires a grammar change.
package keyword

// Keyword is a canonical field name together with how its values parse.
type Keyword struct {
	// Name is the canonical field name, e.g. "title" for aliases t/ti/title.
	Name string `json:"name"`
	// Date marks fields whose values are date expressions and go through
	// date normalization (absolute layouts and relative specifiers).
	Date bool `json:"date,omitempty"`
	// Nested marks record-reference operators (citedby, refersto) whose
	// value is a whole sub-query rather than a term.
	Nested bool `json:"nested,omitempty"`
}

// defaultFields maps canonical field names to their accepted aliases.
// Every canonical name lists itself, which makes resolution idempotent.
var defaultFields = map[string][]string{
	"abstract":                 {"abstract"},
	"address":                  {"address"},
	"affiliation":              {"affiliation", "affil", "aff", "af", "institution", "inst"},
	"author":                   {"author", "au", "a", "name"},
	"author-count":             {"author-count", "authorcount", "ac"},
	"caption":                  {"caption"},
	"cataloguer":               {"cataloguer", "cat"},
	"cite":                     {"cite", "c", "reference"},
	"citedexcludingselfcites":  {"citedexcludingselfcites", "cx"},
	"collaboration":            {"collaboration", "cn"},
	"confnumber":               {"confnumber", "cnum"},
	"country":                  {"country", "cc"},
	"doi":                      {"doi"},
	"eprint":                   {"eprint"},
	"exact-author":             {"exact-author", "exactauthor", "ea"},
	"experiment":               {"experiment", "exp"},
	"first-author":             {"first-author", "firstauthor", "fa"},
	"fulltext":                 {"fulltext", "ft"},
	"journal":                  {"journal", "j", "coden", "published_in"},
	"journal-year":             {"journal-year", "jy"},
	"keyword":                  {"keyword", "keywords", "kw", "k"},
	"primarch":                 {"primarch"},
	"rank":                     {"rank"},
	"rawref":                   {"rawref"},
	"recid":                    {"recid"},
	"reference":                {"citation", "jour-vol-page", "jvp"},
	"region":                   {"region", "continent"},
	"reportnumber":             {"reportnumber", "report-num", "report", "rept", "rn", "r", "bb", "bull"},
	"subject":                  {"subject"},
	"texkey":                   {"texkey"},
	"title":                    {"title", "ti", "t", "position"},
	"topcite":                  {"topcite", "topcit", "cited"},
	"type-code":                {"type-code", "type", "tc", "ty", "scl", "ps", "collection"},
	"volume":                   {"volume", "vol"},
}

// defaultDateFields are the canonical fields whose values are dates.
var defaultDateFields = map[string][]string{
	"date":          {"date", "d", "year"},
	"date-added":    {"date-added", "dadd", "da"},
	"date-earliest": {"date-earliest", "de"},
	"date-updated":  {"date-updated", "dupd", "du"},
}

// defaultNested are the record-reference operators. Their value is a
// full sub-query, e.g. citedby:author:witten.
var defaultNested = map[string][]string{
	"citedby":                    {"citedby"},
	"citedbyexcludingselfcites":  {"citedbyexcludingselfcites", "citedbyx"},
	"refersto":                   {"refersto"},
	"referstoexcludingselfcites": {"referstoexcludingselfcites", "referstox"},
}
