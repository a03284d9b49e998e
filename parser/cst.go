package parser

import "github.com/inspirehep/inspire-query-parser/keyword"

// The concrete syntax tree mirrors the grammar rules that matched. It
// is transient: built during one Parse call, handed to the AST builder
// and discarded. Every node carries the byte span it matched so the
// builder can recover original text (unknown-keyword demotion) and the
// fallback layer knows which range failed.

type cstNode interface {
	span() Span
}

type boolOp int

const (
	boolAnd boolOp = iota
	boolOr
)

// cstEmpty matches empty or whitespace-only input.
type cstEmpty struct {
	Span Span
}

// cstMalformedWords holds the whitespace-split words of an input span
// no grammar rule recognized.
type cstMalformedWords struct {
	Span  Span
	Words []string
}

// cstQuery is the grammar entry point: a recognized statement plus the
// optionally trailing unrecognized remainder.
type cstQuery struct {
	Span      Span
	Stmt      cstNode
	Malformed *cstMalformedWords
}

// cstBoolean is a boolean composition at statement level. Implicit
// records adjacency-AND (no written operator between the operands).
type cstBoolean struct {
	Span     Span
	Op       boolOp
	Implicit bool
	Left     cstNode
	Right    cstNode
}

type cstNot struct {
	Span  Span
	Child cstNode
}

type cstParenthesized struct {
	Span  Span
	Child cstNode
}

// cstNestedKeyword is a record-reference query: citedby/refersto
// followed by a full sub-expression.
type cstNestedKeyword struct {
	Span  Span
	Alias string
	Kw    keyword.Keyword
	Child cstNode
}

// cstKeywordQuery covers both dialect forms; Colon marks the Invenio
// form. The alias is always in the registry, so Kw is always resolved.
type cstKeywordQuery struct {
	Span  Span
	Alias string
	Kw    keyword.Keyword
	Colon bool
	Value cstNode
}

type cstRange struct {
	Span  Span
	Lower cstNode
	Upper cstNode
}

// cstGreater / cstLess are one-sided ranges: after/>, >=, N+ forms and
// their mirror images.
type cstGreater struct {
	Span  Span
	Equal bool
	Value cstNode
}

type cstLess struct {
	Span  Span
	Equal bool
	Value cstNode
}

// cstComplex is a delimited value: /regex/, 'partial' or "exact".
// Raw keeps the delimiters; the builder classifies by the first byte.
type cstComplex struct {
	Span Span
	Raw  string
}

// cstSimpleValue is a single plaintext term. IsDate marks terms
// recognized by the date-shaped grammar (routed through date
// normalization by the builder).
type cstSimpleValue struct {
	Span   Span
	Text   string
	IsDate bool
}

// cstSimpleBoolean is a boolean chain among terminal values, e.g. the
// value side of "author ellis or smith". Kept distinct from
// cstBoolean so a governing keyword can distribute over the operands.
type cstSimpleBoolean struct {
	Span     Span
	Op       boolOp
	Implicit bool
	Left     cstNode
	Right    cstNode
}

type cstSimpleNegation struct {
	Span  Span
	Child cstNode
}

func (n *cstEmpty) span() Span          { return n.Span }
func (n *cstMalformedWords) span() Span { return n.Span }
func (n *cstQuery) span() Span          { return n.Span }
func (n *cstBoolean) span() Span        { return n.Span }
func (n *cstNot) span() Span            { return n.Span }
func (n *cstParenthesized) span() Span  { return n.Span }
func (n *cstNestedKeyword) span() Span  { return n.Span }
func (n *cstKeywordQuery) span() Span   { return n.Span }
func (n *cstRange) span() Span          { return n.Span }
func (n *cstGreater) span() Span        { return n.Span }
func (n *cstLess) span() Span           { return n.Span }
func (n *cstComplex) span() Span        { return n.Span }
func (n *cstSimpleValue) span() Span    { return n.Span }
func (n *cstSimpleBoolean) span() Span  { return n.Span }
func (n *cstSimpleNegation) span() Span { return n.Span }
