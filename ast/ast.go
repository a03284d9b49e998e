// Package ast defines the abstract syntax tree produced by the query
// parser.
//
// The node set is closed: every behavior over the tree (equality,
// serialization, tree formatting, walking) is a single exhaustive type
// switch, so a new variant cannot silently skip a behavior. Nodes are
// immutable after construction and exclusively own their children; the
// tree is the sole contract with the downstream search backend.
package ast

// Node is implemented by every AST variant.
type Node interface {
	node()
}

// #### Leaf values ####

// Value is a plain text value, possibly containing a * wildcard.
// E.g. the "boson" in title:boson, or a standalone free-text term.
type Value struct {
	Text     string
	Wildcard bool
}

// ExactMatch is a double-quoted value requiring exact matching,
// e.g. author:"Ellis, J".
type ExactMatch struct {
	Text string
}

// PartialMatch is a single-quoted value matched against analyzed text,
// e.g. t 'Millisecond pulsar velocities'.
type PartialMatch struct {
	Text     string
	Wildcard bool
}

// Regex is a slash-delimited regular expression value, e.g. a:/^Ellis/.
type Regex struct {
	Text string
}

// Keyword is a canonical field name resolved through the registry, or
// the raw field name for unknown colon-form qualifiers.
type Keyword struct {
	Name string
}

// Empty is the terminal for empty or whitespace-only input. It is a
// real node: parsing never yields an absent result.
type Empty struct{}

// #### Operators ####

// ValueOp is a standalone value query matched against the default
// field set, e.g. the whole query "Ellis".
type ValueOp struct {
	Value Node
}

// KeywordOp is a field-qualified query: keyword on the left, value on
// the right.
type KeywordOp struct {
	Keyword Keyword
	Value   Node
}

// NestedKeywordOp is a record-reference query whose right side is a
// full sub-query, e.g. citedby:author:witten.
type NestedKeywordOp struct {
	Keyword Keyword
	Query   Node
}

// RangeOp is an inclusive range with both bounds present,
// e.g. year:1983->1992.
type RangeOp struct {
	Lower Node
	Upper Node
}

// GreaterThanOp is an open lower bound, e.g. date after 2000.
type GreaterThanOp struct {
	Value Node
}

// GreaterEqualOp is a closed lower bound, e.g. topcite 100+ or date >= 2000.
type GreaterEqualOp struct {
	Value Node
}

// LessThanOp is an open upper bound, e.g. date before 1984.
type LessThanOp struct {
	Value Node
}

// LessEqualOp is a closed upper bound, e.g. author-count 100- or date <= 2000.
type LessEqualOp struct {
	Value Node
}

// NotOp negates its child.
type NotOp struct {
	Child Node
}

// AndOp is a binary conjunction; chains fold left-to-right in source order.
type AndOp struct {
	Left  Node
	Right Node
}

// OrOp is a binary disjunction; chains fold left-to-right in source order.
type OrOp struct {
	Left  Node
	Right Node
}

// Group preserves explicit parenthesization that matters for
// re-serialization, i.e. when the grouped child is itself a boolean
// composition. Grouping carries no query semantics beyond precedence
// already encoded in the tree shape.
type Group struct {
	Child Node
}

// MalformedQuery carries the words of an input span the grammar could
// not recognize. Downstream treats it like free text; the distinct
// variant lets callers log "query not understood" telemetry without
// failing the request.
type MalformedQuery struct {
	Words []string
}

// QueryWithMalformedPart combines a recognized prefix with the
// malformed remainder of the input. Left is the recognized parse,
// Right is always a *MalformedQuery.
type QueryWithMalformedPart struct {
	Recognized Node
	Malformed  Node
}

func (*Value) node()                  {}
func (*ExactMatch) node()             {}
func (*PartialMatch) node()           {}
func (*Regex) node()                  {}
func (*Keyword) node()                {}
func (*Empty) node()                  {}
func (*ValueOp) node()                {}
func (*KeywordOp) node()              {}
func (*NestedKeywordOp) node()        {}
func (*RangeOp) node()                {}
func (*GreaterThanOp) node()          {}
func (*GreaterEqualOp) node()         {}
func (*LessThanOp) node()             {}
func (*LessEqualOp) node()            {}
func (*NotOp) node()                  {}
func (*AndOp) node()                  {}
func (*OrOp) node()                   {}
func (*Group) node()                  {}
func (*MalformedQuery) node()         {}
func (*QueryWithMalformedPart) node() {}

// Equal reports structural equality of two trees: same variant at every
// position with the same leaf values.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	switch x := a.(type) {
	case *Value:
		y, ok := b.(*Value)
		return ok && x.Text == y.Text && x.Wildcard == y.Wildcard
	case *ExactMatch:
		y, ok := b.(*ExactMatch)
		return ok && x.Text == y.Text
	case *PartialMatch:
		y, ok := b.(*PartialMatch)
		return ok && x.Text == y.Text && x.Wildcard == y.Wildcard
	case *Regex:
		y, ok := b.(*Regex)
		return ok && x.Text == y.Text
	case *Keyword:
		y, ok := b.(*Keyword)
		return ok && x.Name == y.Name
	case *Empty:
		_, ok := b.(*Empty)
		return ok
	case *ValueOp:
		y, ok := b.(*ValueOp)
		return ok && Equal(x.Value, y.Value)
	case *KeywordOp:
		y, ok := b.(*KeywordOp)
		return ok && x.Keyword.Name == y.Keyword.Name && Equal(x.Value, y.Value)
	case *NestedKeywordOp:
		y, ok := b.(*NestedKeywordOp)
		return ok && x.Keyword.Name == y.Keyword.Name && Equal(x.Query, y.Query)
	case *RangeOp:
		y, ok := b.(*RangeOp)
		return ok && Equal(x.Lower, y.Lower) && Equal(x.Upper, y.Upper)
	case *GreaterThanOp:
		y, ok := b.(*GreaterThanOp)
		return ok && Equal(x.Value, y.Value)
	case *GreaterEqualOp:
		y, ok := b.(*GreaterEqualOp)
		return ok && Equal(x.Value, y.Value)
	case *LessThanOp:
		y, ok := b.(*LessThanOp)
		return ok && Equal(x.Value, y.Value)
	case *LessEqualOp:
		y, ok := b.(*LessEqualOp)
		return ok && Equal(x.Value, y.Value)
	case *NotOp:
		y, ok := b.(*NotOp)
		return ok && Equal(x.Child, y.Child)
	case *AndOp:
		y, ok := b.(*AndOp)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *OrOp:
		y, ok := b.(*OrOp)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Group:
		y, ok := b.(*Group)
		return ok && Equal(x.Child, y.Child)
	case *MalformedQuery:
		y, ok := b.(*MalformedQuery)
		if !ok || len(x.Words) != len(y.Words) {
			return false
		}
		for i := range x.Words {
			if x.Words[i] != y.Words[i] {
				return false
			}
		}
		return true
	case *QueryWithMalformedPart:
		y, ok := b.(*QueryWithMalformedPart)
		return ok && Equal(x.Recognized, y.Recognized) && Equal(x.Malformed, y.Malformed)
	}
	return false
}

// EqualIgnoringGrouping reports equality up to preserved-grouping
// metadata: Group markers on either side are transparent. Queries that
// are semantically equivalent across dialects compare equal under this
// relation even when only one of them was written with parentheses.
func EqualIgnoringGrouping(a, b Node) bool {
	return Equal(stripGroups(a), stripGroups(b))
}

func stripGroups(n Node) Node {
	switch x := n.(type) {
	case *Group:
		return stripGroups(x.Child)
	case *ValueOp:
		return &ValueOp{Value: stripGroups(x.Value)}
	case *KeywordOp:
		return &KeywordOp{Keyword: x.Keyword, Value: stripGroups(x.Value)}
	case *NestedKeywordOp:
		return &NestedKeywordOp{Keyword: x.Keyword, Query: stripGroups(x.Query)}
	case *RangeOp:
		return &RangeOp{Lower: stripGroups(x.Lower), Upper: stripGroups(x.Upper)}
	case *GreaterThanOp:
		return &GreaterThanOp{Value: stripGroups(x.Value)}
	case *GreaterEqualOp:
		return &GreaterEqualOp{Value: stripGroups(x.Value)}
	case *LessThanOp:
		return &LessThanOp{Value: stripGroups(x.Value)}
	case *LessEqualOp:
		return &LessEqualOp{Value: stripGroups(x.Value)}
	case *NotOp:
		return &NotOp{Child: stripGroups(x.Child)}
	case *AndOp:
		return &AndOp{Left: stripGroups(x.Left), Right: stripGroups(x.Right)}
	case *OrOp:
		return &OrOp{Left: stripGroups(x.Left), Right: stripGroups(x.Right)}
	case *QueryWithMalformedPart:
		return &QueryWithMalformedPart{Recognized: stripGroups(x.Recognized), Malformed: x.Malformed}
	default:
		return n
	}
}

// Walk calls fn for n and each descendant in depth-first pre-order.
// Descent below a node stops when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch x := n.(type) {
	case *ValueOp:
		Walk(x.Value, fn)
	case *KeywordOp:
		Walk(&x.Keyword, fn)
		Walk(x.Value, fn)
	case *NestedKeywordOp:
		Walk(&x.Keyword, fn)
		Walk(x.Query, fn)
	case *RangeOp:
		Walk(x.Lower, fn)
		Walk(x.Upper, fn)
	case *GreaterThanOp:
		Walk(x.Value, fn)
	case *GreaterEqualOp:
		Walk(x.Value, fn)
	case *LessThanOp:
		Walk(x.Value, fn)
	case *LessEqualOp:
		Walk(x.Value, fn)
	case *NotOp:
		Walk(x.Child, fn)
	case *AndOp:
		Walk(x.Left, fn)
		Walk(x.Right, fn)
	case *OrOp:
		Walk(x.Left, fn)
		Walk(x.Right, fn)
	case *Group:
		Walk(x.Child, fn)
	case *QueryWithMalformedPart:
		Walk(x.Recognized, fn)
		Walk(x.Malformed, fn)
	}
}
