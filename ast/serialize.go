package ast

import (
	"fmt"
	"strings"
)

// Serialize renders a tree back into query-language text. The output is
// the canonical Invenio form (colon-qualified fields, spelled-out
// boolean operators); feeding it back through the parser yields a tree
// equal to the input up to preserved-grouping metadata.
func Serialize(n Node) string {
	switch x := n.(type) {
	case nil:
		return ""
	case *Value:
		return x.Text
	case *ExactMatch:
		return fmt.Sprintf("%q", x.Text)
	case *PartialMatch:
		return "'" + x.Text + "'"
	case *Regex:
		return "/" + x.Text + "/"
	case *Keyword:
		return x.Name
	case *Empty:
		return ""
	case *ValueOp:
		return Serialize(x.Value)
	case *KeywordOp:
		return x.Keyword.Name + ":" + serializeOperand(x.Value)
	case *NestedKeywordOp:
		return x.Keyword.Name + ":" + Serialize(x.Query)
	case *RangeOp:
		return Serialize(x.Lower) + "->" + Serialize(x.Upper)
	case *GreaterThanOp:
		return "> " + Serialize(x.Value)
	case *GreaterEqualOp:
		return ">= " + Serialize(x.Value)
	case *LessThanOp:
		return "< " + Serialize(x.Value)
	case *LessEqualOp:
		return "<= " + Serialize(x.Value)
	case *NotOp:
		return "not " + serializeOperand(x.Child)
	case *AndOp:
		return serializeOperand(x.Left) + " and " + serializeOperand(x.Right)
	case *OrOp:
		return serializeOperand(x.Left) + " or " + serializeOperand(x.Right)
	case *Group:
		return "(" + Serialize(x.Child) + ")"
	case *MalformedQuery:
		return strings.Join(x.Words, " ")
	case *QueryWithMalformedPart:
		return Serialize(x.Recognized) + " " + Serialize(x.Malformed)
	}
	return ""
}

// serializeOperand parenthesizes boolean children so the written
// grouping survives a round trip even without an explicit Group node.
func serializeOperand(n Node) string {
	switch n.(type) {
	case *AndOp, *OrOp:
		return "(" + Serialize(n) + ")"
	default:
		return Serialize(n)
	}
}
