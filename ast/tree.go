package ast

import (
	"fmt"
	"strings"
)

// TreeFormat renders a tree as an indented multi-line dump for the CLI
// and debug logging.
//
//	KeywordOp
//	├── Keyword date
//	└── RangeOp
//	    ├── Value 2015
//	    └── Value 2017
func TreeFormat(n Node) string {
	var b strings.Builder
	b.WriteString(label(n))
	b.WriteByte('\n')
	writeChildren(&b, n, "")
	return b.String()
}

func label(n Node) string {
	switch x := n.(type) {
	case *Value:
		if x.Wildcard {
			return fmt.Sprintf("Value %s (wildcard)", x.Text)
		}
		return "Value " + x.Text
	case *ExactMatch:
		return fmt.Sprintf("ExactMatch %q", x.Text)
	case *PartialMatch:
		if x.Wildcard {
			return fmt.Sprintf("PartialMatch '%s' (wildcard)", x.Text)
		}
		return fmt.Sprintf("PartialMatch '%s'", x.Text)
	case *Regex:
		return "Regex /" + x.Text + "/"
	case *Keyword:
		return "Keyword " + x.Name
	case *Empty:
		return "Empty"
	case *ValueOp:
		return "ValueOp"
	case *KeywordOp:
		return "KeywordOp"
	case *NestedKeywordOp:
		return "NestedKeywordOp"
	case *RangeOp:
		return "RangeOp"
	case *GreaterThanOp:
		return "GreaterThanOp"
	case *GreaterEqualOp:
		return "GreaterEqualOp"
	case *LessThanOp:
		return "LessThanOp"
	case *LessEqualOp:
		return "LessEqualOp"
	case *NotOp:
		return "NotOp"
	case *AndOp:
		return "AndOp"
	case *OrOp:
		return "OrOp"
	case *Group:
		return "Group"
	case *MalformedQuery:
		return "MalformedQuery " + strings.Join(x.Words, " ")
	case *QueryWithMalformedPart:
		return "QueryWithMalformedPart"
	}
	return "?"
}

func children(n Node) []Node {
	switch x := n.(type) {
	case *ValueOp:
		return []Node{x.Value}
	case *KeywordOp:
		return []Node{&x.Keyword, x.Value}
	case *NestedKeywordOp:
		return []Node{&x.Keyword, x.Query}
	case *RangeOp:
		return []Node{x.Lower, x.Upper}
	case *GreaterThanOp:
		return []Node{x.Value}
	case *GreaterEqualOp:
		return []Node{x.Value}
	case *LessThanOp:
		return []Node{x.Value}
	case *LessEqualOp:
		return []Node{x.Value}
	case *NotOp:
		return []Node{x.Child}
	case *AndOp:
		return []Node{x.Left, x.Right}
	case *OrOp:
		return []Node{x.Left, x.Right}
	case *Group:
		return []Node{x.Child}
	case *QueryWithMalformedPart:
		return []Node{x.Recognized, x.Malformed}
	default:
		return nil
	}
}

func writeChildren(b *strings.Builder, n Node, prefix string) {
	kids := children(n)
	for i, child := range kids {
		last := i == len(kids)-1
		connector, continuation := "├── ", "│   "
		if last {
			connector, continuation = "└── ", "    "
		}
		b.WriteString(prefix + connector + label(child) + "\n")
		writeChildren(b, child, prefix+continuation)
	}
}
