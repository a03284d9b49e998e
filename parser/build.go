package parser

import (
	"strings"
	"time"

	"github.com/inspirehep/inspire-query-parser/ast"
	"github.com/inspirehep/inspire-query-parser/keyword"
)

// builder restructures a CST into the published AST: registry keywords
// distribute over value-level boolean chains, boolean chains fold
// left-to-right, a volume clause following a journal clause folds into
// it and date-shaped values are normalized against the builder's clock.
type builder struct {
	input string
	reg   *keyword.Registry
	now   time.Time
}

func (b *builder) build(n cstNode) ast.Node {
	switch x := n.(type) {
	case *cstEmpty:
		return &ast.ValueOp{Value: &ast.Empty{}}
	case *cstMalformedWords:
		return &ast.MalformedQuery{Words: x.Words}
	case *cstQuery:
		root := b.stmt(x.Stmt)
		if x.Malformed != nil {
			return &ast.QueryWithMalformedPart{
				Recognized: root,
				Malformed:  &ast.MalformedQuery{Words: x.Malformed.Words},
			}
		}
		return root
	default:
		return b.stmt(n)
	}
}

func (b *builder) stmt(n cstNode) ast.Node {
	switch x := n.(type) {
	case *cstBoolean:
		return b.foldBoolean(x)
	case *cstNot:
		return &ast.NotOp{Child: b.stmt(x.Child)}
	case *cstParenthesized:
		child := b.stmt(x.Child)
		// Grouping is only kept where it matters for re-serialization;
		// parentheses around a single operand are dropped.
		switch child.(type) {
		case *ast.AndOp, *ast.OrOp:
			return &ast.Group{Child: child}
		default:
			return child
		}
	case *cstNestedKeyword:
		return &ast.NestedKeywordOp{
			Keyword: ast.Keyword{Name: x.Kw.Name},
			Query:   b.stmt(x.Child),
		}
	case *cstKeywordQuery:
		return b.keywordQuery(x)
	default:
		return b.valueStatement(n)
	}
}

// foldBoolean collapses the right-leaning chain the recursive grammar
// produces into a left-associative tree, so "a or b or c" reads in
// source order: Or(Or(a, b), c).
func (b *builder) foldBoolean(n *cstBoolean) ast.Node {
	operands, ops := flattenBooleanSpine(n)
	acc := b.stmt(operands[0])
	for i, op := range ops {
		right := b.stmt(operands[i+1])
		if op == boolAnd {
			if merged, ok := mergeJournalVolume(acc, right); ok {
				acc = merged
				continue
			}
		}
		acc = joinBool(op, acc, right)
	}
	return acc
}

// mergeJournalVolume folds a volume clause that directly follows a
// journal clause into the journal value, so "journal Phys.Rev. and
// vol d85" searches journal:Phys.Rev.,d85 instead of two fields.
func mergeJournalVolume(left, right ast.Node) (ast.Node, bool) {
	j, ok := left.(*ast.KeywordOp)
	if !ok || j.Keyword.Name != "journal" {
		return nil, false
	}
	v, ok := right.(*ast.KeywordOp)
	if !ok || v.Keyword.Name != "volume" {
		return nil, false
	}
	jv, ok := j.Value.(*ast.Value)
	if !ok {
		return nil, false
	}
	vv, ok := v.Value.(*ast.Value)
	if !ok {
		return nil, false
	}
	text := jv.Text + "," + vv.Text
	return &ast.KeywordOp{
		Keyword: j.Keyword,
		Value:   &ast.Value{Text: text, Wildcard: strings.Contains(text, "*")},
	}, true
}

func flattenBooleanSpine(n *cstBoolean) ([]cstNode, []boolOp) {
	var operands []cstNode
	var ops []boolOp
	cur := n
	for {
		operands = append(operands, cur.Left)
		ops = append(ops, cur.Op)
		next, ok := cur.Right.(*cstBoolean)
		if !ok {
			operands = append(operands, cur.Right)
			return operands, ops
		}
		cur = next
	}
}

func joinBool(op boolOp, left, right ast.Node) ast.Node {
	if op == boolOr {
		return &ast.OrOp{Left: left, Right: right}
	}
	return &ast.AndOp{Left: left, Right: right}
}

// keywordQuery restructures a field-qualified clause.
func (b *builder) keywordQuery(n *cstKeywordQuery) ast.Node {
	return b.distributeKeyword(n.Value, ast.Keyword{Name: n.Kw.Name}, n.Kw.Date)
}

// distributeKeyword pushes a keyword over a value-level boolean chain:
// "author ellis or smith" reads as author:ellis or author:smith.
func (b *builder) distributeKeyword(v cstNode, kw ast.Keyword, date bool) ast.Node {
	switch x := v.(type) {
	case *cstSimpleBoolean:
		operands, ops := flattenSimpleSpine(x)
		acc := b.distributeKeyword(operands[0], kw, date)
		for i, op := range ops {
			acc = joinBool(op, acc, b.distributeKeyword(operands[i+1], kw, date))
		}
		return acc
	case *cstSimpleNegation:
		return &ast.NotOp{Child: b.distributeKeyword(x.Child, kw, date)}
	default:
		return &ast.KeywordOp{Keyword: kw, Value: b.valueNode(v, date)}
	}
}

func flattenSimpleSpine(n *cstSimpleBoolean) ([]cstNode, []boolOp) {
	var operands []cstNode
	var ops []boolOp
	cur := n
	for {
		operands = append(operands, cur.Left)
		ops = append(ops, cur.Op)
		next, ok := cur.Right.(*cstSimpleBoolean)
		if !ok {
			operands = append(operands, cur.Right)
			return operands, ops
		}
		cur = next
	}
}

// valueStatement wraps a bare value at statement position, keeping the
// same distribution shape as the keyword case but with ValueOp leaves.
func (b *builder) valueStatement(v cstNode) ast.Node {
	switch x := v.(type) {
	case *cstSimpleBoolean:
		operands, ops := flattenSimpleSpine(x)
		acc := b.valueStatement(operands[0])
		for i, op := range ops {
			acc = joinBool(op, acc, b.valueStatement(operands[i+1]))
		}
		return acc
	case *cstSimpleNegation:
		return &ast.NotOp{Child: b.valueStatement(x.Child)}
	default:
		return &ast.ValueOp{Value: b.valueNode(v, false)}
	}
}

// valueNode builds the leaf-level value subtree under a keyword or
// ValueOp. date routes plain terms through date normalization.
func (b *builder) valueNode(v cstNode, date bool) ast.Node {
	switch x := v.(type) {
	case *cstSimpleValue:
		return b.leaf(x.Text, date || x.IsDate)
	case *cstComplex:
		return complexLeaf(x.Raw)
	case *cstRange:
		return &ast.RangeOp{
			Lower: b.valueNode(x.Lower, date),
			Upper: b.valueNode(x.Upper, date),
		}
	case *cstGreater:
		inner := b.valueNode(x.Value, date)
		if x.Equal {
			return &ast.GreaterEqualOp{Value: inner}
		}
		return &ast.GreaterThanOp{Value: inner}
	case *cstLess:
		inner := b.valueNode(x.Value, date)
		if x.Equal {
			return &ast.LessEqualOp{Value: inner}
		}
		return &ast.LessThanOp{Value: inner}
	default:
		s := v.span()
		text := b.input[s.Start:s.End]
		return &ast.Value{Text: text, Wildcard: strings.Contains(text, "*")}
	}
}

// leaf builds a plain value. Date-shaped terms and relative specifiers
// normalize to ISO form; a term that fails normalization stays as
// written, the backend decides what to do with it.
func (b *builder) leaf(text string, date bool) ast.Node {
	if date || isDateSpecifier(text) {
		if norm, err := NormalizeDate(text, b.now); err == nil {
			text = norm
		}
	}
	return &ast.Value{Text: text, Wildcard: strings.Contains(text, "*")}
}

// complexLeaf classifies a delimited value by its first byte.
func complexLeaf(raw string) ast.Node {
	inner := raw[1 : len(raw)-1]
	switch raw[0] {
	case '/':
		return &ast.Regex{Text: inner}
	case '\'':
		return &ast.PartialMatch{Text: inner, Wildcard: strings.Contains(inner, "*")}
	default:
		return &ast.ExactMatch{Text: inner}
	}
}
