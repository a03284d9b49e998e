package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	a := &AndOp{
		Left:  &KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "ellis"}},
		Right: &ValueOp{Value: &Value{Text: "boson"}},
	}
	b := &AndOp{
		Left:  &KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "ellis"}},
		Right: &ValueOp{Value: &Value{Text: "boson"}},
	}
	assert.True(t, Equal(a, b))

	// Different variant at the same position.
	c := &OrOp{Left: a.Left, Right: a.Right}
	assert.False(t, Equal(a, c))

	// Different leaf text.
	d := &AndOp{
		Left:  &KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "smith"}},
		Right: &ValueOp{Value: &Value{Text: "boson"}},
	}
	assert.False(t, Equal(a, d))

	// Wildcard flag participates in equality.
	assert.False(t, Equal(&Value{Text: "witt*"}, &Value{Text: "witt*", Wildcard: true}))

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

func TestEqualIgnoringGrouping(t *testing.T) {
	grouped := &AndOp{
		Left: &Group{Child: &OrOp{
			Left:  &ValueOp{Value: &Value{Text: "a"}},
			Right: &ValueOp{Value: &Value{Text: "b"}},
		}},
		Right: &ValueOp{Value: &Value{Text: "c"}},
	}
	plain := &AndOp{
		Left: &OrOp{
			Left:  &ValueOp{Value: &Value{Text: "a"}},
			Right: &ValueOp{Value: &Value{Text: "b"}},
		},
		Right: &ValueOp{Value: &Value{Text: "c"}},
	}
	assert.False(t, Equal(grouped, plain))
	assert.True(t, EqualIgnoringGrouping(grouped, plain))

	// Grouping is transparent, tree shape is not.
	reassoc := &OrOp{
		Left: &ValueOp{Value: &Value{Text: "a"}},
		Right: &AndOp{
			Left:  &ValueOp{Value: &Value{Text: "b"}},
			Right: &ValueOp{Value: &Value{Text: "c"}},
		},
	}
	assert.False(t, EqualIgnoringGrouping(grouped, reassoc))
}

func TestWalk(t *testing.T) {
	tree := &AndOp{
		Left:  &KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "ellis"}},
		Right: &NotOp{Child: &ValueOp{Value: &Value{Text: "boson"}}},
	}

	var visited []string
	Walk(tree, func(n Node) bool {
		visited = append(visited, label(n))
		return true
	})
	assert.Equal(t, []string{
		"AndOp", "KeywordOp", "Keyword author", "Value ellis",
		"NotOp", "ValueOp", "Value boson",
	}, visited)

	// Returning false prunes the subtree.
	var pruned []string
	Walk(tree, func(n Node) bool {
		pruned = append(pruned, label(n))
		_, isNot := n.(*NotOp)
		return !isNot
	})
	assert.Equal(t, []string{
		"AndOp", "KeywordOp", "Keyword author", "Value ellis", "NotOp",
	}, pruned)
}
