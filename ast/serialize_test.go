package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"keyword value",
			&KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "ellis"}},
			"author:ellis",
		},
		{
			"exact match",
			&KeywordOp{Keyword: Keyword{Name: "author"}, Value: &ExactMatch{Text: "Ellis, J"}},
			`author:"Ellis, J"`,
		},
		{
			"partial match",
			&KeywordOp{Keyword: Keyword{Name: "title"}, Value: &PartialMatch{Text: "Higgs boson"}},
			"title:'Higgs boson'",
		},
		{
			"regex",
			&KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Regex{Text: "^Ellis"}},
			"author:/^Ellis/",
		},
		{
			"range",
			&KeywordOp{Keyword: Keyword{Name: "date"}, Value: &RangeOp{
				Lower: &Value{Text: "2015"},
				Upper: &Value{Text: "2017"},
			}},
			"date:2015->2017",
		},
		{
			"greater equal",
			&KeywordOp{Keyword: Keyword{Name: "topcite"}, Value: &GreaterEqualOp{Value: &Value{Text: "100"}}},
			"topcite:>= 100",
		},
		{
			"boolean chain",
			&AndOp{
				Left:  &KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "ellis"}},
				Right: &NotOp{Child: &KeywordOp{Keyword: Keyword{Name: "title"}, Value: &Value{Text: "boson"}}},
			},
			"author:ellis and not title:boson",
		},
		{
			"nested boolean parenthesized",
			&AndOp{
				Left: &OrOp{
					Left:  &ValueOp{Value: &Value{Text: "a"}},
					Right: &ValueOp{Value: &Value{Text: "b"}},
				},
				Right: &ValueOp{Value: &Value{Text: "c"}},
			},
			"(a or b) and c",
		},
		{
			"group",
			&Group{Child: &OrOp{
				Left:  &ValueOp{Value: &Value{Text: "a"}},
				Right: &ValueOp{Value: &Value{Text: "b"}},
			}},
			"(a or b)",
		},
		{
			"nested keyword",
			&NestedKeywordOp{
				Keyword: Keyword{Name: "citedby"},
				Query:   &KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "witten"}},
			},
			"citedby:author:witten",
		},
		{
			"malformed",
			&MalformedQuery{Words: []string{"title:", "AND", "AND"}},
			"title: AND AND",
		},
		{
			"partial parse",
			&QueryWithMalformedPart{
				Recognized: &KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "ellis"}},
				Malformed:  &MalformedQuery{Words: []string{")("}},
			},
			"author:ellis )(",
		},
		{
			"empty",
			&ValueOp{Value: &Empty{}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.node))
		})
	}
}

func TestTreeFormat(t *testing.T) {
	tree := &KeywordOp{
		Keyword: Keyword{Name: "date"},
		Value: &RangeOp{
			Lower: &Value{Text: "2015"},
			Upper: &Value{Text: "2017"},
		},
	}
	want := "" +
		"KeywordOp\n" +
		"├── Keyword date\n" +
		"└── RangeOp\n" +
		"    ├── Value 2015\n" +
		"    └── Value 2017\n"
	assert.Equal(t, want, TreeFormat(tree))
}

func TestToMap(t *testing.T) {
	m := ToMap(&KeywordOp{Keyword: Keyword{Name: "author"}, Value: &Value{Text: "witt*", Wildcard: true}})
	assert.Equal(t, "keyword_op", m["type"])
	assert.Equal(t, "author", m["keyword"])

	inner, ok := m["value"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "value", inner["type"])
	assert.Equal(t, "witt*", inner["text"])
	assert.Equal(t, true, inner["wildcard"])
}
