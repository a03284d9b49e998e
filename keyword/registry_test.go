package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	reg := Default()

	tests := []struct {
		alias string
		name  string
	}{
		{"author", "author"},
		{"a", "author"},
		{"au", "author"},
		{"t", "title"},
		{"ti", "title"},
		{"title", "title"},
		{"j", "journal"},
		{"ac", "author-count"},
		{"cited", "topcite"},
		{"type", "type-code"},
	}
	for _, tt := range tests {
		kw, ok := reg.Resolve(tt.alias)
		require.True(t, ok, "alias %q", tt.alias)
		assert.Equal(t, tt.name, kw.Name, "alias %q", tt.alias)
		assert.False(t, kw.Date)
		assert.False(t, kw.Nested)
	}
}

func TestResolveDateAndNested(t *testing.T) {
	reg := Default()

	for _, alias := range []string{"date", "d", "year", "da", "du", "de"} {
		kw, ok := reg.Resolve(alias)
		require.True(t, ok, "alias %q", alias)
		assert.True(t, kw.Date, "alias %q", alias)
	}

	for _, alias := range []string{"citedby", "refersto", "citedbyx", "referstox"} {
		kw, ok := reg.Resolve(alias)
		require.True(t, ok, "alias %q", alias)
		assert.True(t, kw.Nested, "alias %q", alias)
	}
}

func TestResolveNormalization(t *testing.T) {
	reg := Default()

	kw, ok := reg.Resolve("AUTHOR")
	require.True(t, ok)
	assert.Equal(t, "author", kw.Name)

	kw, ok = reg.Resolve("  Title ")
	require.True(t, ok)
	assert.Equal(t, "title", kw.Name)

	_, ok = reg.Resolve("nosuchfield")
	assert.False(t, ok)
	_, ok = reg.Resolve("")
	assert.False(t, ok)
}

func TestMatchPrefix(t *testing.T) {
	reg := Default()

	// Longest alias wins: date-added, not date.
	alias, kw, ok := reg.MatchPrefix("date-added 2020")
	require.True(t, ok)
	assert.Equal(t, "date-added", alias)
	assert.Equal(t, "date-added", kw.Name)

	alias, kw, ok = reg.MatchPrefix("date 2020")
	require.True(t, ok)
	assert.Equal(t, "date", alias)
	assert.Equal(t, "date", kw.Name)

	_, _, ok = reg.MatchPrefix("xyzzy")
	assert.False(t, ok)
}

func TestNewRegistryShadowing(t *testing.T) {
	// Later tables win on collisions: a nested operator shadows a plain
	// field registered under the same alias.
	reg := NewRegistry(
		map[string][]string{"cited": {"cited"}},
		nil,
		map[string][]string{"cited": {"cited"}},
	)
	kw, ok := reg.Resolve("cited")
	require.True(t, ok)
	assert.True(t, kw.Nested)
}

func TestAliasesAndCanonical(t *testing.T) {
	reg := NewRegistry(
		map[string][]string{"title": {"title", "t"}},
		map[string][]string{"date": {"date", "d"}},
		nil,
	)
	assert.Equal(t, []string{"d", "date", "t", "title"}, reg.Aliases())
	assert.Equal(t, []string{"date", "title"}, reg.Canonical())
}
