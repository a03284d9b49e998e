package keyword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTOML(t *testing.T) {
	doc := `
[fields]
title = ["title", "ti", "t"]
author = ["author", "a"]

[datefields]
date = ["date", "d"]

[nested]
citedby = ["citedby"]
`
	reg, err := LoadTOML(strings.NewReader(doc))
	require.NoError(t, err)

	kw, ok := reg.Resolve("ti")
	require.True(t, ok)
	assert.Equal(t, "title", kw.Name)

	kw, ok = reg.Resolve("d")
	require.True(t, ok)
	assert.True(t, kw.Date)

	kw, ok = reg.Resolve("citedby")
	require.True(t, ok)
	assert.True(t, kw.Nested)

	// The document replaces the defaults, it does not merge.
	_, ok = reg.Resolve("topcite")
	assert.False(t, ok)
}

func TestLoadTOMLErrors(t *testing.T) {
	_, err := LoadTOML(strings.NewReader("not [ valid toml"))
	assert.Error(t, err)

	_, err = LoadTOML(strings.NewReader(""))
	assert.Error(t, err)

	_, err = LoadTOML(strings.NewReader("[unrelated]\nx = 1\n"))
	assert.Error(t, err)
}
