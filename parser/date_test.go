package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspirehep/inspire-query-parser/errors"
)

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2020, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso day", "2015-06-30", "2015-06-30"},
		{"unpadded day", "2015-6-3", "2015-06-03"},
		{"slash day", "2015/06/30", "2015-06-30"},
		{"dotted day", "2015.06.30", "2015-06-30"},
		{"textual day", "30 jun 2015", "2015-06-30"},
		{"textual day full month", "30 june 2015", "2015-06-30"},
		{"textual day with comma", "Jun 30, 2015", "2015-06-30"},
		{"month", "2015-06", "2015-06"},
		{"textual month", "june 2015", "2015-06"},
		{"textual month uppercase", "JUNE 2015", "2015-06"},
		{"month first", "06/2015", "2015-06"},
		{"year", "2015", "2015"},
		{"wildcard passthrough", "2015-06-*", "2015-06-*"},
		{"today", "today", "2020-06-15"},
		{"today uppercase", "TODAY", "2020-06-15"},
		{"today with offset", "today-2", "2020-06-13"},
		{"today with spaced offset", "today - 2", "2020-06-13"},
		{"yesterday", "yesterday", "2020-06-14"},
		{"this month", "this month", "2020-06"},
		{"this month with offset", "this month-1", "2020-05"},
		{"last month", "last month", "2020-05"},
		{"last month with offset", "last month-2", "2020-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.in, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDateMalformed(t *testing.T) {
	now := time.Date(2020, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, in := range []string{"", "notadate", "2015-13-45", "30 foo 2015", "99999"} {
		t.Run(in, func(t *testing.T) {
			_, err := NormalizeDate(in, now)
			require.Error(t, err)
			assert.True(t, errors.IsMalformedDateError(err), "want ErrMalformedDate, got %v", err)
		})
	}
}

func TestIsDateSpecifier(t *testing.T) {
	assert.True(t, isDateSpecifier("today"))
	assert.True(t, isDateSpecifier("This Month"))
	assert.True(t, isDateSpecifier("last month - 3"))
	assert.False(t, isDateSpecifier("todays"))
	assert.False(t, isDateSpecifier("2015-06-30"))
	assert.False(t, isDateSpecifier("month"))
}
