package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/inspirehep/inspire-query-parser/errors"
)

// timeNow is swapped out in tests so relative date specifiers resolve
// against a fixed clock.
var timeNow = time.Now

var reSpecifier = regexp.MustCompile(`^(?i)(today|yesterday|this\s+month|last\s+month)\s*(?:-\s*(\d+))?$`)

// Date layouts accepted per granularity. Parsing tries day, then
// month, then year; the first hit decides the output precision.
var (
	dayLayouts = []string{
		"2006-1-2",
		"2006/1/2",
		"2006.1.2",
		"2 Jan 2006",
		"2 January 2006",
		"Jan 2, 2006",
		"January 2, 2006",
		"Jan 2 2006",
		"January 2 2006",
	}
	monthLayouts = []string{
		"2006-1",
		"2006/1",
		"2006.1",
		"1-2006",
		"1/2006",
		"Jan 2006",
		"January 2006",
	}
	yearLayouts = []string{
		"2006",
	}
)

// isDateSpecifier reports whether text is a relative date specifier
// (today, yesterday, this month, last month, optionally minus an
// integer offset).
func isDateSpecifier(text string) bool {
	return reSpecifier.MatchString(strings.TrimSpace(text))
}

// NormalizeDate resolves a date value to ISO form at the precision the
// input carries: 2006-01-02 for days, 2006-01 for months, 2006 for
// years. Relative specifiers resolve against now; today-N counts days
// back, this month-N counts months back. Values containing a wildcard
// pass through untouched. Unparseable input returns ErrMalformedDate.
func NormalizeDate(text string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.Wrap(errors.ErrMalformedDate, "empty date value")
	}
	if strings.Contains(trimmed, "*") {
		return trimmed, nil
	}

	if m := reSpecifier.FindStringSubmatch(trimmed); m != nil {
		offset := 0
		if m[2] != "" {
			offset, _ = strconv.Atoi(m[2])
		}
		spec := strings.Join(strings.Fields(strings.ToLower(m[1])), " ")
		switch spec {
		case "today":
			return now.AddDate(0, 0, -offset).Format("2006-01-02"), nil
		case "yesterday":
			return now.AddDate(0, 0, -offset-1).Format("2006-01-02"), nil
		case "this month":
			return now.AddDate(0, -offset, 0).Format("2006-01"), nil
		case "last month":
			return now.AddDate(0, -offset-1, 0).Format("2006-01"), nil
		}
	}

	// time.Parse is case-sensitive about month names; queries are not.
	cased := titleCaseWords(trimmed)
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, cased); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, cased); err == nil {
			return t.Format("2006-01"), nil
		}
	}
	for _, layout := range yearLayouts {
		if t, err := time.Parse(layout, cased); err == nil {
			return t.Format("2006"), nil
		}
	}

	return "", errors.Wrapf(errors.ErrMalformedDate, "unrecognized date %q", text)
}

// titleCaseWords uppercases the first letter of each alphabetic run
// and lowercases the rest, so "june 2020" and "JUNE 2020" both hit the
// "January 2006" layout.
func titleCaseWords(s string) string {
	b := []byte(s)
	prevAlpha := false
	for i := range b {
		c := b[i]
		isAlpha := c|0x20 >= 'a' && c|0x20 <= 'z'
		switch {
		case isAlpha && !prevAlpha:
			b[i] = c &^ 0x20
		case isAlpha:
			b[i] = c | 0x20
		}
		prevAlpha = isAlpha
	}
	return string(b)
}
