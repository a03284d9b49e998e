package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelRouting(t *testing.T) {
	err := Wrap(ErrMalformedDate, "normalizing \"2015-13-45\"")
	assert.True(t, Is(err, ErrMalformedDate))
	assert.True(t, IsMalformedDateError(err))
	assert.False(t, IsUnknownKeywordError(err))

	wrapped := Wrapf(ErrUnknownKeyword, "alias %q", "foo")
	assert.True(t, IsUnknownKeywordError(wrapped))
	assert.Contains(t, wrapped.Error(), "foo")
}

func TestNewMalformedDateError(t *testing.T) {
	err := NewMalformedDateError("bad value %q", "yesterweek")
	assert.True(t, IsMalformedDateError(err))
	assert.Contains(t, err.Error(), "yesterweek")
}

func TestNilSafety(t *testing.T) {
	assert.False(t, IsMalformedDateError(nil))
	assert.False(t, IsUnknownKeywordError(nil))
}
