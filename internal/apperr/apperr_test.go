package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = &Error{Message: "unknown task id: %d"}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSample.Fmt(42)

	assert.Equal(t, "unknown task id: 42", err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrapExposesCause(t *testing.T) {
	err := errSample.Fmt(7).Wrap(io.EOF)

	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, errors.Is(err, errSample))
	assert.Equal(t, "unknown task id: 7: EOF", err.Error())
}

func TestDistinctSentinels(t *testing.T) {
	other := &Error{Message: "other"}

	assert.False(t, errors.Is(errSample.Fmt(1), other))
}
