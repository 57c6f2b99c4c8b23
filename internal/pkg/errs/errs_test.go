//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"appointment-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errors.New("staff member is inactive")
	marked := errs.Mark(errs.Wrap(cause, "commit booking"), errs.ErrNotFound)

	assert.True(t, errs.Is(marked, errs.ErrNotFound))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errs.ErrConflict))
	assert.Contains(t, marked.Error(), "commit booking")

	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrap(errs.New("boom"), "loading rules")
	assert.Equal(t, "loading rules: boom", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "boom")
}

func TestReject(t *testing.T) {
	err := errs.Reject(errs.ErrInvalidWindow, "break outside working hours")

	assert.True(t, errs.Is(err, errs.ErrInvalidWindow))
	assert.False(t, errs.Is(err, errs.ErrInvalidRange))
	assert.Equal(t, "break outside working hours", err.Error())
}
