package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config read", "E100", "Config file could not be read", CategoryConfig},
		{"invalid value", "E102", "Invalid config value", CategoryConfig},
		{"cli category", "E200", "Unknown notification category", CategoryCLI},
		{"unknown code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.wantCat, err.Category)
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("E102").WithDetail("toast.duration must be positive")
	assert.Equal(t, "E102: Invalid config value: toast.duration must be positive", err.Error())

	plain := Newf(CategoryRuntime, "loop stopped after %d tasks", 3)
	assert.Equal(t, "loop stopped after 3 tasks", plain.Error())
}

func TestWrapAndUnwrap(t *testing.T) {
	err := New("E100").Wrap(fs.ErrNotExist)

	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "file does not exist")
}

func TestIsMatchesCode(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", New("E101").WithDetail("line 3"))

	assert.True(t, Is(wrapped, New("E101")))
	assert.False(t, Is(wrapped, New("E102")))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil, "E100"))

	orig := New("E103")
	got := FromError(fmt.Errorf("ctx: %w", orig), "E100")
	assert.Same(t, orig, got)

	plain := FromError(stderrors.New("boom"), "E202")
	require.NotNil(t, plain)
	assert.Equal(t, "E202", plain.Code)
	assert.Equal(t, "boom", plain.Unwrap().Error())
}

func TestLookup(t *testing.T) {
	tmpl, ok := Lookup("E203")
	assert.True(t, ok)
	assert.Equal(t, CategoryCLI, tmpl.Category)

	_, ok = Lookup("E000")
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	err := New("E102").
		WithDetailf("toast.colors.%s: %q is not a hex color", "info", "blue").
		Wrap(stderrors.New("bad value"))

	out := err.Format()

	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "E102:")
	assert.Contains(t, out, "Invalid config value")
	assert.Contains(t, out, `toast.colors.info: "blue" is not a hex color`)
	assert.Contains(t, out, "caused by: bad value")
	assert.Contains(t, out, "hint: Remove the field to fall back to its default.")
}
