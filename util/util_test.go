package util

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryExtensionsSorted(t *testing.T) {
	assert.True(t, sort.StringsAreSorted(binaryExtensions))
}

func TestIsBinaryExt(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want bool
	}{
		{"png with dot", ".png", true},
		{"png no dot", "png", true},
		{"upper case", ".ZIP", true},
		{"first entry", "7z", true},
		{"last entry", ".zipx", true},
		{"go source", ".go", false},
		{"markdown", ".md", false},
		{"empty", "", false},
		{"only dot", ".", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBinaryExt(tt.ext), "mismatch for %q", tt.ext)
		})
	}
}

func TestNoisyDirectoryExclusionPatterns(t *testing.T) {
	patterns := NoisyDirectoryExclusionPatterns()
	require.Len(t, patterns, len(noisyDirectoryNames))

	matched := false
	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		require.Nil(t, err, "pattern %q does not compile", pattern)
		if compiled.Match("web/node_modules/left-pad/index.js") {
			matched = true
		}
	}
	assert.True(t, matched)
}

func TestErrorWithCode(t *testing.T) {
	inner := fmt.Errorf("boom")
	var err error = &ErrorWithCode{StatusCode: ERROR_NO_REVISION, InternalError: inner}

	assert.Equal(t, "boom", err.Error())
	assert.True(t, errors.Is(err, inner))

	var withCode *ErrorWithCode
	require.True(t, errors.As(err, &withCode))
	assert.Equal(t, ERROR_NO_REVISION, withCode.StatusCode)
}
