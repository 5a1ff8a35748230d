package main

import (
	"bytes"
	"detectlang/stats"
	"detectlang/util"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}
	app := newApp()
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"detect-lang"}, args...))
	return out.String(), err
}

func rows(output string) [][]string {
	var fields [][]string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		fields = append(fields, strings.Fields(line))
	}
	return fields
}

func TestPathCommand(t *testing.T) {
	out, err := run(t, "path", "foo.rs", "docs/foo.md", "Makefile", "archive.tar.gz")
	require.Nil(t, err)
	assert.Equal(t, [][]string{
		{"foo.rs", "Rust", "rust"},
		{"docs/foo.md", "Markdown", "markdown"},
		{"Makefile", "-", "-"},
		{"archive.tar.gz", "-", "-"},
	}, rows(out))
}

func TestExtCommandJSON(t *testing.T) {
	out, err := run(t, "ext", "--json", "jSoN", "hpp", "nope")
	require.Nil(t, err)

	var results []lookupResult
	require.Nil(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []lookupResult{
		{Input: "jSoN", Found: true, Name: "JSON", ID: "json"},
		{Input: "hpp", Found: true, Name: "C++", ID: "cpp"},
		{Input: "nope", Found: false},
	}, results)
}

func TestExtCommandLowercase(t *testing.T) {
	out, err := run(t, "ext", "--lowercase", "jSoN", "json")
	require.Nil(t, err)
	assert.Equal(t, [][]string{
		{"jSoN", "-", "-"},
		{"json", "JSON", "json"},
	}, rows(out))
}

func TestStrictExitCode(t *testing.T) {
	_, err := run(t, "path", "--strict", "foo.rs")
	require.Nil(t, err)

	_, err = run(t, "path", "--strict", "foo.rs", ".gitignore")
	var withCode *util.ErrorWithCode
	require.True(t, errors.As(err, &withCode))
	assert.Equal(t, util.ERROR_UNKNOWN_LANGUAGE, withCode.StatusCode)
}

func TestLookupWithoutInput(t *testing.T) {
	_, err := run(t, "ext")
	assert.NotNil(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--json")
	require.Nil(t, err)

	var entries []languageEntry
	require.Nil(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	assert.Contains(t, entries, languageEntry{ID: "cpp", Name: "C++", Extensions: []string{"cc", "cpp", "cxx", "hpp", "hxx"}})
	assert.Contains(t, entries, languageEntry{ID: "yaml", Name: "YAML", Extensions: []string{"yaml", "yml"}})

	out, err = run(t, "list")
	require.Nil(t, err)
	assert.Contains(t, rows(out), []string{"rust", "Rust", "rs"})
}

func TestScanCommand(t *testing.T) {
	clonePath := t.TempDir()
	repository, err := git.PlainInit(clonePath, false)
	require.Nil(t, err)
	worktree, err := repository.Worktree()
	require.Nil(t, err)
	require.Nil(t, os.WriteFile(filepath.Join(clonePath, "lib.rs"), []byte("fn main() {}\n"), 0666))
	_, err = worktree.Add("lib.rs")
	require.Nil(t, err)
	_, err = worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.Nil(t, err)

	out, err := run(t, "scan", "--src", clonePath)
	require.Nil(t, err)

	var result stats.CodeStats
	require.Nil(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.TotalFileCount)
	assert.Equal(t, &stats.LanguageStats{Name: "Rust", NumberOfFiles: 1, LinesOfCode: 1}, result.CountersByLanguage["rust"])

	outputFile := filepath.Join(t.TempDir(), "out", "stats.json")
	_, err = run(t, "scan", "--src", clonePath, "--out", outputFile)
	require.Nil(t, err)
	_, err = os.Stat(outputFile)
	assert.Nil(t, err)
}

func TestScanCommandBadClone(t *testing.T) {
	_, err := run(t, "scan", "--src", filepath.Join(t.TempDir(), "missing"))
	var withCode *util.ErrorWithCode
	require.True(t, errors.As(err, &withCode))
	assert.Equal(t, util.ERROR_BAD_CLONE_PATH, withCode.StatusCode)
}
