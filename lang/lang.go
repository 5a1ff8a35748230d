// Package lang identifies the language of a file from its path or extension.
//
// Lookups only inspect the extension string; files are never opened and paths
// are never checked for existence. All functions are safe for concurrent use.
package lang

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Language is a display name paired with a lowercase, URL safe id.
// For example "C++" has the id "cpp".
type Language struct {
	name string
	id   string
}

// Name returns the display name, e.g. "Rust" or "JSON".
func (l Language) Name() string {
	return l.name
}

// ID returns the slug form of the name, e.g. "rust" or "cpp".
func (l Language) ID() string {
	return l.id
}

func (l Language) String() string {
	return l.id
}

// Extensions returns all lowercase extensions (without dot) known for the language.
func (l Language) Extensions() []string {
	return lo.FilterMap(languages, func(e entry, _ int) (string, bool) {
		return e.extension, e.language == l
	})
}

// Languages returns every known language once, sorted by id.
func Languages() []Language {
	all := lo.Uniq(lo.Map(languages, func(e entry, _ int) Language {
		return e.language
	}))
	slices.SortFunc(all, func(a, b Language) int {
		return strings.Compare(a.id, b.id)
	})
	return all
}

// FromPath identifies a language from the extension of the last element of path.
// Only the segment after the final dot counts, so "archive.tar.gz" resolves "gz".
// Names without a dot, or with only a leading dot like ".gitignore", have no extension.
func FromPath(path string) (Language, bool) {
	ext, found := Extension(path)
	if !found {
		return Language{}, false
	}
	return FromExtension(ext)
}

// Extension returns the substring after the last dot of the final path element.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// FromExtension identifies a language from an extension, ignoring case.
// The extension is expected without a leading dot: "rs" is found, ".rs" is not.
func FromExtension(ext string) (Language, bool) {
	for i := 0; i < len(ext); i++ {
		if isUpper(ext[i]) {
			return FromLowercaseExtension(toLower(ext, i))
		}
	}
	return FromLowercaseExtension(ext)
}

// FromLowercaseExtension is FromExtension for input known to be lowercase.
// It does not normalize, so "jSoN" is not found.
func FromLowercaseExtension(ext string) (Language, bool) {
	i, found := slices.BinarySearchFunc(languages, ext, func(e entry, target string) int {
		return strings.Compare(e.extension, target)
	})
	if !found {
		return Language{}, false
	}
	return languages[i].language, true
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// toLower lowercases ASCII letters only, starting at the first uppercase byte
func toLower(s string, from int) string {
	b := []byte(s)
	for i := from; i < len(b); i++ {
		if isUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
