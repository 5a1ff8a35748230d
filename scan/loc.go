package scan

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
)

const pythonMultilineString = "\"\"\""

// countLinesOfCode counts non blank lines that are not comments.
// Comment syntax is picked by language id: // and # lines and /* */ blocks for
// everything, """ blocks for python, =begin/=end and <<-DOC heredocs for ruby.
func countLinesOfCode(content []byte, language string) (int, error) {
	encoding, _, _ := charset.DetermineEncoding(content, "")
	decoded, err := encoding.NewDecoder().Bytes(content)
	if err != nil {
		return 0, fmt.Errorf("failed to decode file: %v", err)
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")

	linesOfCode := 0
	blockEnd := ""

	for _, line := range strings.Split(text, "\n") {
		if len(blockEnd) > 0 {
			_, rest, closed := strings.Cut(line, blockEnd)
			if !closed {
				continue
			}
			line = rest
			blockEnd = ""
		}

		code := strings.TrimSpace(line)
		if len(code) == 0 || strings.HasPrefix(code, "//") || strings.HasPrefix(code, "#") {
			continue
		}

		if language == "ruby" {
			if strings.HasPrefix(code, "=begin") {
				blockEnd = "=end"
				continue
			}
			if strings.HasPrefix(code, "<<-DOC") {
				blockEnd = "DOC"
				continue
			}
		}

		var before, after, end string
		var opened bool
		if isStartOfMultiLineComment(code) {
			before, after, _ = strings.Cut(code, "/*")
			end, opened = "*/", true
		} else if language == "python" {
			before, after, opened = strings.Cut(code, pythonMultilineString)
			end = pythonMultilineString
		}

		if opened {
			code = strings.TrimSpace(before)
			blockEnd = end
			if strings.Contains(after, end) {
				blockEnd = ""
			}
		}

		if len(code) == 0 {
			continue
		}
		linesOfCode++
	}

	return linesOfCode, nil
}

// isStartOfMultiLineComment skips /* followed by a quote or dot, as in regexes and strings
func isStartOfMultiLineComment(line string) bool {
	_, after, found := strings.Cut(line, "/*")
	if !found {
		return false
	}
	if len(after) > 1 && strings.ContainsAny(after[0:1], "'\".") {
		return false
	}
	return true
}
