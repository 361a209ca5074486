package sync

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/buger/goterm"

	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/project"
)

// syntaxErrPattern matches the located compile errors the content API embeds
// in its rejection messages.
var syntaxErrPattern = regexp.MustCompile(`Syntax error: (.+) line: (\d+) file: (\S+)`)

// snippetContext is the number of lines shown on each side of the error line.
const snippetContext = 4

// extractSyntaxError tries to turn an API rejection into a located syntax
// error with a source snippet. When the message doesn't carry a location, or
// the named file wasn't part of the push, it reports false and the caller
// falls back to the generic API error.
func extractSyntaxError(apiErr errors.APIError, pushed []project.File) (errors.SyntaxError, bool) {
	match := syntaxErrPattern.FindStringSubmatch(apiErr.Message)
	if match == nil {
		return errors.SyntaxError{}, false
	}

	name, lineStr, fileName := match[1], match[2], match[3]
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return errors.SyntaxError{}, false
	}

	source, ok := sourceForName(pushed, fileName)
	if !ok {
		return errors.SyntaxError{}, false
	}

	return errors.SyntaxError{
		Name:    name,
		Line:    line,
		File:    fileName,
		Snippet: renderSnippet(source, line),
		Cause:   apiErr,
	}, true
}

func sourceForName(pushed []project.File, fileName string) (string, bool) {
	// Some provider errors name the file with its extension attached, so
	// match the stripped name as well.
	stripped := fileName
	if idx := strings.LastIndex(fileName, "."); idx > 0 {
		stripped = fileName[:idx]
	}

	for _, f := range pushed {
		if f.RemoteName == fileName || f.RemoteName == stripped {
			return f.Source, true
		}
	}
	return "", false
}

// renderSnippet formats the source around the 1-based error line, with up to
// snippetContext lines on each side. The error line is highlighted.
func renderSnippet(source string, line int) string {
	lines := strings.Split(source, "\n")

	errIdx := line - 1
	if errIdx < 0 {
		errIdx = 0
	}
	if errIdx >= len(lines) {
		errIdx = len(lines) - 1
	}

	start := errIdx - snippetContext
	if start < 0 {
		start = 0
	}
	end := errIdx + snippetContext + 1
	if end > len(lines) {
		end = len(lines)
	}

	var rendered strings.Builder
	for i := start; i < end; i++ {
		marker := "  "
		text := lines[i]
		if i == errIdx {
			marker = "> "
			text = goterm.Color(text, goterm.RED)
		}
		fmt.Fprintf(&rendered, "%s%4d | %s\n", marker, i+1, text)
	}
	return rendered.String()
}
