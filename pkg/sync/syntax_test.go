package sync

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/project"
)

func tenLineSource() string {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	return strings.Join(lines, "\n")
}

func pushedFiles() []project.File {
	return []project.File{
		{LocalPath: "src/Code.js", RemoteName: "Code", Type: project.SourceCode,
			Source: tenLineSource()},
	}
}

func rejection(line int) errors.APIError {
	return errors.APIError{
		Status:  400,
		Message: fmt.Sprintf("Syntax error: Unexpected token. line: %d file: Code", line),
	}
}

// snippetLines extracts the line numbers present in a rendered snippet.
func snippetLines(snippet string) []string {
	var lines []string
	for _, rendered := range strings.Split(strings.TrimRight(snippet, "\n"), "\n") {
		prefix := strings.Split(rendered, "|")[0]
		fields := strings.Fields(prefix)
		lines = append(lines, fields[len(fields)-1])
	}
	return lines
}

func TestExtractSyntaxError(t *testing.T) {
	syntaxErr, ok := extractSyntaxError(rejection(5), pushedFiles())
	assert.True(t, ok)
	assert.Equal(t, "Unexpected token.", syntaxErr.Name)
	assert.Equal(t, 5, syntaxErr.Line)
	assert.Equal(t, "Code", syntaxErr.File)
	assert.Equal(t, `Unexpected token. - "Code:5"`, syntaxErr.Error())

	// Four lines of context on each side of line 5.
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		snippetLines(syntaxErr.Snippet))
}

func TestSnippetBoundsFirstLine(t *testing.T) {
	syntaxErr, ok := extractSyntaxError(rejection(1), pushedFiles())
	assert.True(t, ok)
	// No leading context, up to four lines of trailing context.
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, snippetLines(syntaxErr.Snippet))
}

func TestSnippetBoundsLastLine(t *testing.T) {
	syntaxErr, ok := extractSyntaxError(rejection(10), pushedFiles())
	assert.True(t, ok)
	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, snippetLines(syntaxErr.Snippet))
}

func TestSnippetLineClamped(t *testing.T) {
	syntaxErr, ok := extractSyntaxError(rejection(100), pushedFiles())
	assert.True(t, ok)
	// An out-of-range line clamps to the end of the file.
	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, snippetLines(syntaxErr.Snippet))
}

func TestExtractUnknownFile(t *testing.T) {
	apiErr := errors.APIError{
		Status:  400,
		Message: "Syntax error: Unexpected token. line: 2 file: Missing",
	}

	_, ok := extractSyntaxError(apiErr, pushedFiles())
	assert.False(t, ok)
}

func TestExtractFileNamedWithExtension(t *testing.T) {
	apiErr := errors.APIError{
		Status:  400,
		Message: "Syntax error: Unexpected token. line: 2 file: Code.gs",
	}

	syntaxErr, ok := extractSyntaxError(apiErr, pushedFiles())
	assert.True(t, ok)
	assert.Equal(t, 2, syntaxErr.Line)
}

func TestExtractUnlocatedMessage(t *testing.T) {
	apiErr := errors.APIError{Status: 400, Message: "quota exceeded"}

	_, ok := extractSyntaxError(apiErr, pushedFiles())
	assert.False(t, ok)
}
