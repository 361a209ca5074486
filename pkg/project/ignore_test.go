package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreMatcher(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		included bool
	}{
		{
			name:     "NoPatternsIncludesEverything",
			patterns: nil,
			path:     "Code.js",
			included: true,
		},
		{
			name:     "ExactMatch",
			patterns: []string{"secret.js"},
			path:     "secret.js",
			included: false,
		},
		{
			name:     "NonMatchIncluded",
			patterns: []string{"secret.js"},
			path:     "Code.js",
			included: true,
		},
		{
			name:     "Wildcard",
			patterns: []string{"*.txt"},
			path:     "notes.txt",
			included: false,
		},
		{
			name:     "WildcardDoesNotCrossDirectories",
			patterns: []string{"*.txt"},
			path:     "docs/notes.txt",
			included: true,
		},
		{
			name:     "DoubleStarCrossesDirectories",
			patterns: []string{"**.txt"},
			path:     "docs/notes.txt",
			included: false,
		},
		{
			name:     "DirectorySubtree",
			patterns: []string{"vendor/**"},
			path:     "vendor/lib/index.js",
			included: false,
		},
		{
			name:     "NegationReincludes",
			patterns: []string{"**.js", "!Code.js"},
			path:     "Code.js",
			included: true,
		},
		{
			name:     "NegationOnlyAffectsItsMatch",
			patterns: []string{"**.js", "!Code.js"},
			path:     "other.js",
			included: false,
		},
		{
			name:     "LaterPatternWins",
			patterns: []string{"!Code.js", "**.js"},
			path:     "Code.js",
			included: false,
		},
		{
			name:     "DotfilesAreNotSpecial",
			patterns: []string{".env"},
			path:     ".env",
			included: false,
		},
		{
			name:     "DotfilesIncludedWithoutPattern",
			patterns: []string{"*.txt"},
			path:     ".env",
			included: true,
		},
		{
			name:     "CommentsAndBlanksSkipped",
			patterns: []string{"", "# generated files", "*.log"},
			path:     "debug.log",
			included: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			matcher, err := CompileIgnore(test.patterns)
			assert.NoError(t, err)
			assert.Equal(t, test.included, matcher.Included(test.path))
		})
	}
}

func TestCompileIgnoreBadPattern(t *testing.T) {
	_, err := CompileIgnore([]string{"[unterminated"})
	assert.Error(t, err)
}
