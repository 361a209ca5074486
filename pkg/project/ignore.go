package project

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

// IgnoreMatcher evaluates paths against an ordered list of glob patterns.
// Patterns prefixed with `!` re-include paths excluded by an earlier
// pattern. Dotfiles are matched like any other file.
type IgnoreMatcher struct {
	rules []ignoreRule
}

type ignoreRule struct {
	pattern glob.Glob
	negated bool
}

// CompileIgnore compiles the given patterns into a matcher. An empty pattern
// list matches nothing, so every path is included.
func CompileIgnore(patterns []string) (*IgnoreMatcher, error) {
	matcher := &IgnoreMatcher{}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}

		negated := strings.HasPrefix(pattern, "!")
		if negated {
			pattern = pattern[1:]
		}

		compiled, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, errors.WithContext(err, "compile ignore pattern")
		}
		matcher.rules = append(matcher.rules, ignoreRule{compiled, negated})
	}
	return matcher, nil
}

// Included returns whether relPath survives the ignore patterns. relPath is
// evaluated relative to the project's source directory.
func (matcher *IgnoreMatcher) Included(relPath string) bool {
	return !matcher.Excluded(relPath)
}

// Excluded returns whether relPath matches the pattern set once negations
// are applied. Later patterns win over earlier ones.
func (matcher *IgnoreMatcher) Excluded(relPath string) bool {
	relPath = filepath.ToSlash(relPath)

	excluded := false
	for _, rule := range matcher.rules {
		if rule.pattern.Match(relPath) {
			excluded = !rule.negated
		}
	}
	return excluded
}
