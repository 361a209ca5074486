package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	root := New("connection refused")
	err := WithContext(WithContext(root, "fetch content"), "pull")

	assert.EqualError(t, err, "pull: fetch content: connection refused")
	assert.Equal(t, root, RootCause(err))
}

func TestRootCauseUnwrapped(t *testing.T) {
	err := New("plain")
	assert.Equal(t, err, RootCause(err))
	assert.Nil(t, RootCause(nil))
}

func TestFriendlyError(t *testing.T) {
	err := NewFriendlyError("no project config found at %q", "project/scriptsync.yaml")

	friendly, ok := err.(FriendlyError)
	assert.True(t, ok)
	assert.Equal(t, `no project config found at "project/scriptsync.yaml"`,
		friendly.FriendlyMessage())
	assert.Equal(t, friendly.FriendlyMessage(), err.Error())
}

func TestSyntaxErrorMessage(t *testing.T) {
	err := SyntaxError{
		Name:    "Missing ; before statement.",
		Line:    3,
		File:    "Code",
		Snippet: ">    3 | bad line\n",
	}

	assert.Equal(t, `Missing ; before statement. - "Code:3"`, err.Error())
	assert.Contains(t, err.FriendlyMessage(), "bad line")
}
