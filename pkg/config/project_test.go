package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

func writeProjectConfig(t *testing.T, dir, contents string) {
	fs = afero.NewMemMapFs()
	path := filepath.Join(dir, ProjectConfigName)
	require.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0644))
}

func TestParseProject(t *testing.T) {
	writeProjectConfig(t, "project", `
version: v1alpha1
scriptId: abc123
srcDir: src
ignore:
  - "*.md"
  - "!README.md"
filePushOrder:
  - util.js
fileExtensions:
  sourceCode:
    - .gs
flat: true
`)

	project, err := ParseProject("project")
	require.NoError(t, err)
	assert.Equal(t, "abc123", project.ScriptID)
	assert.Equal(t, filepath.Join("project", "src"), project.SrcDir)
	assert.Equal(t, []string{"*.md", "!README.md"}, project.Ignore)
	assert.Equal(t, []string{"util.js"}, project.FilePushOrder)
	assert.Equal(t, []string{".gs"}, project.FileExtensions.SourceCode)
	assert.False(t, project.Recursive())
	assert.Equal(t, filepath.Join("project", ProjectConfigName), project.GetPath())
}

func TestParseProjectDefaults(t *testing.T) {
	writeProjectConfig(t, "project", "scriptId: abc123\n")

	project, err := ParseProject("project")
	require.NoError(t, err)
	assert.Equal(t, InitialProjectConfigVersion, project.Version)
	// Without a srcDir, the project root is the config's own directory.
	assert.Equal(t, "project", project.SrcDir)
	assert.True(t, project.Recursive())
}

func TestParseProjectAbsoluteSrcDir(t *testing.T) {
	writeProjectConfig(t, "project", "scriptId: abc123\nsrcDir: /work/src\n")

	project, err := ParseProject("project")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/work/src"), project.SrcDir)
}

func TestParseProjectMissingFile(t *testing.T) {
	fs = afero.NewMemMapFs()

	_, err := ParseProject("project")
	require.Error(t, err)
	friendly, ok := err.(errors.FriendlyError)
	require.True(t, ok)
	assert.Contains(t, friendly.FriendlyMessage(), "No project config found")
}

func TestParseProjectMissingScriptID(t *testing.T) {
	writeProjectConfig(t, "project", "srcDir: src\n")

	_, err := ParseProject("project")
	assert.Equal(t, errors.MissingProjectConfig{Field: "scriptId"}, err)
}

func TestParseProjectExtraField(t *testing.T) {
	writeProjectConfig(t, "project", "scriptId: abc123\nbogusField: true\n")

	_, err := ParseProject("project")
	require.Error(t, err)
	friendly, ok := errors.RootCause(err).(errors.FriendlyError)
	require.True(t, ok)
	assert.Contains(t, friendly.FriendlyMessage(), "could not be parsed")
}

func TestParseProjectIncompatibleVersion(t *testing.T) {
	writeProjectConfig(t, "project", "version: v9\nscriptId: abc123\n")

	_, err := ParseProject("project")
	require.Error(t, err)
	versionErr, ok := errors.RootCause(err).(incompatibleVersionError)
	require.True(t, ok)
	assert.Contains(t, versionErr.FriendlyMessage(), `got "v9"`)
}
