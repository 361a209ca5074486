package project

import (
	"path/filepath"
	"strings"

	"github.com/scriptsync/scriptsync/pkg/config"
	"github.com/scriptsync/scriptsync/pkg/errors"
)

// FileType is the classification of a file's role in the project. The values
// match the type strings used by the remote content API.
type FileType string

const (
	// SourceCode is an executable script file.
	SourceCode FileType = "SERVER_JS"

	// Markup is a template served to clients.
	Markup FileType = "HTML"

	// Manifest is the project manifest.
	Manifest FileType = "JSON"

	// Unknown marks files that aren't part of the project.
	Unknown FileType = ""
)

const (
	// ManifestName is the fixed remote name of the project manifest. A
	// local file with this basename and a .json extension is always the
	// manifest, regardless of the configured extension table.
	ManifestName = "appsscript"

	manifestExtension = ".json"
)

// Default extensions per file type, used when the extension table has no
// entry for the type.
var (
	defaultSourceExtensions = []string{".js", ".gs"}
	defaultMarkupExtensions = []string{".html"}
)

// A File is one logical file of a script project.
type File struct {
	// LocalPath is the file's path relative to the directory the CLI was
	// invoked from.
	LocalPath string

	// RemoteName is the extension-less identifier the remote content API
	// uses for the file. It always uses forward slashes.
	RemoteName string

	// Type is the file's classification.
	Type FileType

	// Source is the file's textual content.
	Source string
}

// Classify maps a local filename to its file type. Files that don't match
// any configured extension are Unknown, and aren't part of the project.
func Classify(fileName string, exts config.ExtensionTable) FileType {
	ext := strings.ToLower(filepath.Ext(fileName))
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))

	if base == ManifestName && ext == manifestExtension {
		return Manifest
	}

	if matchesExtension(ext, exts.SourceCode, defaultSourceExtensions) {
		return SourceCode
	}
	if matchesExtension(ext, exts.Markup, defaultMarkupExtensions) {
		return Markup
	}
	if base == ManifestName && matchesExtension(ext, exts.Manifest, nil) {
		return Manifest
	}
	return Unknown
}

// DefaultExtension returns the extension to use when materializing a file of
// the given type locally. The manifest extension is fixed so that the
// manifest round-trips under its well-known name.
func DefaultExtension(fileType FileType, exts config.ExtensionTable) (string, error) {
	switch fileType {
	case SourceCode:
		return firstExtension(exts.SourceCode, defaultSourceExtensions), nil
	case Markup:
		return firstExtension(exts.Markup, defaultMarkupExtensions), nil
	case Manifest:
		return manifestExtension, nil
	default:
		return "", errors.InvalidFileType{Type: string(fileType)}
	}
}

// RemoteName derives the remote logical name for the file at relPath, which
// must be relative to the project's source directory.
func RemoteName(relPath string, fileType FileType) string {
	name := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	name = filepath.ToSlash(name)
	if fileType == Manifest {
		return ManifestName
	}
	return name
}

func matchesExtension(ext string, configured, defaults []string) bool {
	candidates := configured
	if len(candidates) == 0 {
		candidates = defaults
	}
	for _, candidate := range candidates {
		if strings.ToLower(candidate) == ext {
			return true
		}
	}
	return false
}

func firstExtension(configured, defaults []string) string {
	if len(configured) > 0 {
		return strings.ToLower(configured[0])
	}
	return defaults[0]
}
