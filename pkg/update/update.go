package update

import (
	"encoding/json"
	"io"
	"net/http"

	goversion "github.com/hashicorp/go-version"

	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/version"
)

// endpoint serves a small JSON document describing the latest release. It's
// a package variable so tests can point it at a local server.
var endpoint = "https://get.scriptsync.dev/latest.json"

type releaseInfo struct {
	Version string `json:"version"`
}

// CheckLatest returns the latest released version and whether it's newer
// than the running binary. Binaries that weren't stamped with a version
// (such as test builds) never report an update.
func CheckLatest() (latest string, newer bool, err error) {
	if version.Version == version.EmptyValue {
		return "", false, nil
	}

	current, err := goversion.NewVersion(version.Version)
	if err != nil {
		return "", false, errors.WithContext(err, "parse current version")
	}

	resp, err := http.Get(endpoint)
	if err != nil {
		return "", false, errors.WithContext(err, "fetch release info")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, errors.WithContext(err, "read release info")
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, errors.APIError{Status: resp.StatusCode, Message: string(body)}
	}

	var info releaseInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", false, errors.WithContext(err, "parse release info")
	}

	latestVersion, err := goversion.NewVersion(info.Version)
	if err != nil {
		return "", false, errors.WithContext(err, "parse latest version")
	}
	return info.Version, latestVersion.GreaterThan(current), nil
}
