package update

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptsync/scriptsync/pkg/version"
)

func stubRelease(t *testing.T, current, body string, status int) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, err := w.Write([]byte(body))
			assert.NoError(t, err)
		}))

	oldEndpoint, oldVersion := endpoint, version.Version
	endpoint = server.URL
	version.Version = current
	t.Cleanup(func() {
		endpoint = oldEndpoint
		version.Version = oldVersion
		server.Close()
	})
}

func TestCheckLatestNewer(t *testing.T) {
	stubRelease(t, "0.1.0", `{"version": "0.2.0"}`, http.StatusOK)

	latest, newer, err := CheckLatest()
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", latest)
	assert.True(t, newer)
}

func TestCheckLatestUpToDate(t *testing.T) {
	stubRelease(t, "0.2.0", `{"version": "0.2.0"}`, http.StatusOK)

	latest, newer, err := CheckLatest()
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", latest)
	assert.False(t, newer)
}

func TestCheckLatestUnstampedBinary(t *testing.T) {
	// Unstamped binaries skip the check entirely, so no server is needed.
	latest, newer, err := CheckLatest()
	require.NoError(t, err)
	assert.Empty(t, latest)
	assert.False(t, newer)
}

func TestCheckLatestServerError(t *testing.T) {
	stubRelease(t, "0.1.0", "oops", http.StatusInternalServerError)

	_, _, err := CheckLatest()
	assert.Error(t, err)
}
