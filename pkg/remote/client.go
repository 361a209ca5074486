package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

// DefaultEndpoint is the base URL of the hosted content API.
const DefaultEndpoint = "https://script.googleapis.com/v1"

// Client implements Gateway against the HTTP content API.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a gateway that issues requests with the given
// authenticated HTTP client.
func NewClient(httpClient *http.Client) *Client {
	return &Client{endpoint: DefaultEndpoint, http: httpClient}
}

// NewClientWithEndpoint is NewClient with an endpoint override.
func NewClientWithEndpoint(httpClient *http.Client, endpoint string) *Client {
	return &Client{endpoint: endpoint, http: httpClient}
}

type contentResponse struct {
	ScriptID string `json:"scriptId"`
	Files    []File `json:"files"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// FetchContent returns the project's files at the given version, or at the
// latest version when version is 0.
func (client *Client) FetchContent(scriptID string, version int) ([]File, error) {
	contentURL := fmt.Sprintf("%s/projects/%s/content", client.endpoint,
		url.PathEscape(scriptID))
	if version != 0 {
		contentURL += "?versionNumber=" + strconv.Itoa(version)
	}

	resp, err := client.http.Get(contentURL)
	if err != nil {
		return nil, errors.WithContext(err, "fetch content")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithContext(err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var content contentResponse
	if err := json.Unmarshal(body, &content); err != nil {
		return nil, errors.WithContext(err, "parse response")
	}
	return content.Files, nil
}

// ReplaceContent replaces the project's full file set.
func (client *Client) ReplaceContent(scriptID string, files []File) error {
	payload, err := json.Marshal(contentResponse{Files: files})
	if err != nil {
		return errors.WithContext(err, "marshal content")
	}

	contentURL := fmt.Sprintf("%s/projects/%s/content", client.endpoint,
		url.PathEscape(scriptID))
	req, err := http.NewRequest(http.MethodPut, contentURL, bytes.NewReader(payload))
	if err != nil {
		return errors.WithContext(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.http.Do(req)
	if err != nil {
		return errors.WithContext(err, "replace content")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithContext(err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		return parseAPIError(resp.StatusCode, body)
	}
	return nil
}

// parseAPIError converts an error response body into a typed APIError. The
// body format isn't guaranteed, so an unparseable body degrades to the raw
// text.
func parseAPIError(status int, body []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return errors.APIError{Status: status, Message: parsed.Error.Message}
	}

	log.WithField("status", status).Debug("Unstructured error response from content API")
	return errors.APIError{Status: status, Message: string(body)}
}
