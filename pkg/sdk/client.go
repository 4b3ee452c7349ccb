// Package sdk provides the client-side library for the Pulseboard HTTP API.
package sdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pulseboard-dev/pulseboard/pkg/schema"
)

// Client talks to a Pulseboard server over HTTP. It implements the
// Pulseboard interface.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL, e.g. "http://localhost:3001".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// do issues one request and decodes the response into out (when non-nil).
// Error responses carry {"error": "..."} payloads; the message is preserved
// and the status code mapped onto the client error taxonomy.
func (c *Client) do(method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = resp.Status
		}
		return fmt.Errorf("%w: %s", statusErr(resp.StatusCode), payload.Error)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusErr(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	return fmt.Errorf("server error (%d)", code)
}

func (c *Client) Users() ([]schema.User, error) {
	var users []schema.User
	err := c.do(http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (c *Client) User(id int) (schema.User, error) {
	var user schema.User
	err := c.do(http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &user)
	return user, err
}

func (c *Client) CreateUser(u NewUser) (schema.User, error) {
	var created schema.User
	err := c.do(http.MethodPost, "/api/users", u, &created)
	return created, err
}

func (c *Client) UpdateUser(id int, patch UserPatch) (schema.User, error) {
	var updated schema.User
	err := c.do(http.MethodPut, fmt.Sprintf("/api/users/%d", id), patch, &updated)
	return updated, err
}

func (c *Client) DeleteUser(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

func (c *Client) Login(username, password string) (schema.User, error) {
	creds := map[string]string{"username": username, "password": password}
	var user schema.User
	err := c.do(http.MethodPost, "/api/login", creds, &user)
	return user, err
}

func (c *Client) Summary() (schema.Summary, error) {
	var summary schema.Summary
	err := c.do(http.MethodGet, "/api/summary", nil, &summary)
	return summary, err
}

func (c *Client) Usage(timeframe string) ([]schema.UsagePoint, error) {
	path := "/api/usage"
	if timeframe != "" {
		path += "?timeframe=" + url.QueryEscape(timeframe)
	}
	var series []schema.UsagePoint
	err := c.do(http.MethodGet, path, nil, &series)
	return series, err
}

func (c *Client) UserActivity() ([]schema.ActivityRecord, error) {
	var records []schema.ActivityRecord
	err := c.do(http.MethodGet, "/api/user-activity", nil, &records)
	return records, err
}

func (c *Client) Anomalies() ([]schema.Anomaly, error) {
	var anomalies []schema.Anomaly
	err := c.do(http.MethodGet, "/api/anomalies", nil, &anomalies)
	return anomalies, err
}

func (c *Client) TopPages() ([]schema.TopPage, error) {
	var pages []schema.TopPage
	err := c.do(http.MethodGet, "/api/top-pages", nil, &pages)
	return pages, err
}

func (c *Client) SystemStatus() (schema.SystemStatus, error) {
	var status schema.SystemStatus
	err := c.do(http.MethodGet, "/api/system-status", nil, &status)
	return status, err
}

// Ping checks that the server is reachable and serving the API.
func (c *Client) Ping() error {
	return c.do(http.MethodGet, "/api/summary", nil, nil)
}
