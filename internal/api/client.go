package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Backend defines the subset of the backend API the TUI consumes.
// Implemented by *Client; fake implementations are used in tests.
type Backend interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	Instances(ctx context.Context) ([]Instance, error)
	ToggleInstance(ctx context.Context, id int64, connect bool) error
	Torrents(ctx context.Context, instanceID int64) ([]Torrent, error)
	PauseTorrent(ctx context.Context, instanceID int64, hash string) error
	ResumeTorrent(ctx context.Context, instanceID int64, hash string) error
	DeleteTorrent(ctx context.Context, instanceID int64, hash string) error
	Sites(ctx context.Context) ([]Site, error)
	SpeedRules(ctx context.Context) ([]SpeedRule, error)
	RemoveRules(ctx context.Context) ([]RemoveRule, error)
	Logs(ctx context.Context, limit int) ([]LogEntry, error)
	Config(ctx context.Context) (json.RawMessage, error)
	Logout(ctx context.Context) error
}

var _ Backend = (*Client)(nil)

const (
	apiPrefix      = "/api"
	requestTimeout = 10 * time.Second
	maxErrBody     = 4 << 10
)

// Client talks to the backend HTTP API. All paths are resolved under the
// fixed API prefix and the session cookie is sent on every request.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	cookie  string // raw Cookie header value, e.g. "session=abc"
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSessionCookie sets the raw Cookie header sent on every request.
func WithSessionCookie(cookie string) Option {
	return func(c *Client) { c.cookie = strings.TrimSpace(cookie) }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a Client for the given server URL. A bare host:port is
// accepted and treated as http.
func NewClient(server string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(server)
	if trimmed == "" {
		return nil, fmt.Errorf("server url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", server, err)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")
	base.RawQuery = ""
	base.Fragment = ""

	// Cookie jar keeps any session cookie the backend refreshes.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}

	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Dashboard retrieves the aggregate statistics snapshot.
func (c *Client) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Instances retrieves all configured torrent-client instances.
func (c *Client) Instances(ctx context.Context) ([]Instance, error) {
	var list []Instance
	if err := c.do(ctx, http.MethodGet, "/qb/instances", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ToggleInstance connects or disconnects an instance.
func (c *Client) ToggleInstance(ctx context.Context, id int64, connect bool) error {
	action := "disconnect"
	if connect {
		action = "connect"
	}
	path := fmt.Sprintf("/qb/instances/%d/%s", id, action)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// Torrents retrieves the torrent list of one instance.
func (c *Client) Torrents(ctx context.Context, instanceID int64) ([]Torrent, error) {
	var list []Torrent
	path := fmt.Sprintf("/qb/instances/%d/torrents", instanceID)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// PauseTorrent pauses one torrent on an instance.
func (c *Client) PauseTorrent(ctx context.Context, instanceID int64, hash string) error {
	path := fmt.Sprintf("/qb/instances/%d/torrents/%s/pause", instanceID, url.PathEscape(hash))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// ResumeTorrent resumes one torrent on an instance.
func (c *Client) ResumeTorrent(ctx context.Context, instanceID int64, hash string) error {
	path := fmt.Sprintf("/qb/instances/%d/torrents/%s/resume", instanceID, url.PathEscape(hash))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// DeleteTorrent removes one torrent from an instance.
func (c *Client) DeleteTorrent(ctx context.Context, instanceID int64, hash string) error {
	path := fmt.Sprintf("/qb/instances/%d/torrents/%s", instanceID, url.PathEscape(hash))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Sites retrieves the configured site definitions.
func (c *Client) Sites(ctx context.Context) ([]Site, error) {
	var list []Site
	if err := c.do(ctx, http.MethodGet, "/pt/sites", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SpeedRules retrieves the speed-limit rules.
func (c *Client) SpeedRules(ctx context.Context) ([]SpeedRule, error) {
	var list []SpeedRule
	if err := c.do(ctx, http.MethodGet, "/speed/rules", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// RemoveRules retrieves the auto-removal rules.
func (c *Client) RemoveRules(ctx context.Context) ([]RemoveRule, error) {
	var list []RemoveRule
	if err := c.do(ctx, http.MethodGet, "/remove/rules", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Logs retrieves the most recent backend log entries, newest last.
func (c *Client) Logs(ctx context.Context, limit int) ([]LogEntry, error) {
	path := "/logs"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var list []LogEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Config retrieves the raw backend configuration document.
func (c *Client) Config(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/config", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Logout ends the backend session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

// do performs one request against the API prefix. A JSON body is attached
// when body is non-nil. 204 responses leave dest untouched; other 2xx
// responses are decoded into dest when dest is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel, err := url.Parse(apiPrefix + path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := errorFromResponse(resp)
		c.logger.Debug("request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return err
	}
	if resp.StatusCode == http.StatusNoContent || dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse builds the user-facing error for a non-2xx response.
// Message priority: backend "error" field, then "message", then "HTTP <status>".
// A body that fails to parse as JSON counts as empty.
func errorFromResponse(resp *http.Response) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
	_ = json.Unmarshal(raw, &payload)

	switch {
	case payload.Error != "":
		return fmt.Errorf("%s", payload.Error)
	case payload.Message != "":
		return fmt.Errorf("%s", payload.Message)
	default:
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
}
