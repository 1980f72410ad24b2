package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNewClient_NormalizesServerURL(t *testing.T) {
	c, err := NewClient("127.0.0.1:9090")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.baseURL.Scheme != "http" || c.baseURL.Host != "127.0.0.1:9090" {
		t.Fatalf("baseURL = %q, want http://127.0.0.1:9090", c.baseURL.String())
	}

	c, err = NewClient("https://example.com/reel/?x=1#frag")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.baseURL.RawQuery != "" || c.baseURL.Fragment != "" {
		t.Fatalf("baseURL not normalized: %q", c.baseURL.String())
	}

	if _, err := NewClient("  "); err == nil {
		t.Fatal("NewClient accepted empty server url")
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotCookie string
	var gotLogsLimit string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/dashboard":
			_ = json.NewEncoder(w).Encode(DashboardStats{UpSpeed: 1024, ActiveCount: 3})
		case "/api/qb/instances":
			_ = json.NewEncoder(w).Encode([]Instance{{ID: 1, Name: "seedbox", Connected: true}})
		case "/api/qb/instances/1/torrents":
			_ = json.NewEncoder(w).Encode([]Torrent{{Hash: "abcd", Name: "linux.iso", Size: 1 << 30}})
		case "/api/pt/sites":
			_ = json.NewEncoder(w).Encode([]Site{{ID: 9, Name: "tracker"}})
		case "/api/speed/rules":
			_ = json.NewEncoder(w).Encode([]SpeedRule{{ID: 2, Name: "night", TargetKiB: 51200}})
		case "/api/remove/rules":
			_ = json.NewEncoder(w).Encode([]RemoveRule{{ID: 5, Name: "ratio", Removed: 12}})
		case "/api/logs":
			gotLogsLimit = r.URL.Query().Get("limit")
			_ = json.NewEncoder(w).Encode([]LogEntry{{Level: "info", Message: "started"}})
		case "/api/config":
			_, _ = w.Write([]byte(`{"poll_interval": 30}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithSessionCookie("session=tok123"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := testContext(t)

	stats, err := c.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.UpSpeed != 1024 || stats.ActiveCount != 3 {
		t.Fatalf("Dashboard payload = %#v", stats)
	}
	if gotCookie != "session=tok123" {
		t.Fatalf("Cookie header = %q, want session=tok123", gotCookie)
	}

	instances, err := c.Instances(ctx)
	if err != nil {
		t.Fatalf("Instances returned error: %v", err)
	}
	if len(instances) != 1 || !instances[0].Connected {
		t.Fatalf("Instances = %#v, want 1 connected instance", instances)
	}

	torrents, err := c.Torrents(ctx, 1)
	if err != nil {
		t.Fatalf("Torrents returned error: %v", err)
	}
	if len(torrents) != 1 || torrents[0].Hash != "abcd" {
		t.Fatalf("Torrents = %#v, want 1 torrent abcd", torrents)
	}

	sites, err := c.Sites(ctx)
	if err != nil || len(sites) != 1 || sites[0].Name != "tracker" {
		t.Fatalf("Sites = %#v, err = %v", sites, err)
	}

	speed, err := c.SpeedRules(ctx)
	if err != nil || len(speed) != 1 || speed[0].TargetKiB != 51200 {
		t.Fatalf("SpeedRules = %#v, err = %v", speed, err)
	}

	remove, err := c.RemoveRules(ctx)
	if err != nil || len(remove) != 1 || remove[0].Removed != 12 {
		t.Fatalf("RemoveRules = %#v, err = %v", remove, err)
	}

	logs, err := c.Logs(ctx, 200)
	if err != nil || len(logs) != 1 {
		t.Fatalf("Logs = %#v, err = %v", logs, err)
	}
	if gotLogsLimit != "200" {
		t.Fatalf("logs limit query = %q, want 200", gotLogsLimit)
	}

	raw, err := c.Config(ctx)
	if err != nil {
		t.Fatalf("Config returned error: %v", err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("Config payload not JSON: %v", err)
	}
}

func TestClient_CommandMethodsAndPaths(t *testing.T) {
	t.Parallel()

	type call struct{ method, path string }
	var calls []call

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := testContext(t)

	if err := c.ToggleInstance(ctx, 7, true); err != nil {
		t.Fatalf("ToggleInstance(connect) returned error: %v", err)
	}
	if err := c.ToggleInstance(ctx, 7, false); err != nil {
		t.Fatalf("ToggleInstance(disconnect) returned error: %v", err)
	}
	if err := c.PauseTorrent(ctx, 7, "beef"); err != nil {
		t.Fatalf("PauseTorrent returned error: %v", err)
	}
	if err := c.ResumeTorrent(ctx, 7, "beef"); err != nil {
		t.Fatalf("ResumeTorrent returned error: %v", err)
	}
	if err := c.DeleteTorrent(ctx, 7, "beef"); err != nil {
		t.Fatalf("DeleteTorrent returned error: %v", err)
	}
	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	want := []call{
		{http.MethodPost, "/api/qb/instances/7/connect"},
		{http.MethodPost, "/api/qb/instances/7/disconnect"},
		{http.MethodPost, "/api/qb/instances/7/torrents/beef/pause"},
		{http.MethodPost, "/api/qb/instances/7/torrents/beef/resume"},
		{http.MethodDelete, "/api/qb/instances/7/torrents/beef"},
		{http.MethodPost, "/api/logout"},
	}
	if len(calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestClient_ErrorMessagePriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field wins", http.StatusBadRequest, `{"error":"instance busy","message":"ignored"}`, "instance busy"},
		{"message fallback", http.StatusForbidden, `{"message":"not allowed"}`, "not allowed"},
		{"status fallback on empty body", http.StatusBadGateway, ``, "HTTP 502"},
		{"status fallback on junk body", http.StatusInternalServerError, `<html>boom</html>`, "HTTP 500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			_, err = c.Instances(testContext(t))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tc.want {
				t.Fatalf("error = %q, want %q", err.Error(), tc.want)
			}
		})
	}
}

func TestClient_NoContentResolvesNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	var dest []Instance
	if err := c.do(testContext(t), http.MethodGet, "/qb/instances", nil, &dest); err != nil {
		t.Fatalf("do returned error on 204: %v", err)
	}
	if dest != nil {
		t.Fatalf("dest = %#v, want untouched nil", dest)
	}
}

func TestInstanceLabelFallbacks(t *testing.T) {
	if got := (Instance{ID: 3, Name: "box"}).Label(); got != "box" {
		t.Errorf("Label() = %q, want box", got)
	}
	if got := (Instance{ID: 3, Host: "10.0.0.2"}).Label(); got != "10.0.0.2" {
		t.Errorf("Label() = %q, want 10.0.0.2", got)
	}
	if got := (Instance{ID: 3}).Label(); got != "#3" {
		t.Errorf("Label() = %q, want #3", got)
	}
}
