package api

import "strconv"

// DashboardStats is the aggregate snapshot shown on the dashboard page.
// The backend omits fields that are zero, so every field defaults cleanly.
type DashboardStats struct {
	UpSpeed       int64 `json:"up_speed"`
	DlSpeed       int64 `json:"dl_speed"`
	ActiveCount   int64 `json:"active_torrents"`
	TotalUploaded int64 `json:"total_uploaded"`
	ActiveLimits  int64 `json:"active_limits"`
	TotalRemoved  int64 `json:"total_removed"`
}

// Instance is a managed connection to a single torrent-client endpoint.
type Instance struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	Host      string `json:"host,omitempty"`
	Connected bool   `json:"connected"`
	Enabled   bool   `json:"enabled"`
}

// Label returns the instance name, falling back to the host and then the ID.
func (i Instance) Label() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Host != "" {
		return i.Host
	}
	return "#" + strconv.FormatInt(i.ID, 10)
}

// Torrent is a single task tracked by an instance. Torrent lists are scoped
// to one instance and are never cached across navigations.
type Torrent struct {
	Hash    string `json:"hash"`
	Name    string `json:"name,omitempty"`
	Size    int64  `json:"size"`
	UpSpeed int64  `json:"upspeed"`
	DlSpeed int64  `json:"dlspeed"`
	State   string `json:"state"`
}

// Site is a configured tracker/indexer definition.
type Site struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Domain  string `json:"domain,omitempty"`
	Enabled bool   `json:"enabled"`
}

// SpeedRule limits the transfer rate for a site or globally.
type SpeedRule struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	SiteID       int64   `json:"site_id,omitempty"`
	TargetKiB    int64   `json:"target_speed_kib"`
	SafetyMargin float64 `json:"safety_margin,omitempty"`
	Enabled      bool    `json:"enabled"`
	Active       bool    `json:"active"`
}

// RemoveRule governs automatic torrent deletion.
type RemoveRule struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Enabled   bool   `json:"enabled"`
	Removed   int64  `json:"removed_count"`
}

// LogEntry is one backend log line tagged with a severity level.
type LogEntry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}
