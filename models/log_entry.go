package models

import "time"

// ActionLogCap is the maximum number of entries retained in the action
// log. The log is a newest-first ring: appending beyond the cap drops the
// oldest entries.
const ActionLogCap = 1000

// LogEntry is a single security-relevant event in the capped action log.
type LogEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Username  string    `json:"username"`
	UserID    string    `json:"userId"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	Timestamp time.Time `json:"timestamp"`
}
