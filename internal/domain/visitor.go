package domain

import "time"

// Geography sentinels returned when no country can be determined.
const (
	CountryUnknown = "unknown"
	CountryLocal   = "local"
)

// VisitorContext is the normalized, per-request view of the visitor.
// All string fields are lower-case; it is never persisted as-is.
type VisitorContext struct {
	Country      string
	Device       string
	Browser      string
	OS           string
	Hour         int
	ReferrerHost string
	Language     string
}

// ClickEvent is one recorded visit. Visitor fields are denormalized
// onto the event so analytics queries never re-parse user agents.
type ClickEvent struct {
	ID        string
	LinkID    uint
	Code      string
	IP        string
	UserAgent string
	Referrer  string
	Country   string
	Device    string
	Browser   string
	OS        string
	Language  string
	CreatedAt time.Time
}
