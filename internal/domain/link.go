package domain

import (
	"encoding/json"
	"time"
)

// ShortLink is the persisted link entity. Code and Alias share one
// uniqueness namespace: a lookup key matches either column.
type ShortLink struct {
	ID            uint
	Code          string
	Alias         string
	Destination   string
	Active        bool
	Restricted    bool
	ExpiresAt     *time.Time
	Secret        string
	SplashAsset   json.RawMessage
	LoadingText   string
	Rules         []DestinationRule
	Affiliate     AffiliateConfig
	Clicks        int64
	LastClickedAt *time.Time
	CreatedAt     time.Time
}

// Expired reports whether the link carries an expiration timestamp at
// or before now.
func (l *ShortLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

type AffiliateConfig struct {
	Enabled      bool   `json:"enabled"`
	Tag          string `json:"tag,omitempty"`
	Identifier   string `json:"identifier,omitempty"`
	CookieDays   int    `json:"cookie_days,omitempty"`
	CustomParams string `json:"custom_params,omitempty"`
	Commission   string `json:"commission,omitempty"`
}
