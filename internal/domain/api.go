package domain

import "time"

type RuleSpec struct {
	TargetURL string `json:"target_url"`
	Rule      string `json:"rule"`
	Weight    int    `json:"weight"`
}

type CreateLinkRequest struct {
	URL         string          `json:"url"`
	Alias       string          `json:"alias,omitempty"`
	Password    string          `json:"password,omitempty"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	SplashAsset string          `json:"splash_asset,omitempty"`
	LoadingText string          `json:"loading_text,omitempty"`
	Rules       []RuleSpec      `json:"rules,omitempty"`
	Affiliate   AffiliateConfig `json:"affiliate,omitempty"`
}

type CreateLinkResponse struct {
	Code        string `json:"code"`
	Alias       string `json:"alias,omitempty"`
	ShortURL    string `json:"short_url"`
	Destination string `json:"destination"`
}

type LinkStatsResponse struct {
	Code          string     `json:"code"`
	Clicks        int64      `json:"clicks"`
	LastClickedAt *time.Time `json:"last_clicked_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
