package resolver

import (
	"encoding/json"

	"shortlink/internal/domain"
)

// PresentationSelector decides between a direct redirect and an
// interstitial splash page.
type PresentationSelector struct {
	countdown      int
	defaultLoading string
}

func NewPresentationSelector(countdownSec int, defaultLoading string) *PresentationSelector {
	return &PresentationSelector{countdown: countdownSec, defaultLoading: defaultLoading}
}

// Present builds the outcome for an allowed visit. Links without a
// usable splash asset redirect directly; skip forces a redirect even
// when an asset exists.
func (s *PresentationSelector) Present(link *domain.ShortLink, finalURL string, skip bool) domain.Resolution {
	asset := ResolveSplashAsset(link.SplashAsset)
	if skip || asset == "" {
		return domain.Resolution{Mode: domain.ModeRedirect, Location: finalURL}
	}

	loading := link.LoadingText
	if loading == "" {
		loading = s.defaultLoading
	}

	return domain.Resolution{
		Mode: domain.ModeSplash,
		Splash: &domain.SplashPage{
			AssetURL:    asset,
			LoadingText: loading,
			TargetURL:   finalURL,
			Countdown:   s.countdown,
		},
	}
}

// Splash assets accumulated in several shapes over time: a bare URL
// string, an array whose first element counts, or an object exposing
// one of a few URL-bearing fields.
var splashURLFields = []string{"url", "secure_url", "src", "path"}

// ResolveSplashAsset extracts a usable asset URL from a stored splash
// value, or returns "" when no known shape applies.
func ResolveSplashAsset(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return ""
		}
		return ResolveSplashAsset(list[0])
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, field := range splashURLFields {
			var v string
			if err := json.Unmarshal(obj[field], &v); err == nil && v != "" {
				return v
			}
		}
	}

	return ""
}
