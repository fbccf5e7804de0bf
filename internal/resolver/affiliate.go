package resolver

import (
	"net/url"
	"strings"

	"shortlink/internal/domain"
)

const AffiliateCookieName = "shortlink_aff"

const secondsPerDay = 86400

type AffiliateAugmenter struct{}

// Augment applies the link's affiliate configuration to a resolved
// URL: custom parameters override existing query keys, otherwise
// default utm parameters are derived from the identifier and tag. A
// cookie directive is emitted whenever an identifier or tag exists,
// independent of the query rewrite. Malformed fragments are skipped,
// never fatal.
func (AffiliateAugmenter) Augment(link *domain.ShortLink, resolved string) (string, *domain.CookieDirective) {
	aff := link.Affiliate
	if !aff.Enabled {
		return resolved, nil
	}

	final := resolved
	if parsed, err := url.Parse(resolved); err == nil {
		q := parsed.Query()
		if aff.CustomParams != "" {
			applyCustomParams(q, aff.CustomParams)
		} else {
			if aff.Identifier != "" {
				q.Set("utm_source", aff.Identifier)
			}
			if aff.Tag != "" {
				q.Set("utm_medium", aff.Tag)
			}
		}
		parsed.RawQuery = q.Encode()
		final = parsed.String()
	}

	var cookie *domain.CookieDirective
	if aff.Identifier != "" || aff.Tag != "" {
		cookie = &domain.CookieDirective{
			Name:   AffiliateCookieName,
			Value:  aff.Tag + ":" + aff.Identifier,
			MaxAge: aff.CookieDays * secondsPerDay,
		}
	}

	return final, cookie
}

// applyCustomParams parses a "key=value&key=value" string onto the
// query, overwriting existing keys. Fragments without a key are
// dropped.
func applyCustomParams(q url.Values, params string) {
	for _, fragment := range strings.Split(params, "&") {
		key, value, found := strings.Cut(fragment, "=")
		if !found || key == "" {
			continue
		}
		q.Set(key, value)
	}
}
