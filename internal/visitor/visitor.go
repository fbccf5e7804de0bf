// Package visitor normalizes raw request signals into the visitor
// context destination rules match against.
package visitor

import (
	"net/url"
	"strings"
	"time"

	"github.com/mssola/useragent"

	"shortlink/internal/domain"
)

// GeoResolver maps a client IP to a lower-case ISO country code, or
// one of the domain sentinels when the country cannot be determined.
type GeoResolver interface {
	Country(ip string) string
}

// Input carries the raw signals of one request.
type Input struct {
	IP             string
	UserAgent      string
	Referrer       string
	AcceptLanguage string
	// CountryHint is a CDN-provided country header (CF-IPCountry and
	// friends); when present it wins over the geo resolver.
	CountryHint string
	Now         time.Time
}

type Extractor struct {
	geo GeoResolver
}

func NewExtractor(geo GeoResolver) *Extractor {
	return &Extractor{geo: geo}
}

func (e *Extractor) Extract(in Input) *domain.VisitorContext {
	ua := useragent.New(in.UserAgent)

	browser, _ := ua.Browser()
	browser = normalize(browser)

	os := normalize(ua.OSInfo().Name)

	device := "desktop"
	switch {
	case ua.Bot():
		device = "bot"
	case ua.Mobile():
		device = "mobile"
	}

	country := strings.ToLower(strings.TrimSpace(in.CountryHint))
	if country == "" {
		country = e.geo.Country(in.IP)
	}

	return &domain.VisitorContext{
		Country:      country,
		Device:       device,
		Browser:      browser,
		OS:           os,
		Hour:         in.Now.Hour(),
		ReferrerHost: referrerHost(in.Referrer),
		Language:     primaryLanguage(in.AcceptLanguage),
	}
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return s
}

func referrerHost(referrer string) string {
	if referrer == "" {
		return ""
	}
	parsed, err := url.Parse(referrer)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

// primaryLanguage extracts the first tag of an Accept-Language header
// ("fr-CH, fr;q=0.9" -> "fr-ch").
func primaryLanguage(header string) string {
	if header == "" {
		return ""
	}
	tag, _, _ := strings.Cut(header, ",")
	tag, _, _ = strings.Cut(tag, ";")
	return strings.ToLower(strings.TrimSpace(tag))
}
