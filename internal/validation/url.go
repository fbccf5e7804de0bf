package validation

import (
	"net/url"
	"strings"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

// DestinationValidator checks destination URLs at write time and
// again when a resolved destination is about to be served.
type DestinationValidator struct {
	maxLength       int
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

func NewDestinationValidator(maxLength int, allowPrivateIPs bool) *DestinationValidator {
	return &DestinationValidator{
		maxLength:       maxLength,
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

// ValidateDestination requires a well-formed absolute http(s) URL.
func (v *DestinationValidator) ValidateDestination(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] {
		return ErrInvalidURLFormat
	}

	if parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	if !v.allowPrivateIPs {
		if err := v.ipValidator.ValidateHost(parsed.Host); err != nil {
			return err
		}
	}

	return nil
}

// ValidateAlias restricts aliases to URL-safe characters so they can
// share the code namespace.
func (v *DestinationValidator) ValidateAlias(alias string) error {
	if alias == "" {
		return nil
	}
	if len(alias) > 64 {
		return ErrAliasInvalid
	}
	for _, r := range alias {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return ErrAliasInvalid
		}
	}
	return nil
}
