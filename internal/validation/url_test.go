package validation_test

import (
	"strings"
	"testing"

	"shortlink/internal/validation"
)

func TestDestinationValidator_ValidateDestination(t *testing.T) {
	v := validation.NewDestinationValidator(2048, false)

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		// Valid URLs
		{"valid http", "http://example.com", nil},
		{"valid https", "https://example.com", nil},
		{"valid with path", "https://example.com/path", nil},
		{"valid with query", "https://example.com/path?q=1", nil},
		{"valid with fragment", "https://example.com/path#section", nil},
		{"valid with port", "https://example.com:8080/path", nil},

		// Empty/missing
		{"empty string", "", validation.ErrEmptyURL},
		{"whitespace only", "   ", validation.ErrEmptyURL},

		// Invalid format
		{"no scheme", "example.com", validation.ErrInvalidURLFormat},
		{"relative path", "/relative/path", validation.ErrInvalidURLFormat},
		{"no host", "http://", validation.ErrInvalidURLFormat},
		{"ftp scheme", "ftp://example.com", validation.ErrInvalidURLFormat},

		// Blocked protocols
		{"javascript protocol", "javascript:alert(1)", validation.ErrUnsafeProtocol},
		{"data protocol", "data:text/html,<script>", validation.ErrUnsafeProtocol},
		{"file protocol", "file:///etc/passwd", validation.ErrUnsafeProtocol},
		{"vbscript protocol", "vbscript:msgbox(1)", validation.ErrUnsafeProtocol},
		{"about protocol", "about:blank", validation.ErrUnsafeProtocol},
		{"blob protocol", "blob:http://example.com/uuid", validation.ErrUnsafeProtocol},

		// Private IPs
		{"localhost", "http://127.0.0.1/", validation.ErrPrivateIPNotAllowed},
		{"loopback", "http://127.0.0.1/path", validation.ErrPrivateIPNotAllowed},
		{"private 10.x", "http://10.0.0.1/", validation.ErrPrivateIPNotAllowed},
		{"private 172.16.x", "http://172.16.0.1/", validation.ErrPrivateIPNotAllowed},
		{"private 192.168.x", "http://192.168.1.1/", validation.ErrPrivateIPNotAllowed},
		{"ipv6 loopback", "http://[::1]/", validation.ErrPrivateIPNotAllowed},

		// Hostnames are allowed (no DNS resolution)
		{"localhost hostname", "http://localhost/", nil},
		{"internal hostname", "http://internal-server/", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDestination(tt.url)
			if err != tt.wantErr {
				t.Errorf("ValidateDestination(%q) = %v, want %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestDestinationValidator_ValidateDestination_Length(t *testing.T) {
	v := validation.NewDestinationValidator(100, false)

	shortURL := "https://example.com"
	if err := v.ValidateDestination(shortURL); err != nil {
		t.Errorf("ValidateDestination(%q) = %v, want nil", shortURL, err)
	}

	longURL := "https://example.com/" + strings.Repeat("a", 100)
	if err := v.ValidateDestination(longURL); err != validation.ErrURLTooLong {
		t.Errorf("ValidateDestination(long url) = %v, want %v", err, validation.ErrURLTooLong)
	}
}

func TestDestinationValidator_ValidateDestination_AllowPrivateIPs(t *testing.T) {
	v := validation.NewDestinationValidator(2048, true)

	privateIPs := []string{
		"http://127.0.0.1/",
		"http://10.0.0.1/",
		"http://192.168.1.1/",
		"http://[::1]/",
	}

	for _, url := range privateIPs {
		if err := v.ValidateDestination(url); err != nil {
			t.Errorf("ValidateDestination(%q) with allowPrivateIPs=true = %v, want nil", url, err)
		}
	}
}

func TestDestinationValidator_ValidateAlias(t *testing.T) {
	v := validation.NewDestinationValidator(2048, false)

	tests := []struct {
		name    string
		alias   string
		wantErr error
	}{
		{"empty alias is optional", "", nil},
		{"plain alias", "my-link", nil},
		{"mixed case", "MyLink_2", nil},
		{"slash", "a/b", validation.ErrAliasInvalid},
		{"space", "my link", validation.ErrAliasInvalid},
		{"unicode", "liën", validation.ErrAliasInvalid},
		{"too long", strings.Repeat("a", 65), validation.ErrAliasInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.ValidateAlias(tt.alias); err != tt.wantErr {
				t.Errorf("ValidateAlias(%q) = %v, want %v", tt.alias, err, tt.wantErr)
			}
		})
	}
}
