package validation

import (
	"net/netip"
	"strings"
)

// Reserved IPv4 ranges not covered by the netip classification
// helpers: CGNAT, IETF protocol assignments and the TEST-NET blocks.
var reservedV4 = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
}

type IPValidator struct{}

func NewIPValidator() *IPValidator {
	return &IPValidator{}
}

// ValidateHost rejects hosts that are private or reserved IP
// literals. Hostnames pass through untouched: no DNS resolution
// happens at validation time.
func (v *IPValidator) ValidateHost(host string) error {
	hostname := stripPort(host)

	addr, err := netip.ParseAddr(hostname)
	if err != nil {
		return nil
	}
	return v.validateIP(addr)
}

func (v *IPValidator) validateIP(addr netip.Addr) error {
	if addr.Is4In6() {
		addr = netip.AddrFrom4(addr.As4())
	}

	if addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified() {
		return ErrPrivateIPNotAllowed
	}

	for _, prefix := range reservedV4 {
		if prefix.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}

	return nil
}

func stripPort(host string) string {
	hostname := host
	if idx := strings.LastIndex(host, ":"); idx != -1 && !strings.HasPrefix(host, "[") {
		hostname = host[:idx]
	}
	hostname = strings.TrimPrefix(hostname, "[")
	hostname = strings.TrimSuffix(hostname, "]")
	if idx := strings.LastIndex(hostname, "]:"); idx != -1 {
		hostname = hostname[:idx]
	}
	return hostname
}
