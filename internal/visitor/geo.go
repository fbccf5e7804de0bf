package visitor

import (
	"net/netip"

	"shortlink/internal/domain"
)

// SentinelGeo is the default GeoResolver. It distinguishes local
// traffic from everything else; public addresses resolve to the
// unknown sentinel until a real GeoIP backend is plugged in behind
// the interface.
type SentinelGeo struct{}

func (SentinelGeo) Country(ip string) string {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return domain.CountryUnknown
	}
	if addr.Is4In6() {
		addr = netip.AddrFrom4(addr.As4())
	}

	if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() || addr.IsUnspecified() {
		return domain.CountryLocal
	}
	return domain.CountryUnknown
}
