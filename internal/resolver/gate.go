// Package resolver is the decision core: given a link and a visitor
// context it evaluates the access gates, picks a destination, applies
// affiliate augmentation and selects the response shape. It performs
// no I/O; storage effects are requested by returning verdicts.
package resolver

import (
	"time"

	"shortlink/internal/domain"
)

// AccessVerdict is the terminal outcome of the access gate.
type AccessVerdict int

const (
	AccessAllowed AccessVerdict = iota
	AccessInactive
	AccessRestricted
	AccessExpired
)

func (v AccessVerdict) String() string {
	switch v {
	case AccessAllowed:
		return "allowed"
	case AccessInactive:
		return "inactive"
	case AccessRestricted:
		return "restricted"
	case AccessExpired:
		return "expired"
	}
	return "unknown"
}

type AccessGate struct{}

// Evaluate checks the link's access state in a fixed order so the
// verdict is deterministic for any combination of flags: inactive,
// then restricted, then expired. AccessExpired is only returned for a
// still-active link, which is the caller's signal to request the
// idempotent deactivation write.
func (AccessGate) Evaluate(link *domain.ShortLink, now time.Time) AccessVerdict {
	switch {
	case !link.Active:
		return AccessInactive
	case link.Restricted:
		return AccessRestricted
	case link.Expired(now):
		return AccessExpired
	}
	return AccessAllowed
}
