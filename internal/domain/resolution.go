package domain

// Mode is the shape of a successful resolution response.
type Mode int

const (
	ModeRedirect Mode = iota
	ModeSplash
	ModeChallenge
)

// SplashPage is the interstitial shown before the final redirect.
type SplashPage struct {
	AssetURL    string
	LoadingText string
	TargetURL   string
	Countdown   int
}

// Challenge asks the visitor for the link password. Failed is set
// when a submitted password was rejected.
type Challenge struct {
	Code   string
	Failed bool
}

// CookieDirective is an affiliate tracking cookie to set on the
// response. It is deliberately not HttpOnly.
type CookieDirective struct {
	Name   string
	Value  string
	MaxAge int
}

// Resolution is the decided outcome for one request. Exactly one of
// Location, Splash or Challenge is meaningful, selected by Mode.
type Resolution struct {
	Mode      Mode
	Location  string
	Splash    *SplashPage
	Challenge *Challenge
	Cookie    *CookieDirective
}
