package resolver

import (
	"shortlink/internal/domain"
	"shortlink/internal/secret"
)

// PasswordVerdict is the outcome of the password gate.
type PasswordVerdict int

const (
	PasswordNotRequired PasswordVerdict = iota
	PasswordPrompt
	PasswordAccepted
	PasswordRejected
)

// SecretDecoder decodes legacy-encoded stored secrets.
type SecretDecoder interface {
	Decode(stored string) (string, error)
}

type PasswordGate struct {
	decoder SecretDecoder
}

func NewPasswordGate(decoder SecretDecoder) *PasswordGate {
	return &PasswordGate{decoder: decoder}
}

// Verify checks a submitted password against the link's stored
// secret. Hashed secrets use bcrypt's constant-time comparison;
// anything else is decoded first and compared as trimmed strings. A
// stored secret that no strategy can decode rejects every submission
// rather than surfacing an error.
func (g *PasswordGate) Verify(link *domain.ShortLink, submitted string) PasswordVerdict {
	if link.Secret == "" {
		return PasswordNotRequired
	}
	if submitted == "" {
		return PasswordPrompt
	}

	if secret.IsHash(link.Secret) {
		if secret.VerifyHash(submitted, link.Secret) {
			return PasswordAccepted
		}
		return PasswordRejected
	}

	plain, err := g.decoder.Decode(link.Secret)
	if err != nil {
		return PasswordRejected
	}
	if secret.EqualTrimmed(plain, submitted) {
		return PasswordAccepted
	}
	return PasswordRejected
}
