// Package secret handles link password storage. New links store a
// bcrypt hash; links imported from older deployments may carry an
// AES-GCM ciphertext or a bare base64 encoding instead, so decoding
// walks an ordered list of strategies and reports failure only when
// none of them apply.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrUndecodable = errors.New("secret cannot be decoded")

// Codec decodes legacy-encoded secrets. The key is injected so tests
// run with fixed keys instead of process-wide configuration.
type Codec struct {
	key        []byte
	strategies []func(string) (string, error)
}

func NewCodec(key string) *Codec {
	c := &Codec{}
	if key != "" {
		// Arbitrary-length configured keys are stretched to a valid
		// AES-256 key.
		sum := sha256.Sum256([]byte(key))
		c.key = sum[:]
	}
	c.strategies = []func(string) (string, error){
		c.decodeAESGCM,
		decodeBase64,
	}
	return c
}

// Decode tries each strategy in order and returns the first plaintext.
func (c *Codec) Decode(stored string) (string, error) {
	for _, decode := range c.strategies {
		if plain, err := decode(stored); err == nil {
			return plain, nil
		}
	}
	return "", ErrUndecodable
}

// Encode produces the AES-GCM encoding of a secret. Used by imports
// and by tests that exercise the legacy decode path.
func (c *Codec) Encode(plain string) (string, error) {
	if c.key == nil {
		return "", errors.New("no encryption key configured")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to init gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Codec) decodeAESGCM(stored string) (string, error) {
	if c.key == nil {
		return "", errors.New("no encryption key configured")
	}

	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("invalid base64: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to init gcm: %w", err)
	}

	if len(raw) < gcm.NonceSize() {
		return "", errors.New("ciphertext shorter than nonce")
	}

	plain, err := gcm.Open(nil, raw[:gcm.NonceSize()], raw[gcm.NonceSize():], nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plain), nil
}

func decodeBase64(stored string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("invalid base64: %w", err)
	}
	return string(raw), nil
}

// IsHash reports whether a stored secret is a bcrypt hash rather than
// a legacy encoding.
func IsHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// Hash creates the bcrypt hash stored for newly created links.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

// VerifyHash compares a submitted secret against a bcrypt hash. The
// comparison is constant-time inside bcrypt.
func VerifyHash(submitted, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(submitted)) == nil
}

// EqualTrimmed compares decoded legacy secrets in constant time after
// trimming surrounding whitespace from both sides.
func EqualTrimmed(a, b string) bool {
	ta, tb := strings.TrimSpace(a), strings.TrimSpace(b)
	return subtle.ConstantTimeCompare([]byte(ta), []byte(tb)) == 1
}
