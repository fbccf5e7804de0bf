package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
)

func TestParseRule(t *testing.T) {
	rule, err := domain.ParseRule("https://example.de", "country:DE", 3)
	require.NoError(t, err)
	assert.Equal(t, domain.DimCountry, rule.Dimension)
	assert.Equal(t, "de", rule.Value)
	assert.Equal(t, 3, rule.Weight)
	assert.Equal(t, "https://example.de", rule.TargetURL)
}

func TestParseRule_ValueKeepsColons(t *testing.T) {
	rule, err := domain.ParseRule("https://example.com", "referrer:host.example.com:8080", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.DimReferrer, rule.Dimension)
	assert.Equal(t, "host.example.com:8080", rule.Value)
}

func TestParseRule_TrimsAndLowercases(t *testing.T) {
	rule, err := domain.ParseRule("https://example.com", " Device : Mobile ", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.DimDevice, rule.Dimension)
	assert.Equal(t, "mobile", rule.Value)
}

func TestParseRule_ClampsWeight(t *testing.T) {
	rule, err := domain.ParseRule("https://example.com", "device:mobile", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, rule.Weight)

	rule, err = domain.ParseRule("https://example.com", "device:mobile", -5)
	require.NoError(t, err)
	assert.Equal(t, 1, rule.Weight)
}

func TestParseRule_Malformed(t *testing.T) {
	malformed := []string{
		"no-colon",
		"country:",
		":de",
		"planet:mars",
		"",
	}
	for _, rule := range malformed {
		_, err := domain.ParseRule("https://example.com", rule, 1)
		assert.ErrorIs(t, err, domain.ErrMalformedRule, "rule=%q", rule)
	}
}

func TestShortLink_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var link domain.ShortLink
	assert.False(t, link.Expired(now))

	past := now.Add(-time.Second)
	link.ExpiresAt = &past
	assert.True(t, link.Expired(now))

	link.ExpiresAt = &now
	assert.True(t, link.Expired(now)) // expiry is inclusive

	future := now.Add(time.Second)
	link.ExpiresAt = &future
	assert.False(t, link.Expired(now))
}
