package resolver_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/resolver"
)

func TestAffiliateAugmenter_Disabled(t *testing.T) {
	aug := resolver.AffiliateAugmenter{}
	link := &domain.ShortLink{Affiliate: domain.AffiliateConfig{Enabled: false, Tag: "t", Identifier: "i"}}

	final, cookie := aug.Augment(link, "https://example.com/page")
	assert.Equal(t, "https://example.com/page", final)
	assert.Nil(t, cookie)
}

func TestAffiliateAugmenter_DefaultUTM(t *testing.T) {
	aug := resolver.AffiliateAugmenter{}
	link := &domain.ShortLink{Affiliate: domain.AffiliateConfig{
		Enabled:    true,
		Tag:        "summer",
		Identifier: "partner-42",
		CookieDays: 30,
	}}

	final, cookie := aug.Augment(link, "https://example.com/page")

	parsed, err := url.Parse(final)
	require.NoError(t, err)
	assert.Equal(t, "partner-42", parsed.Query().Get("utm_source"))
	assert.Equal(t, "summer", parsed.Query().Get("utm_medium"))

	require.NotNil(t, cookie)
	assert.Equal(t, resolver.AffiliateCookieName, cookie.Name)
	assert.Equal(t, "summer:partner-42", cookie.Value)
	assert.Equal(t, 30*86400, cookie.MaxAge)
}

func TestAffiliateAugmenter_CustomParamsOverride(t *testing.T) {
	aug := resolver.AffiliateAugmenter{}
	link := &domain.ShortLink{Affiliate: domain.AffiliateConfig{
		Enabled:      true,
		Identifier:   "partner-42",
		CustomParams: "a=1&b=2",
	}}

	final, _ := aug.Augment(link, "https://example.com/page?b=0&c=3")

	parsed, err := url.Parse(final)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, []string{"1"}, q["a"])
	assert.Equal(t, []string{"2"}, q["b"]) // overridden, not duplicated
	assert.Equal(t, []string{"3"}, q["c"])
	assert.Empty(t, q.Get("utm_source")) // custom params suppress the defaults
}

func TestAffiliateAugmenter_MalformedFragmentsSkipped(t *testing.T) {
	aug := resolver.AffiliateAugmenter{}
	link := &domain.ShortLink{Affiliate: domain.AffiliateConfig{
		Enabled:      true,
		CustomParams: "a=1&nokey&=orphan&b=2",
	}}

	final, _ := aug.Augment(link, "https://example.com/")

	parsed, err := url.Parse(final)
	require.NoError(t, err)
	assert.Equal(t, "1", parsed.Query().Get("a"))
	assert.Equal(t, "2", parsed.Query().Get("b"))
	assert.NotContains(t, final, "orphan")
	assert.NotContains(t, final, "nokey")
}

func TestAffiliateAugmenter_CookieWithoutQueryRewrite(t *testing.T) {
	aug := resolver.AffiliateAugmenter{}
	link := &domain.ShortLink{Affiliate: domain.AffiliateConfig{
		Enabled:    true,
		Tag:        "fall",
		CookieDays: 7,
	}}

	// An unparseable URL leaves the destination alone but still sets
	// the attribution cookie.
	final, cookie := aug.Augment(link, "https://example.com/%zz")
	assert.Equal(t, "https://example.com/%zz", final)
	require.NotNil(t, cookie)
	assert.Equal(t, "fall:", cookie.Value)
	assert.Equal(t, 7*86400, cookie.MaxAge)
}

func TestAffiliateAugmenter_NoCookieWithoutTagOrIdentifier(t *testing.T) {
	aug := resolver.AffiliateAugmenter{}
	link := &domain.ShortLink{Affiliate: domain.AffiliateConfig{
		Enabled:      true,
		CustomParams: "ref=house",
	}}

	final, cookie := aug.Augment(link, "https://example.com/")
	assert.Contains(t, final, "ref=house")
	assert.Nil(t, cookie)
}
