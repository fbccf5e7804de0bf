package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/cache"
	"shortlink/internal/domain"
)

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10) // 2^10 = 1KB
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0) // 2^0 = 1 byte (min)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingKey(t *testing.T) {
	c, err := cache.New(10)
	require.NoError(t, err)
	defer c.Close()

	link, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Nil(t, link)
}

func TestSetThenGet(t *testing.T) {
	c, err := cache.New(20) // 2^20 = 1MB
	require.NoError(t, err)
	defer c.Close()

	link := &domain.ShortLink{
		Code:        "abc123",
		Destination: "https://example.com/very/long/path",
		Active:      true,
	}

	c.Set(link)
	time.Sleep(10 * time.Millisecond) // Ristretto needs time to process

	got, found := c.Get("abc123")
	assert.True(t, found)
	assert.Same(t, link, got)
}

func TestSet_AliasKey(t *testing.T) {
	c, err := cache.New(20)
	require.NoError(t, err)
	defer c.Close()

	link := &domain.ShortLink{
		Code:        "abc123",
		Alias:       "promo",
		Destination: "https://example.com",
		Active:      true,
	}

	c.Set(link)
	time.Sleep(10 * time.Millisecond)

	byCode, found := c.Get("abc123")
	assert.True(t, found)
	assert.Same(t, link, byCode)

	byAlias, found := c.Get("promo")
	assert.True(t, found)
	assert.Same(t, link, byAlias)
}

func TestDel(t *testing.T) {
	c, err := cache.New(20)
	require.NoError(t, err)
	defer c.Close()

	link := &domain.ShortLink{Code: "abc123", Destination: "https://example.com"}

	c.Set(link)
	time.Sleep(10 * time.Millisecond)

	c.Del("abc123")
	time.Sleep(10 * time.Millisecond)

	_, found := c.Get("abc123")
	assert.False(t, found)
}

func TestStats(t *testing.T) {
	c, err := cache.New(20)
	require.NoError(t, err)
	defer c.Close()

	link := &domain.ShortLink{Code: "abc123", Destination: "https://example.com"}
	c.Set(link)
	time.Sleep(10 * time.Millisecond)

	c.Get("abc123")
	c.Get("missing")

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}
