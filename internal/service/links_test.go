package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgx/v5"

	"shortlink/internal/domain"
	"shortlink/internal/secret"
	"shortlink/internal/service"
)

func TestCreate_Minimal(t *testing.T) {
	svc, deps := newTestService(t)

	deps.validator.EXPECT().ValidateDestination("https://example.com").Return(nil)
	deps.validator.EXPECT().ValidateAlias("").Return(nil)
	deps.store.EXPECT().NextID(mock.Anything).Return(uint(42), nil)
	deps.generator.EXPECT().Generate(uint(42)).Return("xYz987", nil)

	var created *domain.ShortLink
	deps.store.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.ShortLink")).RunAndReturn(func(_ context.Context, link *domain.ShortLink) error {
		created = link
		return nil
	})

	resp, err := svc.Create(context.Background(), domain.CreateLinkRequest{URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "xYz987", resp.Code)
	assert.Equal(t, "https://sho.rt/s/xYz987", resp.ShortURL)
	assert.Equal(t, "https://example.com", resp.Destination)

	require.NotNil(t, created)
	assert.Equal(t, uint(42), created.ID)
	assert.True(t, created.Active)
	assert.Empty(t, created.Secret)
	assert.Empty(t, created.Rules)
}

func TestCreate_InvalidURL(t *testing.T) {
	svc, deps := newTestService(t)

	deps.validator.EXPECT().ValidateDestination("not a url").Return(assert.AnError)

	_, err := svc.Create(context.Background(), domain.CreateLinkRequest{URL: "not a url"})
	assert.Error(t, err)
	deps.store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_AliasTaken(t *testing.T) {
	svc, deps := newTestService(t)

	deps.validator.EXPECT().ValidateDestination("https://example.com").Return(nil)
	deps.validator.EXPECT().ValidateAlias("promo").Return(nil)
	deps.store.EXPECT().KeyTaken(mock.Anything, "promo").Return(true, nil)

	_, err := svc.Create(context.Background(), domain.CreateLinkRequest{URL: "https://example.com", Alias: "promo"})
	assert.ErrorIs(t, err, service.ErrAliasTaken)
}

func TestCreate_PasswordStoredAsHash(t *testing.T) {
	svc, deps := newTestService(t)

	deps.validator.EXPECT().ValidateDestination("https://example.com").Return(nil)
	deps.validator.EXPECT().ValidateAlias("").Return(nil)
	deps.store.EXPECT().NextID(mock.Anything).Return(uint(1), nil)
	deps.generator.EXPECT().Generate(uint(1)).Return("UkLWZg", nil)

	var created *domain.ShortLink
	deps.store.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.ShortLink")).RunAndReturn(func(_ context.Context, link *domain.ShortLink) error {
		created = link
		return nil
	})

	_, err := svc.Create(context.Background(), domain.CreateLinkRequest{URL: "https://example.com", Password: "hunter2"})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.True(t, secret.IsHash(created.Secret))
	assert.True(t, secret.VerifyHash("hunter2", created.Secret))
}

func TestCreate_DropsMalformedRules(t *testing.T) {
	svc, deps := newTestService(t)

	deps.validator.EXPECT().ValidateDestination("https://example.com").Return(nil)
	deps.validator.EXPECT().ValidateAlias("").Return(nil)
	deps.validator.EXPECT().ValidateDestination("https://example.de").Return(nil)
	deps.validator.EXPECT().ValidateDestination("ftp://bad.example.com").Return(assert.AnError)
	deps.validator.EXPECT().ValidateDestination("https://m.example.com").Return(nil)
	deps.store.EXPECT().NextID(mock.Anything).Return(uint(1), nil)
	deps.generator.EXPECT().Generate(uint(1)).Return("UkLWZg", nil)

	var created *domain.ShortLink
	deps.store.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.ShortLink")).RunAndReturn(func(_ context.Context, link *domain.ShortLink) error {
		created = link
		return nil
	})

	req := domain.CreateLinkRequest{
		URL: "https://example.com",
		Rules: []domain.RuleSpec{
			{TargetURL: "https://example.de", Rule: "country:de", Weight: 2},
			{TargetURL: "ftp://bad.example.com", Rule: "country:fr", Weight: 1},
			{TargetURL: "https://m.example.com", Rule: "planet:mars", Weight: 1},
		},
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	// Only the valid country rule survives; bad target and unknown
	// dimension are dropped at write time.
	require.NotNil(t, created)
	require.Len(t, created.Rules, 1)
	assert.Equal(t, domain.DimCountry, created.Rules[0].Dimension)
	assert.Equal(t, "de", created.Rules[0].Value)
	assert.Equal(t, 2, created.Rules[0].Weight)
}

func TestStats(t *testing.T) {
	svc, deps := newTestService(t)

	clicked := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	deps.store.EXPECT().FindByCodeOrAlias(mock.Anything, "abc123").Return(&domain.ShortLink{
		Code:          "abc123",
		Clicks:        321,
		LastClickedAt: &clicked,
		CreatedAt:     created,
	}, nil)

	stats, err := svc.Stats(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", stats.Code)
	assert.Equal(t, int64(321), stats.Clicks)
	assert.Equal(t, &clicked, stats.LastClickedAt)
	assert.Equal(t, created, stats.CreatedAt)
}

func TestStats_NotFound(t *testing.T) {
	svc, deps := newTestService(t)

	deps.store.EXPECT().FindByCodeOrAlias(mock.Anything, "missing").Return(nil, pgx.ErrNoRows)

	_, err := svc.Stats(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
}
