package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"shortlink/internal/domain"
	"shortlink/internal/secret"
)

// Create issues a new short link. Malformed destination rules are
// dropped here, at write time, so the resolver only ever sees typed,
// valid rules.
func (s *LinkService) Create(ctx context.Context, req domain.CreateLinkRequest) (*domain.CreateLinkResponse, error) {
	if err := s.validator.ValidateDestination(req.URL); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateAlias(req.Alias); err != nil {
		return nil, err
	}

	if req.Alias != "" {
		taken, err := s.store.KeyTaken(ctx, req.Alias)
		if err != nil {
			return nil, fmt.Errorf("failed to check alias: %w", err)
		}
		if taken {
			return nil, ErrAliasTaken
		}
	}

	rules := make([]domain.DestinationRule, 0, len(req.Rules))
	for _, spec := range req.Rules {
		if err := s.validator.ValidateDestination(spec.TargetURL); err != nil {
			s.logger.Warn("dropping rule with invalid target",
				slog.String("target", spec.TargetURL))
			continue
		}
		rule, err := domain.ParseRule(spec.TargetURL, spec.Rule, spec.Weight)
		if err != nil {
			s.logger.Warn("dropping malformed rule",
				slog.String("rule", spec.Rule))
			continue
		}
		rules = append(rules, rule)
	}

	var stored string
	if req.Password != "" {
		hashed, err := secret.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		stored = hashed
	}

	var splash json.RawMessage
	if req.SplashAsset != "" {
		splash, _ = json.Marshal(req.SplashAsset)
	}

	id, err := s.store.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get next id: %w", err)
	}

	code, err := s.generator.Generate(id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate short code: %w", err)
	}

	link := &domain.ShortLink{
		ID:          id,
		Code:        code,
		Alias:       req.Alias,
		Destination: req.URL,
		Active:      true,
		ExpiresAt:   req.ExpiresAt,
		Secret:      stored,
		SplashAsset: splash,
		LoadingText: req.LoadingText,
		Rules:       rules,
		Affiliate:   req.Affiliate,
	}

	if err := s.store.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return &domain.CreateLinkResponse{
		Code:        code,
		Alias:       req.Alias,
		ShortURL:    fmt.Sprintf("%s/s/%s", s.baseURL, code),
		Destination: req.URL,
	}, nil
}

// Stats reads click totals straight from storage so counters are not
// staled by the resolution cache.
func (s *LinkService) Stats(ctx context.Context, key string) (*domain.LinkStatsResponse, error) {
	link, err := s.store.FindByCodeOrAlias(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	return &domain.LinkStatsResponse{
		Code:          link.Code,
		Clicks:        link.Clicks,
		LastClickedAt: link.LastClickedAt,
		CreatedAt:     link.CreatedAt,
	}, nil
}
