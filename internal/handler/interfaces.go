package handler

//go:generate mockery

import (
	"context"

	"shortlink/internal/domain"
	"shortlink/internal/service"
)

type LinkResolver interface {
	Resolve(ctx context.Context, key string, visit *domain.VisitorContext, opts service.VisitOptions) (*domain.Resolution, error)
	Create(ctx context.Context, req domain.CreateLinkRequest) (*domain.CreateLinkResponse, error)
	Stats(ctx context.Context, key string) (*domain.LinkStatsResponse, error)
}
