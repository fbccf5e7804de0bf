package service

//go:generate mockery

import (
	"context"

	"shortlink/internal/domain"
)

type LinkStore interface {
	FindByCodeOrAlias(ctx context.Context, key string) (*domain.ShortLink, error)
	Create(ctx context.Context, link *domain.ShortLink) error
	NextID(ctx context.Context) (uint, error)
	KeyTaken(ctx context.Context, key string) (bool, error)
	Deactivate(ctx context.Context, id uint) error
}

type LinkCache interface {
	Get(key string) (*domain.ShortLink, bool)
	Set(link *domain.ShortLink)
	Del(key string)
}

// ClickSink accepts click events without blocking.
type ClickSink interface {
	Record(ev *domain.ClickEvent)
}

type CodeGenerator interface {
	Generate(id uint) (string, error)
}

type DestinationValidator interface {
	ValidateDestination(rawURL string) error
	ValidateAlias(alias string) error
}
