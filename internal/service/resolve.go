package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shortlink/internal/domain"
	"shortlink/internal/resolver"
)

var (
	ErrLinkNotFound       = errors.New("link not found")
	ErrLinkInactive       = errors.New("link is inactive")
	ErrLinkRestricted     = errors.New("link is restricted")
	ErrLinkExpired        = errors.New("link has expired")
	ErrInvalidDestination = errors.New("destination is not a valid url")
	ErrAliasTaken         = errors.New("alias is already taken")
)

const deactivateTimeout = 5 * time.Second

// VisitOptions carries per-request inputs that are not part of the
// normalized visitor context.
type VisitOptions struct {
	Password   string
	SkipSplash bool
	IP         string
	UserAgent  string
	Referrer   string
}

type LinkService struct {
	store     LinkStore
	cache     LinkCache
	generator CodeGenerator
	validator DestinationValidator
	recorder  ClickSink
	logger    *slog.Logger
	baseURL   string

	gate      resolver.AccessGate
	passwords *resolver.PasswordGate
	targets   *resolver.DestinationResolver
	affiliate resolver.AffiliateAugmenter
	presenter *resolver.PresentationSelector
}

func NewLinkService(
	store LinkStore,
	cache LinkCache,
	generator CodeGenerator,
	validator DestinationValidator,
	recorder ClickSink,
	passwords *resolver.PasswordGate,
	targets *resolver.DestinationResolver,
	presenter *resolver.PresentationSelector,
	baseURL string,
	logger *slog.Logger,
) *LinkService {
	return &LinkService{
		store:     store,
		cache:     cache,
		generator: generator,
		validator: validator,
		recorder:  recorder,
		logger:    logger,
		baseURL:   baseURL,
		passwords: passwords,
		targets:   targets,
		presenter: presenter,
	}
}

// Resolve runs the full decision pipeline for one visit: access gate,
// password gate, destination selection, affiliate augmentation and
// presentation. A click is recorded only when both gates pass, after
// the response is decided, and never blocks the caller.
func (s *LinkService) Resolve(ctx context.Context, key string, visit *domain.VisitorContext, opts VisitOptions) (*domain.Resolution, error) {
	link, err := s.lookup(ctx, key)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch s.gate.Evaluate(link, now) {
	case resolver.AccessInactive:
		// A link deactivated by an earlier expiry sweep still reports
		// expired, not inactive.
		if link.Expired(now) {
			return nil, ErrLinkExpired
		}
		return nil, ErrLinkInactive
	case resolver.AccessRestricted:
		return nil, ErrLinkRestricted
	case resolver.AccessExpired:
		s.deactivate(link)
		return nil, ErrLinkExpired
	}

	switch s.passwords.Verify(link, opts.Password) {
	case resolver.PasswordPrompt:
		return &domain.Resolution{
			Mode:      domain.ModeChallenge,
			Challenge: &domain.Challenge{Code: link.Code},
		}, nil
	case resolver.PasswordRejected:
		return &domain.Resolution{
			Mode:      domain.ModeChallenge,
			Challenge: &domain.Challenge{Code: link.Code, Failed: true},
		}, nil
	}

	dest, err := s.destination(link, visit)
	if err != nil {
		return nil, err
	}

	final, cookie := s.affiliate.Augment(link, dest)

	res := s.presenter.Present(link, final, opts.SkipSplash)
	res.Cookie = cookie

	s.recorder.Record(buildClickEvent(link, visit, opts, now))

	return &res, nil
}

func (s *LinkService) lookup(ctx context.Context, key string) (*domain.ShortLink, error) {
	if link, found := s.cache.Get(key); found {
		return link, nil
	}

	link, err := s.store.FindByCodeOrAlias(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	s.cache.Set(link)
	return link, nil
}

// destination picks the rule target and verifies it serves as an
// absolute http(s) URL, falling back to the primary destination
// before giving up.
func (s *LinkService) destination(link *domain.ShortLink, visit *domain.VisitorContext) (string, error) {
	dest := s.targets.Resolve(link, visit)
	if s.validator.ValidateDestination(dest) == nil {
		return dest, nil
	}

	if dest != link.Destination {
		s.logger.Warn("rule target invalid, falling back to primary",
			slog.String("code", link.Code),
			slog.String("target", dest))
		if s.validator.ValidateDestination(link.Destination) == nil {
			return link.Destination, nil
		}
	}
	return "", ErrInvalidDestination
}

// deactivate requests the idempotent expiry write off the request
// path. The response does not wait for it and a failure only logs.
func (s *LinkService) deactivate(link *domain.ShortLink) {
	s.cache.Del(link.Code)
	if link.Alias != "" {
		s.cache.Del(link.Alias)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deactivateTimeout)
		defer cancel()

		if err := s.store.Deactivate(ctx, link.ID); err != nil {
			s.logger.Error("failed to deactivate expired link",
				slog.String("code", link.Code),
				slog.String("error", err.Error()))
		}
	}()
}

func buildClickEvent(link *domain.ShortLink, visit *domain.VisitorContext, opts VisitOptions, now time.Time) *domain.ClickEvent {
	return &domain.ClickEvent{
		ID:        uuid.NewString(),
		LinkID:    link.ID,
		Code:      link.Code,
		IP:        opts.IP,
		UserAgent: opts.UserAgent,
		Referrer:  opts.Referrer,
		Country:   visit.Country,
		Device:    visit.Device,
		Browser:   visit.Browser,
		OS:        visit.OS,
		Language:  visit.Language,
		CreatedAt: now,
	}
}
