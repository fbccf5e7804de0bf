package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS links (
	id              BIGSERIAL PRIMARY KEY,
	code            TEXT NOT NULL,
	alias           TEXT,
	destination     TEXT NOT NULL,
	active          BOOLEAN NOT NULL DEFAULT TRUE,
	restricted      BOOLEAN NOT NULL DEFAULT FALSE,
	expires_at      TIMESTAMPTZ,
	secret          TEXT NOT NULL DEFAULT '',
	splash_asset    JSONB,
	loading_text    TEXT NOT NULL DEFAULT '',
	rules           JSONB NOT NULL DEFAULT '[]',
	affiliate       JSONB NOT NULL DEFAULT '{}',
	clicks          BIGINT NOT NULL DEFAULT 0,
	last_clicked_at TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS links_code_idx ON links (code);
CREATE UNIQUE INDEX IF NOT EXISTS links_alias_idx ON links (alias) WHERE alias <> '';

CREATE TABLE IF NOT EXISTS link_clicks (
	id         UUID PRIMARY KEY,
	link_id    BIGINT NOT NULL REFERENCES links (id),
	code       TEXT NOT NULL,
	ip         TEXT NOT NULL,
	user_agent TEXT NOT NULL,
	referrer   TEXT NOT NULL,
	country    TEXT NOT NULL,
	device     TEXT NOT NULL,
	browser    TEXT NOT NULL,
	os         TEXT NOT NULL,
	language   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS link_clicks_link_id_idx ON link_clicks (link_id);
`

const linkColumns = `id, code, alias, destination, active, restricted, expires_at,
	secret, splash_asset, loading_text, rules, affiliate, clicks, last_clicked_at, created_at`

type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(ctx context.Context, cfg *config.DatabaseConfig) (*LinkRepository, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode, cfg.MaxConns,
	)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &LinkRepository{pool: pool}, nil
}

func (r *LinkRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *LinkRepository) Close() {
	r.pool.Close()
}

// FindByCodeOrAlias looks a link up by either identifier namespace.
func (r *LinkRepository) FindByCodeOrAlias(ctx context.Context, key string) (*domain.ShortLink, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+linkColumns+` FROM links WHERE code = $1 OR alias = $1`, key)
	return scanLink(row)
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.ShortLink) error {
	rules, err := json.Marshal(link.Rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	affiliate, err := json.Marshal(link.Affiliate)
	if err != nil {
		return fmt.Errorf("failed to marshal affiliate config: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO links (id, code, alias, destination, active, restricted, expires_at,
			secret, splash_asset, loading_text, rules, affiliate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at`,
		link.ID, link.Code, link.Alias, link.Destination, link.Active, link.Restricted,
		link.ExpiresAt, link.Secret, link.SplashAsset, link.LoadingText, rules, affiliate,
	).Scan(&link.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

func (r *LinkRepository) NextID(ctx context.Context) (uint, error) {
	var nextID uint
	err := r.pool.QueryRow(ctx, `SELECT nextval('links_id_seq')`).Scan(&nextID)
	if err != nil {
		return 0, fmt.Errorf("failed to get next id: %w", err)
	}
	return nextID, nil
}

// KeyTaken reports whether a key is already used as a code or alias.
func (r *LinkRepository) KeyTaken(ctx context.Context, key string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM links WHERE code = $1 OR alias = $1)`, key).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check key: %w", err)
	}
	return taken, nil
}

// Deactivate clears the activation flag. Safe to repeat: the WHERE
// clause makes the write a no-op once the flag is cleared.
func (r *LinkRepository) Deactivate(ctx context.Context, id uint) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE links SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	return nil
}

// RecordClick bumps the link counter and appends the event in one
// transaction. The increment is atomic in the database, so concurrent
// clicks on the same link never corrupt the counter.
func (r *LinkRepository) RecordClick(ctx context.Context, ev *domain.ClickEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE links SET clicks = clicks + 1, last_clicked_at = $2 WHERE id = $1`,
		ev.LinkID, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO link_clicks (id, link_id, code, ip, user_agent, referrer,
			country, device, browser, os, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		ev.ID, ev.LinkID, ev.Code, ev.IP, ev.UserAgent, ev.Referrer,
		ev.Country, ev.Device, ev.Browser, ev.OS, ev.Language, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert click: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit click: %w", err)
	}
	return nil
}

func scanLink(row pgx.Row) (*domain.ShortLink, error) {
	var (
		link      domain.ShortLink
		rules     []byte
		affiliate []byte
	)
	err := row.Scan(
		&link.ID, &link.Code, &link.Alias, &link.Destination, &link.Active,
		&link.Restricted, &link.ExpiresAt, &link.Secret, &link.SplashAsset,
		&link.LoadingText, &rules, &affiliate, &link.Clicks, &link.LastClickedAt,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(rules) > 0 {
		if err := json.Unmarshal(rules, &link.Rules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
		}
	}
	if len(affiliate) > 0 {
		if err := json.Unmarshal(affiliate, &link.Affiliate); err != nil {
			return nil, fmt.Errorf("failed to unmarshal affiliate config: %w", err)
		}
	}
	return &link, nil
}
