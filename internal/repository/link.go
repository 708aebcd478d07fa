package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"deeplinker/internal/config"
	"deeplinker/internal/domain"
)

const schema = `
CREATE SEQUENCE IF NOT EXISTS links_id_seq;

CREATE TABLE IF NOT EXISTS links (
	id           BIGINT PRIMARY KEY,
	slug         TEXT NOT NULL UNIQUE,
	original_url TEXT NOT NULL,
	android_url  TEXT NOT NULL DEFAULT '',
	ios_url      TEXT NOT NULL DEFAULT '',
	fallback_url TEXT NOT NULL DEFAULT '',
	is_active    BOOLEAN NOT NULL DEFAULT TRUE,
	expires_at   TIMESTAMPTZ,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS click_events (
	id         BIGSERIAL PRIMARY KEY,
	link_id    BIGINT NOT NULL,
	clicked_at TIMESTAMPTZ NOT NULL,
	ip_address TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	referrer   TEXT NOT NULL DEFAULT '',
	device     TEXT NOT NULL DEFAULT '',
	app        TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_click_events_link_id ON click_events (link_id);

CREATE TABLE IF NOT EXISTS http_metrics (
	id          BIGSERIAL PRIMARY KEY,
	time        TIMESTAMPTZ NOT NULL,
	method      TEXT NOT NULL,
	path        TEXT NOT NULL,
	status_code INT NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	client_ip   TEXT NOT NULL DEFAULT '',
	error       TEXT NOT NULL DEFAULT ''
);
`

type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(ctx context.Context, cfg *config.DatabaseConfig) (*LinkRepository, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &LinkRepository{pool: pool}, nil
}

// Pool exposes the underlying pool for infra sampling and the click-event
// batch writer.
func (r *LinkRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *LinkRepository) Close() {
	r.pool.Close()
}

func (r *LinkRepository) NextID(ctx context.Context) (uint, error) {
	var nextID uint
	err := r.pool.QueryRow(ctx, "SELECT nextval('links_id_seq')").Scan(&nextID)
	if err != nil {
		return 0, fmt.Errorf("failed to get next id: %w", err)
	}
	return nextID, nil
}

func (r *LinkRepository) Create(ctx context.Context, link domain.Link) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO links (id, slug, original_url, android_url, ios_url, fallback_url, is_active, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		link.ID, link.Slug, link.OriginalURL, link.AndroidURL, link.IOSURL,
		link.FallbackURL, link.IsActive, link.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

// FindBySlug returns pgx.ErrNoRows unwrapped when no record exists so the
// service can map it to its own not-found sentinel.
func (r *LinkRepository) FindBySlug(ctx context.Context, slug string) (domain.Link, error) {
	var link domain.Link
	err := r.pool.QueryRow(ctx,
		`SELECT id, slug, original_url, android_url, ios_url, fallback_url, is_active, expires_at, created_at
		 FROM links WHERE slug = $1`,
		slug,
	).Scan(
		&link.ID, &link.Slug, &link.OriginalURL, &link.AndroidURL, &link.IOSURL,
		&link.FallbackURL, &link.IsActive, &link.ExpiresAt, &link.CreatedAt,
	)
	if err != nil {
		return domain.Link{}, err
	}
	return link, nil
}

// SlugExists supports custom-slug creation.
func (r *LinkRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM links WHERE slug = $1)", slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}
