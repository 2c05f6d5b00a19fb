package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"locshare/internal/models"
)

// ErrUserNotFound is returned when no profile exists for a user id.
var ErrUserNotFound = errors.New("user not found")

// DB is the part of *pgxpool.Pool the store uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       TEXT PRIMARY KEY,
	language TEXT NOT NULL DEFAULT 'english'
);
CREATE TABLE IF NOT EXISTS user_locations (
	id         UUID PRIMARY KEY,
	user_id    TEXT NOT NULL,
	lat        DOUBLE PRECISION NOT NULL,
	lng        DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS user_locations_user_id_idx ON user_locations (user_id);
`

// Postgres stores user profiles and submitted locations.
type Postgres struct {
	db   DB
	pool *pgxpool.Pool
}

// NewPostgres connects to databaseURL and verifies the connection.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	log.Println("Successfully connected to Postgres")
	return &Postgres{db: pool, pool: pool}, nil
}

// NewPostgresWithDB wraps an existing connection.
func NewPostgresWithDB(db DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate creates the tables if they do not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// UserLanguage returns the preferred language stored for userID.
func (p *Postgres) UserLanguage(ctx context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrUserNotFound
	}
	var language string
	err := p.db.QueryRow(ctx, `SELECT language FROM users WHERE id = $1`, userID).Scan(&language)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query user language: %w", err)
	}
	return language, nil
}

// SetUserLanguage creates or updates a user profile.
func (p *Postgres) SetUserLanguage(ctx context.Context, profile models.UserProfile) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO users (id, language) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET language = EXCLUDED.language`,
		profile.UserID, profile.Language)
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", profile.UserID, err)
	}
	return nil
}

// SaveLocation inserts a submitted location.
func (p *Postgres) SaveLocation(ctx context.Context, loc models.SavedLocation) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO user_locations (id, user_id, lat, lng, created_at) VALUES ($1, $2, $3, $4, $5)`,
		loc.ID, loc.UserID, loc.Lat, loc.Lng, loc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (p *Postgres) Ping(ctx context.Context) error {
	if p.pool == nil {
		return nil
	}
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
