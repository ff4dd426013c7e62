//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"waitlist/backend/internal/model"
	"waitlist/backend/pkg/snowflake"
)

// SignupStore is the storage collaborator boundary. The bundled
// implementation is SQLite; a remote spreadsheet backend satisfies the same
// interface. None of the methods enforce uniqueness — callers check Exists
// before Append.
type SignupStore interface {
	Append(ctx context.Context, rec model.SignupRecord) error
	Exists(ctx context.Context, tab, email string) (bool, error)
	ExistsAnyTab(ctx context.Context, email string) (bool, error)
	Stats(ctx context.Context) (model.SignupStats, error)
}

type sqliteSignupStore struct {
	db *sql.DB
}

// NewSQLiteSignupStore creates a SignupStore over an already-migrated
// SQLite handle.
func NewSQLiteSignupStore(db *sql.DB) SignupStore {
	return &sqliteSignupStore{db: db}
}

func (s *sqliteSignupStore) Append(ctx context.Context, rec model.SignupRecord) error {
	id := rec.ID
	if id == 0 {
		id = snowflake.NextID()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var tags any
	if len(rec.Tags) > 0 {
		tags = strings.Join(rec.Tags, ",")
	}
	var metadata any
	if len(rec.Metadata) > 0 {
		encoded, err := json.Marshal(rec.Metadata)
		if err != nil {
			return fmt.Errorf("encode metadata: %w", err)
		}
		metadata = string(encoded)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO signups (id, tab, email, name, source, tags, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, rec.Tab, normalizeEmail(rec.Email), optional(rec.Name), optional(rec.Source),
		tags, metadata, createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append signup: %w", err)
	}
	return nil
}

func (s *sqliteSignupStore) Exists(ctx context.Context, tab, email string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM signups WHERE tab = ? AND email = ? LIMIT 1
	`, tab, normalizeEmail(email)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check signup exists: %w", err)
	}
	return true, nil
}

func (s *sqliteSignupStore) ExistsAnyTab(ctx context.Context, email string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM signups WHERE email = ? LIMIT 1
	`, normalizeEmail(email)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check signup exists: %w", err)
	}
	return true, nil
}

func (s *sqliteSignupStore) Stats(ctx context.Context) (model.SignupStats, error) {
	var stats model.SignupStats
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM signups`).Scan(&stats.TotalSignups); err != nil {
		return model.SignupStats{}, fmt.Errorf("count signups: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT tab FROM signups ORDER BY tab`)
	if err != nil {
		return model.SignupStats{}, fmt.Errorf("list tabs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tab string
		if err := rows.Scan(&tab); err != nil {
			return model.SignupStats{}, err
		}
		stats.SheetTabs = append(stats.SheetTabs, tab)
	}
	return stats, rows.Err()
}

// normalizeEmail is the canonical form every lookup and write uses, so
// dedup checks are case-insensitive regardless of how the client typed the
// address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
