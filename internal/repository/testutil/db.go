package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"waitlist/backend/internal/db"
	"waitlist/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce guards one-time generator setup across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB opens an in-memory SQLite database and runs the migrations.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared cache so concurrent connections see the same in-memory
	// database; unique name per test to avoid cross-test bleed.
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedSignup inserts one signup row directly and returns its ID.
func SeedSignup(t *testing.T, database *sql.DB, tab, email string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO signups (id, tab, email, created_at) VALUES (?, ?, ?, ?)`,
		id, tab, email, now,
	)
	if err != nil {
		t.Fatalf("failed to seed signup: %v", err)
	}
	return id
}
