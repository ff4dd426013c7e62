package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT). Email uniqueness is
// deliberately NOT a constraint here: deduplication is an explicit
// existence check in the signup pipeline, mirroring a spreadsheet backend
// that cannot enforce uniqueness itself.
const baseSchema = `
CREATE TABLE IF NOT EXISTS signups (
  id INTEGER PRIMARY KEY,
  tab TEXT NOT NULL,
  email TEXT NOT NULL,
  name TEXT,
  source TEXT,
  tags TEXT,
  metadata TEXT,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signups_tab_email ON signups(tab, email);
CREATE INDEX IF NOT EXISTS idx_signups_email ON signups(email);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	return nil
}
