package model

import "time"

// SignupRecord is one persisted email signup. Email is stored trimmed and
// lowercased; the store itself does not enforce uniqueness, callers check
// for an existing record before appending.
type SignupRecord struct {
	ID        int64
	Email     string
	Tab       string
	Name      string
	Source    string
	Tags      []string
	Metadata  map[string]string
	CreatedAt time.Time
}

// SignupStats is the aggregate view over all stored signups.
type SignupStats struct {
	TotalSignups int64
	SheetTabs    []string
}

// BulkResult aggregates per-item outcomes of a bulk submission.
// Success + Failed + Duplicates always equals the number of submitted items.
type BulkResult struct {
	Success    int
	Failed     int
	Duplicates int
	Errors     []string
}
