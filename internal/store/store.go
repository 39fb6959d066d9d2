// Package store owns the persisted driver roster.
package store

import (
	"context"

	"github.com/sells-group/roster-cli/internal/model"
)

// Store defines the persistence interface for the driver roster. The store
// is the sole owner of the authoritative collection; callers treat returned
// slices as read-through copies.
//
// Mutating operations are read-modify-write without isolation. Concurrent
// writers can lose updates, so multi-record changes (imports) must go
// through a single ReplaceAll rather than repeated Upserts.
type Store interface {
	// Load returns the persisted collection, or an empty collection when no
	// file exists yet.
	Load(ctx context.Context) ([]model.Driver, error)

	// Save overwrites the persisted collection as-is. A concurrent Load
	// never observes a partially written file.
	Save(ctx context.Context, drivers []model.Driver) error

	// ReplaceAll sorts canonically, saves, and returns the sorted collection.
	ReplaceAll(ctx context.Context, drivers []model.Driver) ([]model.Driver, error)

	// Upsert replaces the record with a matching id, or appends, then sorts
	// and saves.
	Upsert(ctx context.Context, d model.Driver) ([]model.Driver, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int) ([]model.Driver, error)

	// DeleteMany removes every record whose id is in ids.
	DeleteMany(ctx context.Context, ids []int) ([]model.Driver, error)

	// SetActive flips the soft-delete flag on the matching record.
	SetActive(ctx context.Context, id int, active bool) ([]model.Driver, error)
}
