package store

import (
	"context"

	"github.com/wayfarer-app/wayfarer/pkg/sqlstore"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

// Store aggregates every table store plus transaction control. The sqlstore
// provider implements it for production; tests may substitute their own.
type Store interface {
	Transaction(ctx context.Context, next func(ctx context.Context) error) error
	SharingConfigStore() SharingConfigStore
	DirectShareStore() DirectShareStore
	TripViewStore() TripViewStore
	TripLikeStore() TripLikeStore
	TripCommentStore() TripCommentStore
	TripStore() TripStore
}

// SharingConfigStore persists the per-trip sharing configuration. One row per
// trip, created private at trip creation, cascade-deleted with the trip.
type SharingConfigStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.SharingConfig) error
	// Get fails with sql.ErrNoRows when the trip has no config; callers treat
	// that as a data-integrity fault for live trips.
	Get(ctx context.Context, tripID string) (*types.SharingConfig, error)
	// GetForUpdate locks the row for the duration of the surrounding
	// transaction, serializing visibility transitions per trip.
	GetForUpdate(ctx context.Context, tripID string) (*types.SharingConfig, error)
	GetByToken(ctx context.Context, token string) (*types.SharingConfig, error)
	// UpdateVisibility sets visibility and the token column together so the
	// token invariant holds after every transition.
	UpdateVisibility(ctx context.Context, tripID string, visibility types.Visibility, token *string) error
	UpdateFlags(ctx context.Context, tripID string, allowComments, allowCloning *bool) error
	Delete(ctx context.Context, tripID string) error
}

// DirectShareStore persists explicit owner-granted per-recipient access.
type DirectShareStore interface {
	sqlstore.SqlCommons
	// Upsert inserts or overwrites the grant keyed by (trip_id, recipient) in
	// a single conditional statement; re-sharing never duplicates. An expired
	// invite is revived to pending, a claimed grant stays claimed. Returns the
	// stored row.
	Upsert(ctx context.Context, data types.DirectShare) (*types.DirectShare, error)
	List(ctx context.Context, opts types.ListDirectShareOptions) ([]types.DirectShare, error)
	// Claim binds all pending invites addressed to email to the given user.
	Claim(ctx context.Context, email, userID string) (int64, error)
	// ExpirePending marks unclaimed invites older than the given unix time
	// expired and returns how many were swept.
	ExpirePending(ctx context.Context, olderThan int64) (int64, error)
	DeleteByTrip(ctx context.Context, tripID string) error
}

// TripViewStore is the append-only view ledger.
type TripViewStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.TripView) error
	Count(ctx context.Context, tripID string) (int64, error)
	CountDistinctViewers(ctx context.Context, tripID string) (int64, error)
	ListRecent(ctx context.Context, tripID string, limit uint64) ([]types.TripView, error)
	DeleteByTrip(ctx context.Context, tripID string) error
}

// TripLikeStore holds at most one like per (trip, user).
type TripLikeStore interface {
	sqlstore.SqlCommons
	// TryCreate inserts the like unless it already exists, reporting whether a
	// row was actually inserted. Safe under concurrent double-toggle.
	TryCreate(ctx context.Context, tripID, userID string) (bool, error)
	Delete(ctx context.Context, tripID, userID string) (bool, error)
	Exists(ctx context.Context, tripID, userID string) (bool, error)
	Count(ctx context.Context, tripID string) (int64, error)
	DeleteByTrip(ctx context.Context, tripID string) error
}

// TripCommentStore is the append-only comment ledger.
type TripCommentStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.TripComment) error
	Count(ctx context.Context, tripID string) (int64, error)
	List(ctx context.Context, tripID string, page, pageSize uint64) ([]types.TripComment, error)
	DeleteByTrip(ctx context.Context, tripID string) error
}

// TripStore stands in for the external trip collaborator: just enough to
// resolve a trip and deep-copy it under new ownership for cloning.
type TripStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Trip) error
	Get(ctx context.Context, tripID string) (*types.Trip, error)
	// Copy duplicates the source trip's content under newOwner with the given
	// fresh id, recording provenance. Engagement and shares are never copied.
	Copy(ctx context.Context, source *types.Trip, newTripID, newOwner string) error
	Delete(ctx context.Context, tripID string) error
}
