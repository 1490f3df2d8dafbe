package query

import "context"

// Querier is the string-based query surface of the host.
//
// The host documents a fixed timeout on query evaluation; a query that
// exceeds it fails on the host side. That behavior is the host's alone
// and is recorded here for call-site awareness only.
type Querier interface {
	// Q evaluates a datalog query with optional inputs and delivers the
	// result records through a deferred result.
	Q(ctx context.Context, q string, args ...any) ([][]any, error)

	// QSync is the fast read-only variant, answered synchronously from
	// the in-memory database.
	QSync(q string, args ...any) ([][]any, error)

	// QBackend evaluates the query off-thread against the backend store,
	// keeping the UI thread free. Deferred.
	QBackend(ctx context.Context, q string, args ...any) ([][]any, error)
}

// Puller is the structured-fetch surface: hydrate one entity (or a batch)
// according to a pull pattern.
type Puller interface {
	// Pull hydrates the entity selected by id. Deferred.
	Pull(ctx context.Context, pattern PullPattern, id EntityID) (*PullResult, error)

	// PullSync is the fast read-only variant, answered synchronously.
	PullSync(pattern PullPattern, id EntityID) (*PullResult, error)

	// PullMany hydrates a batch of entities in one call. Deferred.
	PullMany(ctx context.Context, pattern PullPattern, ids []EntityID) ([]*PullResult, error)

	// PullManySync is the synchronous batch variant.
	PullManySync(pattern PullPattern, ids []EntityID) ([]*PullResult, error)
}

// WatchFn receives the snapshots surrounding a matching change: before is
// the entity as pulled prior to the change, after as pulled following it.
type WatchFn func(before, after *PullResult)

// PullWatcher registers change-notification callbacks. A watch is keyed
// by its (pattern, entity identifier) pair: removal must present the same
// pair that registered it.
type PullWatcher interface {
	AddPullWatch(ctx context.Context, pattern PullPattern, id EntityID, fn WatchFn) error
	RemovePullWatch(ctx context.Context, pattern PullPattern, id EntityID) error
}

// Reader aggregates the complete read surface.
type Reader interface {
	Querier
	Puller
	PullWatcher
}
