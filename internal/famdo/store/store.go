package store

import (
	"context"
	"errors"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface over the client's local state: the
// persisted session pair plus the replica of families, memberships and tasks
// the user knows about. Concrete drivers (sqlite) implement this. It exposes
// sub-repositories to keep concerns tidy and testable.
type Store interface {
	KV() KV
	Users() Users
	Families() Families
	Memberships() Memberships
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations that must be atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// KV is the durable key-value store holding the (token, identity) session
// pair. It is deliberately tiny: the session layer is its only client.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes or overwrites the value for key.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Users is a directory cache of identities seen in the current family,
// used to render member names without a round trip.
type Users interface {
	GetByID(ctx context.Context, id string) (domain.Identity, error)
	Upsert(ctx context.Context, u domain.Identity) error
}

type Families interface {
	// Create inserts a new family; the invitation code must be unique.
	Create(ctx context.Context, f domain.Family) error

	GetByID(ctx context.Context, id string) (domain.Family, error)

	// GetByInvitationCode looks a family up by its canonical (uppercase) code.
	GetByInvitationCode(ctx context.Context, code string) (domain.Family, error)
}

type Memberships interface {
	// Create inserts a membership. A second membership for the same user
	// fails with ErrAlreadyExists (single-family model).
	Create(ctx context.Context, m domain.Membership) error

	// GetByUser returns the user's membership, or ErrNotFound.
	GetByUser(ctx context.Context, userID string) (domain.Membership, error)

	ListByFamily(ctx context.Context, familyID string) ([]domain.Membership, error)
}

type Tasks interface {
	Create(ctx context.Context, t domain.Task) error
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Update(ctx context.Context, t domain.Task) error
	Delete(ctx context.Context, id string) error

	// List returns every task in the local replica. View construction
	// (filtering, ordering) is done by the caller.
	List(ctx context.Context) ([]domain.Task, error)

	ListByFamily(ctx context.Context, familyID string) ([]domain.Task, error)
}
