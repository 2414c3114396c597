package store

import (
	"context"
	"errors"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnknownQuery is returned for a query identifier outside the
	// predefined analytics shapes.
	ErrUnknownQuery = errors.New("store: unknown query id")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep the per-table concerns tidy and let
// a Tx-scoped store expose the same surface.
type Store interface {
	Users() Users
	Layers() Layers
	Fragments() Fragments
	Ornaments() Ornaments
	Finds() Finds
	Analytics() Analytics

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. The underlying
	// connection is released either way.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Tx starts a transaction and returns a Tx-scoped Store. The caller MUST
	// Commit or Rollback. Prefer WithTx.
	Tx(ctx context.Context) (Tx, error)

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store scope.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// IsEmpty reports whether no user rows exist yet (seeding guard).
	IsEmpty(ctx context.Context) (bool, error)

	// CreateUser inserts a complete account row, credentials included. Only
	// the startup seeding path uses this; everyone else is invited.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used by the invite upsert (email is the identity key).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByInviteTokenHash resolves a pending invite by its stored digest.
	GetUserByInviteTokenHash(ctx context.Context, hash string) (domain.User, error)

	// CreateInvitedUser inserts a fresh row carrying only email + invite
	// fields and returns the assigned id.
	CreateInvitedUser(ctx context.Context, u domain.User) (int64, error)

	// RefreshInvite overwrites role and invite fields on an existing row and
	// deactivates it.
	RefreshInvite(ctx context.Context, id int64, role string, invitedAt time.Time, tokenHash string, expiresAt time.Time) error

	// FinalizeInvite activates the row and burns the token, but only if the
	// stored digest still matches the one the caller validated against.
	// Returns ErrNotFound when the guard fails (token already burned).
	FinalizeInvite(ctx context.Context, id int64, tokenHash, username, passwordHash string) error

	SetActive(ctx context.Context, id int64, active bool) error

	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Layers interface {
	GetLayer(ctx context.Context, id int64) (domain.Layer, error)
	CreateLayer(ctx context.Context, l domain.Layer) (int64, error)
	UpdateLayer(ctx context.Context, l domain.Layer) error
	DeleteLayer(ctx context.Context, id int64) error

	// ListLayers returns the newest layers, optionally narrowed by a
	// case-insensitive substring search across the location/name columns.
	ListLayers(ctx context.Context, q string, limit int) ([]domain.Layer, error)
}

type Fragments interface {
	GetFragment(ctx context.Context, id int64) (domain.Fragment, error)
	CreateFragment(ctx context.Context, f domain.Fragment) (int64, error)
	UpdateFragment(ctx context.Context, f domain.Fragment) error
	DeleteFragment(ctx context.Context, id int64) error
	ListFragments(ctx context.Context, q string, limit int) ([]domain.Fragment, error)
}

type Ornaments interface {
	GetOrnament(ctx context.Context, id int64) (domain.Ornament, error)
	CreateOrnament(ctx context.Context, o domain.Ornament) (int64, error)
	UpdateOrnament(ctx context.Context, o domain.Ornament) error
	DeleteOrnament(ctx context.Context, id int64) error
	ListOrnaments(ctx context.Context, q string, limit int) ([]domain.Ornament, error)
}

type Finds interface {
	GetFind(ctx context.Context, id int64) (domain.Find, error)
	CreateFind(ctx context.Context, f domain.Find) (int64, error)
	UpdateFind(ctx context.Context, f domain.Find) error
	DeleteFind(ctx context.Context, id int64) error
	ListFinds(ctx context.Context, q string, limit int) ([]domain.Find, error)
}

type Analytics interface {
	// Query runs one of the predefined join shapes with the whitelisted
	// filters applied, returning one page of flattened rows plus the full
	// filtered match count.
	Query(ctx context.Context, id domain.QueryID, f domain.AnalyticsFilter, limit, offset int) (domain.AnalyticsResult, error)
}
