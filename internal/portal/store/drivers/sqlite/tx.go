package sqlite

import (
	"context"
	"database/sql"

	"github.com/gkrp/dataportal/internal/portal/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op inside a transaction; the connection is already live.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations are applied before any tx starts

func (t *txStore) Users() store.Users         { return &usersRepo{q: t.tx} }
func (t *txStore) Layers() store.Layers       { return &layersRepo{q: t.tx} }
func (t *txStore) Fragments() store.Fragments { return &fragmentsRepo{q: t.tx} }
func (t *txStore) Ornaments() store.Ornaments { return &ornamentsRepo{q: t.tx} }
func (t *txStore) Finds() store.Finds         { return &findsRepo{q: t.tx} }
func (t *txStore) Analytics() store.Analytics { return &analyticsRepo{q: t.tx} }
