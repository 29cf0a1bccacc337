package sqlite

import "database/sql"

// txStore is a Store scoped to a single transaction. The embedded Store's
// querier is the *sql.Tx, so every repo call runs inside the transaction.
type txStore struct {
	Store
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }
