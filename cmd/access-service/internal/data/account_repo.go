package data

import (
	"context"
	"database/sql"
	"fmt"
)

// AccountRepo answers actor-existence checks against the users table, which
// the surrounding backend owns.
type AccountRepo struct {
	db *sql.DB
}

// NewAccountRepo creates an AccountRepo.
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Exists reports whether the account exists.
func (r *AccountRepo) Exists(ctx context.Context, userID string) (bool, error) {
	return existsByID(ctx, r.db, "users", userID)
}

// existsByID runs a presence check against table's id column. table must be
// one of the fixed names this package passes in; it is never user input.
func existsByID(ctx context.Context, db *sql.DB, table, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE id = $1`, table)

	var one int
	if err := db.QueryRowContext(ctx, query, id).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to query %s: %w", table, err)
	}

	return true, nil
}
