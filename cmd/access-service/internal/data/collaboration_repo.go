package data

import (
	"context"
	"database/sql"
	"fmt"

	"openmusic/cmd/access-service/internal/domain"

	"github.com/google/uuid"
)

// CollaborationRepo is the Postgres source of truth for delegated access
// pairs.
type CollaborationRepo struct {
	db *sql.DB
}

// NewCollaborationRepo creates a CollaborationRepo.
func NewCollaborationRepo(db *sql.DB) *CollaborationRepo {
	return &CollaborationRepo{db: db}
}

// Add inserts the (playlistID, userID) pair. The unique constraint on the
// pair catches concurrent duplicates the caller's checks cannot.
func (r *CollaborationRepo) Add(ctx context.Context, playlistID, userID string) (string, error) {
	id := fmt.Sprintf("collaboration-%s", uuid.NewString())

	query := `INSERT INTO collaborations (id, "playlistId", "userId") VALUES ($1, $2, $3) RETURNING id`

	var inserted string
	if err := r.db.QueryRowContext(ctx, query, id, playlistID, userID).Scan(&inserted); err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrDuplicateCollaborator
		}
		return "", fmt.Errorf("failed to add collaboration: %w", err)
	}

	return inserted, nil
}

// Remove deletes the (playlistID, userID) pair.
func (r *CollaborationRepo) Remove(ctx context.Context, playlistID, userID string) error {
	query := `DELETE FROM collaborations WHERE "playlistId" = $1 AND "userId" = $2`

	result, err := r.db.ExecContext(ctx, query, playlistID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove collaboration: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCollaborationNotFound
	}

	return nil
}

// IsMember reports whether the pair exists. An absent pair is a valid
// false, never an error.
func (r *CollaborationRepo) IsMember(ctx context.Context, playlistID, userID string) (bool, error) {
	query := `SELECT 1 FROM collaborations WHERE "playlistId" = $1 AND "userId" = $2`

	var one int
	if err := r.db.QueryRowContext(ctx, query, playlistID, userID).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to query collaboration: %w", err)
	}

	return true, nil
}
