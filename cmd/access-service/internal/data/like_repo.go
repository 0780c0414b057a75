package data

import (
	"context"
	"database/sql"
	"fmt"

	"openmusic/cmd/access-service/internal/domain"

	"github.com/google/uuid"
)

// LikeRepo is the Postgres source of truth for album likes. The unique
// (userId, albumId) constraint is the authoritative dedup; the cache layer
// above only ever holds a projection of this table.
type LikeRepo struct {
	db *sql.DB
}

// NewLikeRepo creates a LikeRepo.
func NewLikeRepo(db *sql.DB) *LikeRepo {
	return &LikeRepo{db: db}
}

// Add inserts a like row. A concurrent duplicate fails on the unique pair
// at insert time, not at the prior existence check.
func (r *LikeRepo) Add(ctx context.Context, userID, albumID string) (string, error) {
	id := fmt.Sprintf("user_album_likes-%s", uuid.NewString())

	query := `INSERT INTO user_album_likes (id, "userId", "albumId") VALUES ($1, $2, $3) RETURNING id`

	var inserted string
	if err := r.db.QueryRowContext(ctx, query, id, userID, albumID).Scan(&inserted); err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrAlreadyLiked
		}
		return "", fmt.Errorf("failed to insert like: %w", err)
	}

	return inserted, nil
}

// Remove deletes the like row for the (userID, albumID) pair.
func (r *LikeRepo) Remove(ctx context.Context, userID, albumID string) error {
	query := `DELETE FROM user_album_likes WHERE "userId" = $1 AND "albumId" = $2`

	result, err := r.db.ExecContext(ctx, query, userID, albumID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotLiked
	}

	return nil
}

// Count returns the authoritative like count for albumID.
func (r *LikeRepo) Count(ctx context.Context, albumID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_album_likes WHERE "albumId" = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, albumID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
