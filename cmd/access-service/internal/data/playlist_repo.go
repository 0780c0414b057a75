package data

import (
	"context"
	"database/sql"
	"fmt"

	"openmusic/cmd/access-service/internal/domain"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// PlaylistRepo is the Postgres source of truth for playlist existence,
// ownership and song membership.
type PlaylistRepo struct {
	db *sql.DB
}

// NewPlaylistRepo creates a PlaylistRepo.
func NewPlaylistRepo(db *sql.DB) *PlaylistRepo {
	return &PlaylistRepo{db: db}
}

// Create inserts a playlist owned by ownerID.
func (r *PlaylistRepo) Create(ctx context.Context, name, ownerID string) (string, error) {
	id := fmt.Sprintf("playlist-%s", uuid.NewString())

	query := `INSERT INTO playlists (id, name, owner) VALUES ($1, $2, $3) RETURNING id`

	var inserted string
	if err := r.db.QueryRowContext(ctx, query, id, name, ownerID).Scan(&inserted); err != nil {
		return "", fmt.Errorf("%w: insert playlist: %v", domain.ErrInvariantViolation, err)
	}

	return inserted, nil
}

// FindOwner returns the owner of playlistID.
func (r *PlaylistRepo) FindOwner(ctx context.Context, playlistID string) (string, error) {
	query := `SELECT owner FROM playlists WHERE id = $1`

	var owner string
	if err := r.db.QueryRowContext(ctx, query, playlistID).Scan(&owner); err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrPlaylistNotFound
		}
		return "", fmt.Errorf("failed to query playlist owner: %w", err)
	}

	return owner, nil
}

// Delete removes playlistID. Collaborations, songs and activities go with
// it via the schema's cascades.
func (r *PlaylistRepo) Delete(ctx context.Context, playlistID string) error {
	query := `DELETE FROM playlists WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, playlistID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrPlaylistNotFound
	}

	return nil
}

// AddSong inserts a song membership row.
func (r *PlaylistRepo) AddSong(ctx context.Context, playlistID, songID string) (string, error) {
	id := fmt.Sprintf("playlist_song-%s", uuid.NewString())

	query := `INSERT INTO playlist_songs (id, "playlistId", "songId") VALUES ($1, $2, $3) RETURNING id`

	var inserted string
	if err := r.db.QueryRowContext(ctx, query, id, playlistID, songID).Scan(&inserted); err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrInvariantViolation
		}
		return "", fmt.Errorf("failed to add song to playlist: %w", err)
	}

	return inserted, nil
}

// RemoveSong deletes a membership row.
func (r *PlaylistRepo) RemoveSong(ctx context.Context, playlistID, songID string) error {
	query := `DELETE FROM playlist_songs WHERE "playlistId" = $1 AND "songId" = $2`

	result, err := r.db.ExecContext(ctx, query, playlistID, songID)
	if err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrSongNotInPlaylist
	}

	return nil
}
