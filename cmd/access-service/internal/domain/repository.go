package domain

import (
	"context"
	"time"
)

// PlaylistRepository is the source of truth for playlist existence,
// ownership and song membership.
type PlaylistRepository interface {
	// Create inserts a playlist owned by ownerID and returns its id.
	Create(ctx context.Context, name, ownerID string) (string, error)

	// FindOwner returns the owner of playlistID, or ErrPlaylistNotFound.
	FindOwner(ctx context.Context, playlistID string) (string, error)

	// Delete removes playlistID, or ErrPlaylistNotFound.
	Delete(ctx context.Context, playlistID string) error

	// AddSong inserts a song membership row and returns its id.
	AddSong(ctx context.Context, playlistID, songID string) (string, error)

	// RemoveSong deletes a membership row, or ErrSongNotInPlaylist.
	RemoveSong(ctx context.Context, playlistID, songID string) error
}

// CollaborationRepository is the source of truth for delegated access pairs.
type CollaborationRepository interface {
	// Add inserts the pair and returns the new membership id.
	// ErrDuplicateCollaborator when the pair already exists.
	Add(ctx context.Context, playlistID, userID string) (string, error)

	// Remove deletes the pair, or ErrCollaborationNotFound.
	Remove(ctx context.Context, playlistID, userID string) error

	// IsMember reports whether the pair exists. Absence is false, not an
	// error.
	IsMember(ctx context.Context, playlistID, userID string) (bool, error)
}

// AccountDirectory answers whether an actor account exists.
type AccountDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// AlbumRepository exposes the album existence check the like path needs.
type AlbumRepository interface {
	Exists(ctx context.Context, albumID string) (bool, error)
}

// SongRepository exposes the song existence check the playlist path needs.
type SongRepository interface {
	Exists(ctx context.Context, songID string) (bool, error)
}

// LikeRepository is the source of truth for album likes. Uniqueness of
// (userID, albumID) is enforced by the store and is the dedup backstop for
// concurrent likes.
type LikeRepository interface {
	// Add inserts a like row, or ErrAlreadyLiked on the unique pair.
	Add(ctx context.Context, userID, albumID string) (string, error)

	// Remove deletes the like row, or ErrNotLiked.
	Remove(ctx context.Context, userID, albumID string) error

	// Count returns the authoritative like count for albumID.
	Count(ctx context.Context, albumID string) (int, error)
}

// ActivityRepository persists the append-only audit trail.
type ActivityRepository interface {
	// Append writes one record and returns its id. Records are never
	// updated or deleted.
	Append(ctx context.Context, playlistID, songID, userID string, action ActivityAction, at time.Time) (string, error)

	// ListByPlaylist returns a snapshot ordered by time ascending,
	// insertion order breaking ties.
	ListByPlaylist(ctx context.Context, playlistID string) ([]*Activity, error)
}
