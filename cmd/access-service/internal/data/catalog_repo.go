package data

import (
	"context"
	"database/sql"
)

// AlbumRepo answers album-existence checks for the like path.
type AlbumRepo struct {
	db *sql.DB
}

// NewAlbumRepo creates an AlbumRepo.
func NewAlbumRepo(db *sql.DB) *AlbumRepo {
	return &AlbumRepo{db: db}
}

// Exists reports whether the album exists.
func (r *AlbumRepo) Exists(ctx context.Context, albumID string) (bool, error) {
	return existsByID(ctx, r.db, "albums", albumID)
}

// SongRepo answers song-existence checks for the playlist path.
type SongRepo struct {
	db *sql.DB
}

// NewSongRepo creates a SongRepo.
func NewSongRepo(db *sql.DB) *SongRepo {
	return &SongRepo{db: db}
}

// Exists reports whether the song exists.
func (r *SongRepo) Exists(ctx context.Context, songID string) (bool, error) {
	return existsByID(ctx, r.db, "songs", songID)
}
