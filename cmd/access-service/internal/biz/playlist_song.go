package biz

import (
	"context"

	"openmusic/cmd/access-service/internal/domain"

	"go.uber.org/zap"
)

// PlaylistUsecase covers playlist lifecycle and song membership. Every
// entry point resolves access first; song mutations feed the audit trail
// after they commit.
type PlaylistUsecase struct {
	resolver  *AccessResolver
	playlists domain.PlaylistRepository
	songs     domain.SongRepository
	trail     *ActivityTrail
	logger    *zap.Logger
}

// NewPlaylistUsecase creates a PlaylistUsecase.
func NewPlaylistUsecase(
	resolver *AccessResolver,
	playlists domain.PlaylistRepository,
	songs domain.SongRepository,
	trail *ActivityTrail,
	logger *zap.Logger,
) *PlaylistUsecase {
	return &PlaylistUsecase{
		resolver:  resolver,
		playlists: playlists,
		songs:     songs,
		trail:     trail,
		logger:    logger,
	}
}

// Create inserts a playlist owned by ownerID. The owner is immutable from
// here on.
func (uc *PlaylistUsecase) Create(ctx context.Context, name, ownerID string) (string, error) {
	id, err := uc.playlists.Create(ctx, name, ownerID)
	if err != nil {
		return "", err
	}

	uc.logger.Info("Playlist created",
		zap.String("playlist_id", id),
		zap.String("owner", ownerID),
	)

	return id, nil
}

// Delete removes playlistID. Owner-only.
func (uc *PlaylistUsecase) Delete(ctx context.Context, playlistID, actorID string) error {
	decision, err := uc.resolver.ResolveOwnerOnly(ctx, playlistID, actorID)
	if err != nil {
		return err
	}
	if err := decisionErr(decision); err != nil {
		return err
	}

	return uc.playlists.Delete(ctx, playlistID)
}

// AddSong adds songID to playlistID on behalf of actorID, then records the
// action in the audit trail. The append happens only after the membership
// row committed and does not fail the call.
func (uc *PlaylistUsecase) AddSong(ctx context.Context, playlistID, actorID, songID string) error {
	decision, err := uc.resolver.Resolve(ctx, playlistID, actorID)
	if err != nil {
		return err
	}
	if err := decisionErr(decision); err != nil {
		return err
	}

	exists, err := uc.songs.Exists(ctx, songID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrSongNotFound
	}

	if _, err := uc.playlists.AddSong(ctx, playlistID, songID); err != nil {
		return err
	}

	uc.trail.AppendBestEffort(ctx, playlistID, songID, actorID, domain.ActionAdd)
	return nil
}

// RemoveSong removes songID from playlistID on behalf of actorID, then
// records the action in the audit trail.
func (uc *PlaylistUsecase) RemoveSong(ctx context.Context, playlistID, actorID, songID string) error {
	decision, err := uc.resolver.Resolve(ctx, playlistID, actorID)
	if err != nil {
		return err
	}
	if err := decisionErr(decision); err != nil {
		return err
	}

	if err := uc.playlists.RemoveSong(ctx, playlistID, songID); err != nil {
		return err
	}

	uc.trail.AppendBestEffort(ctx, playlistID, songID, actorID, domain.ActionDelete)
	return nil
}

// Activities returns playlistID's audit history for an authorized actor.
func (uc *PlaylistUsecase) Activities(ctx context.Context, playlistID, actorID string) ([]*domain.Activity, error) {
	decision, err := uc.resolver.Resolve(ctx, playlistID, actorID)
	if err != nil {
		return nil, err
	}
	if err := decisionErr(decision); err != nil {
		return nil, err
	}

	return uc.trail.ListFor(ctx, playlistID)
}
