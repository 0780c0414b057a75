package service

import (
	"context"

	"openmusic/cmd/access-service/internal/biz"
	"openmusic/cmd/access-service/internal/domain"
)

// AccessService is the facade the transport layer talks to. It groups the
// access-layer usecases behind one surface; error translation into HTTP
// responses happens outside this service.
type AccessService struct {
	resolver       *biz.AccessResolver
	collaborations *biz.CollaborationUsecase
	likes          *biz.AlbumLikeUsecase
	playlists      *biz.PlaylistUsecase
}

// NewAccessService creates an AccessService.
func NewAccessService(
	resolver *biz.AccessResolver,
	collaborations *biz.CollaborationUsecase,
	likes *biz.AlbumLikeUsecase,
	playlists *biz.PlaylistUsecase,
) *AccessService {
	return &AccessService{
		resolver:       resolver,
		collaborations: collaborations,
		likes:          likes,
		playlists:      playlists,
	}
}

// ResolveAccess decides whether userID may act on playlistID.
func (s *AccessService) ResolveAccess(ctx context.Context, playlistID, userID string) (domain.Decision, error) {
	return s.resolver.Resolve(ctx, playlistID, userID)
}

// ResolveOwner decides whether userID owns playlistID.
func (s *AccessService) ResolveOwner(ctx context.Context, playlistID, userID string) (domain.Decision, error) {
	return s.resolver.ResolveOwnerOnly(ctx, playlistID, userID)
}

// GrantCollaboration adds a collaborator on behalf of the owner.
func (s *AccessService) GrantCollaboration(ctx context.Context, playlistID, actorID, userID string) (string, error) {
	return s.collaborations.Grant(ctx, playlistID, actorID, userID)
}

// RevokeCollaboration removes a collaborator on behalf of the owner.
func (s *AccessService) RevokeCollaboration(ctx context.Context, playlistID, actorID, userID string) error {
	return s.collaborations.Revoke(ctx, playlistID, actorID, userID)
}

// GetAlbumLikes returns the like count for an album, cache-aside.
func (s *AccessService) GetAlbumLikes(ctx context.Context, albumID string) (domain.LikeCount, error) {
	return s.likes.GetLikes(ctx, albumID)
}

// LikeAlbum records a like.
func (s *AccessService) LikeAlbum(ctx context.Context, userID, albumID string) error {
	return s.likes.Like(ctx, userID, albumID)
}

// UnlikeAlbum removes a like.
func (s *AccessService) UnlikeAlbum(ctx context.Context, userID, albumID string) error {
	return s.likes.Unlike(ctx, userID, albumID)
}

// CreatePlaylist inserts a playlist owned by ownerID.
func (s *AccessService) CreatePlaylist(ctx context.Context, name, ownerID string) (string, error) {
	return s.playlists.Create(ctx, name, ownerID)
}

// DeletePlaylist removes a playlist, owner-only.
func (s *AccessService) DeletePlaylist(ctx context.Context, playlistID, actorID string) error {
	return s.playlists.Delete(ctx, playlistID, actorID)
}

// AddPlaylistSong adds a song to a playlist for an authorized actor.
func (s *AccessService) AddPlaylistSong(ctx context.Context, playlistID, actorID, songID string) error {
	return s.playlists.AddSong(ctx, playlistID, actorID, songID)
}

// RemovePlaylistSong removes a song from a playlist for an authorized actor.
func (s *AccessService) RemovePlaylistSong(ctx context.Context, playlistID, actorID, songID string) error {
	return s.playlists.RemoveSong(ctx, playlistID, actorID, songID)
}

// PlaylistActivities returns a playlist's audit history.
func (s *AccessService) PlaylistActivities(ctx context.Context, playlistID, actorID string) ([]*domain.Activity, error) {
	return s.playlists.Activities(ctx, playlistID, actorID)
}
