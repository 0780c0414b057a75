package domain

import "errors"

var (
	// ErrPlaylistNotFound the playlist does not exist.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrAlbumNotFound the album does not exist.
	ErrAlbumNotFound = errors.New("album not found")

	// ErrSongNotFound the song does not exist.
	ErrSongNotFound = errors.New("song not found")

	// ErrForbidden actor lacks rights on an existing resource. Never
	// substituted for a not-found outcome.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidActor the referenced account does not exist.
	ErrInvalidActor = errors.New("actor account not found")

	// ErrDuplicateCollaborator the (playlist, user) pair already exists.
	ErrDuplicateCollaborator = errors.New("collaborator already added")

	// ErrCollaborationNotFound no such (playlist, user) pair to remove.
	ErrCollaborationNotFound = errors.New("collaboration not found")

	// ErrAlreadyLiked the (user, album) like pair already exists.
	ErrAlreadyLiked = errors.New("album already liked")

	// ErrNotLiked no like to remove for the (user, album) pair.
	ErrNotLiked = errors.New("album not liked")

	// ErrSongNotInPlaylist the song is not a member of the playlist.
	ErrSongNotInPlaylist = errors.New("song not in playlist")

	// ErrInvariantViolation a required insert or uniqueness guarantee
	// failed at the store.
	ErrInvariantViolation = errors.New("invariant violation")
)
