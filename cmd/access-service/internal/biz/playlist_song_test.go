package biz

import (
	"context"
	"testing"
	"time"

	"openmusic/cmd/access-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type playlistFixture struct {
	uc         *PlaylistUsecase
	trail      *ActivityTrail
	playlists  *fakePlaylistRepo
	activities *fakeActivityRepo
}

func newPlaylistFixture() *playlistFixture {
	playlists := newFakePlaylistRepo()
	playlists.seed("playlist-abc", "user-1")

	collaborations := newFakeCollaborationRepo()
	_, _ = collaborations.Add(context.Background(), "playlist-abc", "user-2")

	songs := newFakeSongRepo("song-1", "song-2")
	activities := newFakeActivityRepo()

	resolver := NewAccessResolver(playlists, collaborations)
	trail := NewActivityTrail(activities, zap.NewNop())
	uc := NewPlaylistUsecase(resolver, playlists, songs, trail, zap.NewNop())

	return &playlistFixture{
		uc:         uc,
		trail:      trail,
		playlists:  playlists,
		activities: activities,
	}
}

func TestPlaylistUsecase_AddSong(t *testing.T) {
	ctx := context.Background()

	t.Run("collaborator adds a song and the trail records it", func(t *testing.T) {
		f := newPlaylistFixture()

		require.NoError(t, f.uc.AddSong(ctx, "playlist-abc", "user-2", "song-1"))

		history, err := f.uc.Activities(ctx, "playlist-abc", "user-1")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, domain.ActionAdd, history[0].Action)
		assert.Equal(t, "user-2", history[0].UserID)
		assert.Equal(t, "song-1", history[0].SongID)
		assert.False(t, history[0].Time.IsZero())
	})

	t.Run("stranger is forbidden, nothing committed or recorded", func(t *testing.T) {
		f := newPlaylistFixture()

		err := f.uc.AddSong(ctx, "playlist-abc", "user-3", "song-1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Empty(t, f.playlists.songs["playlist-abc"])
		assert.Empty(t, f.activities.records)
	})

	t.Run("missing playlist", func(t *testing.T) {
		f := newPlaylistFixture()

		err := f.uc.AddSong(ctx, "playlist-missing", "user-1", "song-1")
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})

	t.Run("unknown song", func(t *testing.T) {
		f := newPlaylistFixture()

		err := f.uc.AddSong(ctx, "playlist-abc", "user-1", "song-ghost")
		assert.ErrorIs(t, err, domain.ErrSongNotFound)
	})

	t.Run("audit failure never fails the committed mutation", func(t *testing.T) {
		f := newPlaylistFixture()
		f.activities.appendErr = errCacheDown

		require.NoError(t, f.uc.AddSong(ctx, "playlist-abc", "user-1", "song-1"))
		assert.Contains(t, f.playlists.songs["playlist-abc"], "song-1")
		assert.Empty(t, f.activities.records)
	})
}

func TestPlaylistUsecase_RemoveSong(t *testing.T) {
	ctx := context.Background()

	t.Run("remove records a delete action", func(t *testing.T) {
		f := newPlaylistFixture()

		require.NoError(t, f.uc.AddSong(ctx, "playlist-abc", "user-1", "song-1"))
		require.NoError(t, f.uc.RemoveSong(ctx, "playlist-abc", "user-2", "song-1"))

		history, err := f.uc.Activities(ctx, "playlist-abc", "user-1")
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, domain.ActionAdd, history[0].Action)
		assert.Equal(t, domain.ActionDelete, history[1].Action)
	})

	t.Run("song not in playlist", func(t *testing.T) {
		f := newPlaylistFixture()

		err := f.uc.RemoveSong(ctx, "playlist-abc", "user-1", "song-1")
		assert.ErrorIs(t, err, domain.ErrSongNotInPlaylist)
	})
}

func TestPlaylistUsecase_Activities_Ordering(t *testing.T) {
	ctx := context.Background()
	f := newPlaylistFixture()

	// Drive the trail clock so ties are real: two appends share a
	// timestamp and must come back in insertion order.
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Second), base.Add(time.Second)}
	idx := 0
	f.trail.now = func() time.Time {
		at := times[idx]
		idx++
		return at
	}

	require.NoError(t, f.uc.AddSong(ctx, "playlist-abc", "user-1", "song-1"))
	require.NoError(t, f.uc.AddSong(ctx, "playlist-abc", "user-1", "song-2"))
	require.NoError(t, f.uc.RemoveSong(ctx, "playlist-abc", "user-1", "song-2"))

	history, err := f.uc.Activities(ctx, "playlist-abc", "user-1")
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, "song-1", history[0].SongID)
	assert.Equal(t, "song-2", history[1].SongID)
	assert.Equal(t, domain.ActionAdd, history[1].Action)
	assert.Equal(t, domain.ActionDelete, history[2].Action)
	assert.True(t, !history[1].Time.Before(history[0].Time))
}

func TestPlaylistUsecase_Activities_AccessGate(t *testing.T) {
	ctx := context.Background()
	f := newPlaylistFixture()

	_, err := f.uc.Activities(ctx, "playlist-abc", "user-3")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Activities(ctx, "playlist-missing", "user-1")
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

func TestPlaylistUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		f := newPlaylistFixture()
		require.NoError(t, f.uc.Delete(ctx, "playlist-abc", "user-1"))

		err := f.uc.Delete(ctx, "playlist-abc", "user-1")
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})

	t.Run("collaborator cannot delete", func(t *testing.T) {
		f := newPlaylistFixture()
		err := f.uc.Delete(ctx, "playlist-abc", "user-2")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
