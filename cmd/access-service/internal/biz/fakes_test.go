package biz

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"openmusic/cmd/access-service/internal/domain"
)

// In-memory doubles for the domain repositories. They mirror the store
// contracts, including the uniqueness backstops the SQL schema enforces.

type fakePlaylistRepo struct {
	owners map[string]string            // playlistID -> ownerID
	songs  map[string]map[string]string // playlistID -> songID -> rowID
	nextID int
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{
		owners: make(map[string]string),
		songs:  make(map[string]map[string]string),
	}
}

func (f *fakePlaylistRepo) Create(_ context.Context, name, ownerID string) (string, error) {
	f.nextID++
	id := fmt.Sprintf("playlist-%d", f.nextID)
	f.owners[id] = ownerID
	f.songs[id] = make(map[string]string)
	return id, nil
}

func (f *fakePlaylistRepo) FindOwner(_ context.Context, playlistID string) (string, error) {
	owner, ok := f.owners[playlistID]
	if !ok {
		return "", domain.ErrPlaylistNotFound
	}
	return owner, nil
}

func (f *fakePlaylistRepo) Delete(_ context.Context, playlistID string) error {
	if _, ok := f.owners[playlistID]; !ok {
		return domain.ErrPlaylistNotFound
	}
	delete(f.owners, playlistID)
	delete(f.songs, playlistID)
	return nil
}

func (f *fakePlaylistRepo) AddSong(_ context.Context, playlistID, songID string) (string, error) {
	f.nextID++
	id := fmt.Sprintf("playlist_song-%d", f.nextID)
	if f.songs[playlistID] == nil {
		f.songs[playlistID] = make(map[string]string)
	}
	f.songs[playlistID][songID] = id
	return id, nil
}

func (f *fakePlaylistRepo) RemoveSong(_ context.Context, playlistID, songID string) error {
	if _, ok := f.songs[playlistID][songID]; !ok {
		return domain.ErrSongNotInPlaylist
	}
	delete(f.songs[playlistID], songID)
	return nil
}

// seed registers a playlist with a fixed id, bypassing Create.
func (f *fakePlaylistRepo) seed(playlistID, ownerID string) {
	f.owners[playlistID] = ownerID
	f.songs[playlistID] = make(map[string]string)
}

type fakeCollaborationRepo struct {
	members map[string]string // playlistID + "\x00" + userID -> rowID
	nextID  int
	isErr   error
}

func newFakeCollaborationRepo() *fakeCollaborationRepo {
	return &fakeCollaborationRepo{members: make(map[string]string)}
}

func pairKey(playlistID, userID string) string {
	return playlistID + "\x00" + userID
}

func (f *fakeCollaborationRepo) Add(_ context.Context, playlistID, userID string) (string, error) {
	key := pairKey(playlistID, userID)
	if _, ok := f.members[key]; ok {
		return "", domain.ErrDuplicateCollaborator
	}
	f.nextID++
	id := fmt.Sprintf("collaboration-%d", f.nextID)
	f.members[key] = id
	return id, nil
}

func (f *fakeCollaborationRepo) Remove(_ context.Context, playlistID, userID string) error {
	key := pairKey(playlistID, userID)
	if _, ok := f.members[key]; !ok {
		return domain.ErrCollaborationNotFound
	}
	delete(f.members, key)
	return nil
}

func (f *fakeCollaborationRepo) IsMember(_ context.Context, playlistID, userID string) (bool, error) {
	if f.isErr != nil {
		return false, f.isErr
	}
	_, ok := f.members[pairKey(playlistID, userID)]
	return ok, nil
}

type fakeDirectory struct {
	users map[string]bool
}

func newFakeDirectory(users ...string) *fakeDirectory {
	d := &fakeDirectory{users: make(map[string]bool)}
	for _, u := range users {
		d.users[u] = true
	}
	return d
}

func (f *fakeDirectory) Exists(_ context.Context, userID string) (bool, error) {
	return f.users[userID], nil
}

type fakeAlbumRepo struct {
	albums map[string]bool
}

func newFakeAlbumRepo(albums ...string) *fakeAlbumRepo {
	r := &fakeAlbumRepo{albums: make(map[string]bool)}
	for _, a := range albums {
		r.albums[a] = true
	}
	return r
}

func (f *fakeAlbumRepo) Exists(_ context.Context, albumID string) (bool, error) {
	return f.albums[albumID], nil
}

type fakeSongRepo struct {
	songs map[string]bool
}

func newFakeSongRepo(songs ...string) *fakeSongRepo {
	r := &fakeSongRepo{songs: make(map[string]bool)}
	for _, s := range songs {
		r.songs[s] = true
	}
	return r
}

func (f *fakeSongRepo) Exists(_ context.Context, songID string) (bool, error) {
	return f.songs[songID], nil
}

type fakeLikeRepo struct {
	likes  map[string]string // userID + "\x00" + albumID -> rowID
	nextID int
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]string)}
}

func (f *fakeLikeRepo) Add(_ context.Context, userID, albumID string) (string, error) {
	key := pairKey(userID, albumID)
	if _, ok := f.likes[key]; ok {
		return "", domain.ErrAlreadyLiked
	}
	f.nextID++
	id := fmt.Sprintf("user_album_likes-%d", f.nextID)
	f.likes[key] = id
	return id, nil
}

func (f *fakeLikeRepo) Remove(_ context.Context, userID, albumID string) error {
	key := pairKey(userID, albumID)
	if _, ok := f.likes[key]; !ok {
		return domain.ErrNotLiked
	}
	delete(f.likes, key)
	return nil
}

func (f *fakeLikeRepo) Count(_ context.Context, albumID string) (int, error) {
	count := 0
	suffix := "\x00" + albumID
	for key := range f.likes {
		if len(key) >= len(suffix) && key[len(key)-len(suffix):] == suffix {
			count++
		}
	}
	return count, nil
}

type fakeActivityRepo struct {
	records   []*domain.Activity
	nextID    int
	appendErr error
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (f *fakeActivityRepo) Append(_ context.Context, playlistID, songID, userID string, action domain.ActivityAction, at time.Time) (string, error) {
	if f.appendErr != nil {
		return "", f.appendErr
	}
	f.nextID++
	id := fmt.Sprintf("playlist_song_activity-%d", f.nextID)
	f.records = append(f.records, &domain.Activity{
		ID:         id,
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       at,
	})
	return id, nil
}

func (f *fakeActivityRepo) ListByPlaylist(_ context.Context, playlistID string) ([]*domain.Activity, error) {
	out := make([]*domain.Activity, 0)
	for _, r := range f.records {
		if r.PlaylistID == playlistID {
			out = append(out, r)
		}
	}
	// Stable sort keeps insertion order for equal timestamps, matching the
	// store's (time, seq) ordering.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out, nil
}

var errCacheDown = errors.New("cache store unreachable")

type fakeCache struct {
	entries map[string]string
	// failure switches per operation, to simulate a cache-store outage on
	// specific paths.
	failGet    bool
	failSet    bool
	failDelete bool

	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errCacheDown
	}
	val, ok := f.entries[key]
	return val, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if f.failSet {
		return errCacheDown
	}
	f.sets++
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	if f.failDelete {
		return errCacheDown
	}
	f.deletes++
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Close() error { return nil }
