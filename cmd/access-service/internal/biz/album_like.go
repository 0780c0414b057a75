package biz

import (
	"context"
	"strconv"
	"time"

	"openmusic/cmd/access-service/internal/domain"
	"openmusic/pkg/cache"

	"go.uber.org/zap"
)

// likeCacheKey namespaces the cached like aggregate per album.
func likeCacheKey(albumID string) string {
	return "likes:" + albumID
}

// AlbumLikeUsecase maintains album like counts with a cache-aside
// discipline. The like table is ground truth; the cache only ever holds a
// projection of it, repopulated on read miss and invalidated after every
// committed mutation.
type AlbumLikeUsecase struct {
	albums domain.AlbumRepository
	likes  domain.LikeRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewAlbumLikeUsecase creates an AlbumLikeUsecase. ttl bounds staleness
// when an invalidation is lost; zero selects the cache's default.
func NewAlbumLikeUsecase(albums domain.AlbumRepository, likes domain.LikeRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger) *AlbumLikeUsecase {
	return &AlbumLikeUsecase{
		albums: albums,
		likes:  likes,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// GetLikes returns the like count for albumID, served from cache when
// possible. A cache-store failure degrades to a source read and is never
// surfaced to the caller.
func (uc *AlbumLikeUsecase) GetLikes(ctx context.Context, albumID string) (domain.LikeCount, error) {
	key := likeCacheKey(albumID)

	val, ok, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		uc.logger.Warn("Like cache unavailable, serving from source",
			zap.String("album_id", albumID),
			zap.Error(err),
		)
		LikeCacheReadsTotal.WithLabelValues(cacheOutcomeDegraded).Inc()
	case ok:
		count, perr := strconv.Atoi(val)
		if perr == nil {
			LikeCacheReadsTotal.WithLabelValues(cacheOutcomeHit).Inc()
			return domain.LikeCount{Count: count, FromCache: true}, nil
		}
		// A malformed entry is treated as a miss and overwritten below.
		uc.logger.Warn("Malformed like cache entry",
			zap.String("key", key),
			zap.String("value", val),
		)
		LikeCacheReadsTotal.WithLabelValues(cacheOutcomeMiss).Inc()
	default:
		LikeCacheReadsTotal.WithLabelValues(cacheOutcomeMiss).Inc()
	}

	count, err := uc.likes.Count(ctx, albumID)
	if err != nil {
		return domain.LikeCount{}, err
	}

	if err := uc.cache.Set(ctx, key, strconv.Itoa(count), uc.ttl); err != nil {
		uc.logger.Warn("Failed to populate like cache",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	return domain.LikeCount{Count: count, FromCache: false}, nil
}

// Like records that userID likes albumID. The unique (user, album) pair at
// the store rejects a concurrent duplicate at insert time.
func (uc *AlbumLikeUsecase) Like(ctx context.Context, userID, albumID string) error {
	exists, err := uc.albums.Exists(ctx, albumID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrAlbumNotFound
	}

	if _, err := uc.likes.Add(ctx, userID, albumID); err != nil {
		return err
	}

	uc.invalidate(ctx, albumID)
	return nil
}

// Unlike removes userID's like of albumID.
func (uc *AlbumLikeUsecase) Unlike(ctx context.Context, userID, albumID string) error {
	if err := uc.likes.Remove(ctx, userID, albumID); err != nil {
		return err
	}

	uc.invalidate(ctx, albumID)
	return nil
}

// invalidate drops the cached count after the authoritative write has
// committed. Ordering matters: invalidating before commit would let a
// racing reader repopulate the cache with the pre-mutation value. Failure
// here leaves a stale entry until the TTL lands, so it is logged and
// counted but never returned.
func (uc *AlbumLikeUsecase) invalidate(ctx context.Context, albumID string) {
	key := likeCacheKey(albumID)
	if err := uc.cache.Delete(ctx, key); err != nil {
		LikeCacheInvalidationFailures.Inc()
		uc.logger.Warn("Failed to invalidate like cache",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
