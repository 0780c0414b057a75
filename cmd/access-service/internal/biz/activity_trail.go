package biz

import (
	"context"
	"time"

	"openmusic/cmd/access-service/internal/domain"

	"go.uber.org/zap"
)

// ActivityTrail is the append-only audit trail of playlist mutations. It
// assigns the timestamp itself at append time, so a single playlist's
// history orders consistently no matter which process appended.
type ActivityTrail struct {
	activities domain.ActivityRepository
	now        func() time.Time
	logger     *zap.Logger
}

// NewActivityTrail creates an ActivityTrail.
func NewActivityTrail(activities domain.ActivityRepository, logger *zap.Logger) *ActivityTrail {
	return &ActivityTrail{
		activities: activities,
		now:        time.Now,
		logger:     logger,
	}
}

// Append records one mutation. It must be called only after the mutation it
// describes has committed: the trail may miss an action if the append
// fails, but it never records one that did not happen.
func (t *ActivityTrail) Append(ctx context.Context, playlistID, songID, userID string, action domain.ActivityAction) (string, error) {
	return t.activities.Append(ctx, playlistID, songID, userID, action, t.now())
}

// AppendBestEffort is Append for callers whose mutation already committed:
// a failed append is logged and counted, never propagated.
func (t *ActivityTrail) AppendBestEffort(ctx context.Context, playlistID, songID, userID string, action domain.ActivityAction) {
	if _, err := t.Append(ctx, playlistID, songID, userID, action); err != nil {
		AuditAppendFailures.Inc()
		t.logger.Warn("Failed to append playlist activity",
			zap.String("playlist_id", playlistID),
			zap.String("song_id", songID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
	}
}

// ListFor returns a snapshot of playlistID's history, oldest first.
func (t *ActivityTrail) ListFor(ctx context.Context, playlistID string) ([]*domain.Activity, error) {
	return t.activities.ListByPlaylist(ctx, playlistID)
}
