package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"openmusic/cmd/access-service/internal/domain"

	"github.com/google/uuid"
)

// activityTimeLayout is a fixed-width RFC 3339 encoding: nine fractional
// digits, always. The time column is TEXT and the history query orders
// lexicographically, so the encoding must sort the same way the instants
// do. RFC3339Nano would not: it strips trailing fractional zeros.
const activityTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ActivityRepo persists the append-only playlist audit trail.
type ActivityRepo struct {
	db *sql.DB
}

// NewActivityRepo creates an ActivityRepo.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Append writes one audit record. at is stored as fixed-width UTC text; the
// bigserial seq column keeps insertion order for equal timestamps.
func (r *ActivityRepo) Append(ctx context.Context, playlistID, songID, userID string, action domain.ActivityAction, at time.Time) (string, error) {
	id := fmt.Sprintf("playlist_song_activity-%s", uuid.NewString())

	query := `INSERT INTO playlist_song_activities (id, "playlistId", "songId", "userId", action, time)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var inserted string
	if err := r.db.QueryRowContext(ctx, query, id, playlistID, songID, userID, string(action), at.UTC().Format(activityTimeLayout)).Scan(&inserted); err != nil {
		return "", fmt.Errorf("failed to append activity: %w", err)
	}

	return inserted, nil
}

// ListByPlaylist returns a snapshot of the playlist's history ordered by
// time ascending, seq breaking ties.
func (r *ActivityRepo) ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.Activity, error) {
	query := `SELECT id, "playlistId", "songId", "userId", action, time
		FROM playlist_song_activities
		WHERE "playlistId" = $1
		ORDER BY time ASC, seq ASC`

	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		var (
			activity domain.Activity
			action   string
			rawTime  string
		)
		if err := rows.Scan(
			&activity.ID,
			&activity.PlaylistID,
			&activity.SongID,
			&activity.UserID,
			&action,
			&rawTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}

		activity.Action = domain.ActivityAction(action)

		activity.Time, err = parseActivityTime(rawTime)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", activity.ID, err)
		}

		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}

// parseActivityTime decodes a stored time column value. RFC3339Nano accepts
// the fixed-width layout, so rows written by older builds still parse.
func parseActivityTime(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse activity time %q: %w", raw, err)
	}
	return parsed, nil
}
