package domain

import "time"

// ActivityAction tags what happened to a playlist song.
type ActivityAction string

const (
	ActionAdd    ActivityAction = "add"
	ActionDelete ActivityAction = "delete"
)

// Activity is one append-only audit record of a playlist mutation. Records
// are never updated or deleted once written; Time is assigned by the trail
// at append time, not by the caller.
type Activity struct {
	ID         string
	PlaylistID string
	SongID     string
	UserID     string
	Action     ActivityAction
	Time       time.Time
}
