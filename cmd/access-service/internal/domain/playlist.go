package domain

// Playlist is the shared resource access is resolved against. The owner is
// fixed at creation and is always implicitly authorized.
type Playlist struct {
	ID      string
	Name    string
	OwnerID string
}

// Collaboration grants a non-owner delegated access to a playlist. The pair
// (PlaylistID, UserID) is unique and never contains the playlist owner.
type Collaboration struct {
	ID         string
	PlaylistID string
	UserID     string
}

// PlaylistSong is one song's membership in a playlist.
type PlaylistSong struct {
	ID         string
	PlaylistID string
	SongID     string
}

// Decision is the outcome of an access resolution.
type Decision int

const (
	// DecisionAuthorized means the actor may act on the playlist.
	DecisionAuthorized Decision = iota

	// DecisionNotFound means the playlist does not exist. It takes
	// precedence over any authorization outcome.
	DecisionNotFound

	// DecisionForbidden means the playlist exists but the actor is neither
	// its owner nor a collaborator.
	DecisionForbidden
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case DecisionAuthorized:
		return "authorized"
	case DecisionNotFound:
		return "not_found"
	case DecisionForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}
