package biz

import (
	"context"
	"errors"
	"fmt"

	"openmusic/cmd/access-service/internal/domain"
)

// AccessResolver decides whether an actor may act on a playlist. It holds no
// state of its own; it is a pure decision function over the ownership store
// and the collaboration registry.
//
// Precedence: existence failure always wins. A missing playlist resolves to
// NotFound even for an actor who is a collaborator elsewhere, and a failed
// collaboration lookup never masks it.
type AccessResolver struct {
	playlists      domain.PlaylistRepository
	collaborations domain.CollaborationRepository
}

// NewAccessResolver creates an AccessResolver.
func NewAccessResolver(playlists domain.PlaylistRepository, collaborations domain.CollaborationRepository) *AccessResolver {
	return &AccessResolver{
		playlists:      playlists,
		collaborations: collaborations,
	}
}

// Resolve returns the access decision for userID on playlistID. The error is
// non-nil only for store failures; absence outcomes are decisions, not
// errors.
func (r *AccessResolver) Resolve(ctx context.Context, playlistID, userID string) (domain.Decision, error) {
	owner, err := r.playlists.FindOwner(ctx, playlistID)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return domain.DecisionNotFound, nil
		}
		return domain.DecisionForbidden, fmt.Errorf("ownership lookup: %w", err)
	}

	if owner == userID {
		return domain.DecisionAuthorized, nil
	}

	member, err := r.collaborations.IsMember(ctx, playlistID, userID)
	if err != nil {
		return domain.DecisionForbidden, fmt.Errorf("collaboration lookup: %w", err)
	}
	if member {
		return domain.DecisionAuthorized, nil
	}

	return domain.DecisionForbidden, nil
}

// ResolveOwnerOnly decides access for operations reserved to the owner:
// adding or removing collaborators and deleting the playlist. It never
// consults the collaboration registry.
func (r *AccessResolver) ResolveOwnerOnly(ctx context.Context, playlistID, userID string) (domain.Decision, error) {
	owner, err := r.playlists.FindOwner(ctx, playlistID)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return domain.DecisionNotFound, nil
		}
		return domain.DecisionForbidden, fmt.Errorf("ownership lookup: %w", err)
	}

	if owner == userID {
		return domain.DecisionAuthorized, nil
	}

	return domain.DecisionForbidden, nil
}

// decisionErr translates a non-authorized decision into the error the
// calling transport layer maps to a response.
func decisionErr(d domain.Decision) error {
	switch d {
	case domain.DecisionAuthorized:
		return nil
	case domain.DecisionNotFound:
		return domain.ErrPlaylistNotFound
	default:
		return domain.ErrForbidden
	}
}
