package biz

import (
	"context"
	"fmt"

	"openmusic/cmd/access-service/internal/domain"

	"go.uber.org/zap"
)

// CollaborationUsecase manages delegated access to playlists. Only the
// owner may grant or revoke, and the owner is never stored as a
// collaborator: owner authorization is implicit.
type CollaborationUsecase struct {
	resolver       *AccessResolver
	collaborations domain.CollaborationRepository
	accounts       domain.AccountDirectory
	logger         *zap.Logger
}

// NewCollaborationUsecase creates a CollaborationUsecase.
func NewCollaborationUsecase(
	resolver *AccessResolver,
	collaborations domain.CollaborationRepository,
	accounts domain.AccountDirectory,
	logger *zap.Logger,
) *CollaborationUsecase {
	return &CollaborationUsecase{
		resolver:       resolver,
		collaborations: collaborations,
		accounts:       accounts,
		logger:         logger,
	}
}

// Grant adds userID as a collaborator on playlistID on behalf of actorID.
func (uc *CollaborationUsecase) Grant(ctx context.Context, playlistID, actorID, userID string) (string, error) {
	decision, err := uc.resolver.ResolveOwnerOnly(ctx, playlistID, actorID)
	if err != nil {
		return "", err
	}
	if err := decisionErr(decision); err != nil {
		return "", err
	}

	// actorID passed the owner-only gate, so actorID is the owner.
	if userID == actorID {
		return "", fmt.Errorf("%w: owner is implicitly authorized", domain.ErrInvariantViolation)
	}

	exists, err := uc.accounts.Exists(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("account lookup: %w", err)
	}
	if !exists {
		return "", domain.ErrInvalidActor
	}

	id, err := uc.collaborations.Add(ctx, playlistID, userID)
	if err != nil {
		return "", err
	}

	uc.logger.Info("Collaborator granted",
		zap.String("playlist_id", playlistID),
		zap.String("user_id", userID),
	)

	return id, nil
}

// Revoke removes userID as a collaborator on playlistID on behalf of
// actorID.
func (uc *CollaborationUsecase) Revoke(ctx context.Context, playlistID, actorID, userID string) error {
	decision, err := uc.resolver.ResolveOwnerOnly(ctx, playlistID, actorID)
	if err != nil {
		return err
	}
	if err := decisionErr(decision); err != nil {
		return err
	}

	if err := uc.collaborations.Remove(ctx, playlistID, userID); err != nil {
		return err
	}

	uc.logger.Info("Collaborator revoked",
		zap.String("playlist_id", playlistID),
		zap.String("user_id", userID),
	)

	return nil
}
