package impl

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

// userRoleService implements the UserRoleUsecase interface.
type userRoleService struct {
	identityRepo repository.IdentityRepository
	userRoleRepo repository.UserRoleRepository
	logger       *slog.Logger
}

// NewUserRoleUsecase is the constructor for userRoleService.
func NewUserRoleUsecase(
	identityRepo repository.IdentityRepository,
	userRoleRepo repository.UserRoleRepository,
	logger *slog.Logger,
) usecase.UserRoleUsecase {
	return &userRoleService{
		identityRepo: identityRepo,
		userRoleRepo: userRoleRepo,
		logger:       logger,
	}
}

// guard rejects role management from non-administrators.
func (s *userRoleService) guard(sess *entity.Session) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("role management requires an authenticated session")
	}
	if !sess.Capabilities().CanCreate {
		return domainerrors.ErrForbidden.WrapMessage("only administrators can manage roles")
	}

	return nil
}

// ListUsers returns every identity with its assigned roles. The two result
// sets are joined in memory; identities without roles still appear.
func (s *userRoleService) ListUsers(ctx context.Context, sess *entity.Session) ([]*entity.UserAccount, error) {
	if err := s.guard(sess); err != nil {
		return nil, err
	}

	identities, err := s.identityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list identities")
	}
	assignments, err := s.userRoleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role assignments")
	}

	rolesByUser := make(map[uuid.UUID]entity.Roles, len(identities))
	for _, assignment := range assignments {
		rolesByUser[assignment.UserID] = append(rolesByUser[assignment.UserID], assignment.Role)
	}

	accounts := make([]*entity.UserAccount, 0, len(identities))
	for _, identity := range identities {
		roles := rolesByUser[identity.ID]
		if roles == nil {
			roles = entity.Roles{}
		}
		accounts = append(accounts, &entity.UserAccount{
			ID:    identity.ID,
			Email: identity.Email,
			Roles: roles,
		})
	}

	return accounts, nil
}

// AssignRole grants a role to an identity.
func (s *userRoleService) AssignRole(ctx context.Context, sess *entity.Session, userID uuid.UUID, role entity.Role) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	if _, err := s.identityRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("identity not found")
		}

		return errors.Wrap(err, "failed to load identity")
	}

	userRole := &entity.UserRole{
		UserID:     userID,
		Role:       role,
		AssignedBy: sess.UserID,
		AssignedAt: time.Now().UTC(),
	}
	if err := s.userRoleRepo.Assign(ctx, userRole); err != nil {
		return errors.Wrap(err, "failed to assign role")
	}

	s.logger.InfoContext(ctx, "Role assigned",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
	)

	return nil
}

// RemoveRole revokes a role from an identity.
func (s *userRoleService) RemoveRole(ctx context.Context, sess *entity.Session, userID uuid.UUID, role entity.Role) error {
	if err := s.guard(sess); err != nil {
		return err
	}
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	if err := s.userRoleRepo.Remove(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrRoleNotAssigned) {
			return domainerrors.ErrNotFound.WrapMessage("role is not assigned to this identity")
		}

		return errors.Wrap(err, "failed to remove role")
	}

	s.logger.InfoContext(ctx, "Role removed",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
	)

	return nil
}
