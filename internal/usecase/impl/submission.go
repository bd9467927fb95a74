package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// submission is the shared saga core of every entity create/update: resolve
// the address, invoke the privileged mutator, and on mutator failure issue a
// best-effort compensating delete of a newly created address. There is no
// cross-call transaction between the two steps; a crash in between leaves an
// orphaned address row, which is accepted and documented behavior.
type submission struct {
	resolver    usecase.AddressResolver
	addressRepo repository.AddressRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

func newSubmission(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) *submission {
	return &submission{
		resolver:    resolver,
		addressRepo: addressRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *submission) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// run executes one submission to completion. mutate receives the resolved
// address identifier and performs the remote entity write. The error surfaced
// to the caller is always the mutator's own failure, never a secondary
// rollback failure.
func (s *submission) run(ctx context.Context, sess *entity.Session, existingAddressID *uuid.UUID, addr *usecase.AddressInput, mutate func(addressID *uuid.UUID) error) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("submission requires an authenticated session")
	}

	addressID, wasCreated, err := s.resolver.Resolve(ctx, existingAddressID, addr, sess.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve address")
	}

	if err := mutate(addressID); err != nil {
		if wasCreated && addressID != nil {
			// Compensation is advisory only: no retry, and its own failure is
			// swallowed so the caller sees the root cause.
			if delErr := s.addressRepo.Delete(ctx, *addressID); delErr != nil {
				s.log(ctx).Error("Failed to roll back newly created address",
					slog.Any("addressID", *addressID),
					slog.Any("error", delErr),
				)
			} else {
				s.log(ctx).Info("Rolled back newly created address", slog.Any("addressID", *addressID))
			}
		}

		return err
	}

	return nil
}

// audit publishes an audit event for a completed mutation. Best-effort; a
// publish failure is logged and never fails the mutation.
func (s *submission) audit(ctx context.Context, actorID uuid.UUID, entityType string, entityID uuid.UUID, action string) {
	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ActorID:    actorID.String(),
		EntityType: entityType,
		EntityID:   entityID.String(),
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishAuditEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish audit event",
			slog.String("entityType", entityType),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}
