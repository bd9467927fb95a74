package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
)

// operatorService implements the OperatorUsecase interface.
type operatorService struct {
	saga         *submission
	operatorRepo repository.OperatorRepository
	mutator      service.EntityMutator
	pageSize     int
	logger       *slog.Logger
}

// NewOperatorUsecase is the constructor for operatorService.
func NewOperatorUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	operatorRepo repository.OperatorRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	pageSize int,
	logger *slog.Logger,
) usecase.OperatorUsecase {
	return &operatorService{
		saga:         newSubmission(resolver, addressRepo, publisher, logger),
		operatorRepo: operatorRepo,
		mutator:      mutator,
		pageSize:     pageSize,
		logger:       logger,
	}
}

func operatorSearchFields(o *entity.Operator) []string {
	return []string{o.FirstName, o.LastName, o.PhoneNumber, o.WorkingArea}
}

func operatorSortKey(o *entity.Operator, field string) string {
	switch field {
	case "last_name":
		return strings.ToLower(o.LastName)
	case "phone_number":
		return o.PhoneNumber
	case "working_area":
		return strings.ToLower(o.WorkingArea)
	case "created_at":
		return o.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	default:
		return strings.ToLower(o.FirstName)
	}
}

// List retrieves all operators and applies filter, sort and pagination
// in memory.
func (s *operatorService) List(ctx context.Context, opts usecase.ListOptions) (*listing.Page[*entity.Operator], error) {
	rows, err := s.operatorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list operators")
	}

	filtered := listing.Filter(rows, opts.Term, operatorSearchFields)
	sorted := listing.SortBy(filtered, opts.Direction, func(a, b *entity.Operator) bool {
		return operatorSortKey(a, opts.SortField) < operatorSortKey(b, opts.SortField)
	})
	page := listing.Paginate(sorted, opts.Page, s.pageSize)

	return &page, nil
}

// Get retrieves a single operator.
func (s *operatorService) Get(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	operator, err := s.operatorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("operator not found")
		}

		return nil, errors.Wrap(err, "failed to get operator")
	}

	return operator, nil
}

// Submit creates or updates an operator. The address is resolved locally
// first, then the privileged mutator performs the profile write; a newly
// created address is rolled back when the mutator fails.
func (s *operatorService) Submit(ctx context.Context, sess *entity.Session, input *usecase.OperatorSubmitInput) (*entity.Operator, error) {
	creating := input.ID == nil
	if creating && !sess.Capabilities().CanCreate {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators can create operators")
	}

	var existingAddressID *uuid.UUID
	if !creating {
		current, err := s.Get(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		existingAddressID = current.AddressID
	}

	var result *entity.Operator
	err := s.saga.run(ctx, sess, existingAddressID, &input.Address, func(addressID *uuid.UUID) error {
		profile := input.Profile
		profile.AddressID = addressID

		var mutErr error
		if creating {
			result, mutErr = s.mutator.CreateOperator(ctx, sess.AccessToken, &service.CreateOperatorPayload{
				Email:          input.Email,
				Password:       input.Password,
				OperatorFields: profile,
			})
		} else {
			result, mutErr = s.mutator.UpdateOperator(ctx, sess.AccessToken, &service.UpdateOperatorPayload{
				ID:             *input.ID,
				OperatorFields: profile,
			})
		}

		return mutErr
	})
	if err != nil {
		return nil, err
	}

	action := service.AuditActionUpdated
	if creating {
		action = service.AuditActionCreated
	}
	s.saga.audit(ctx, sess.UserID, "operator", result.ID, action)

	return result, nil
}

// Delete removes an operator through the privileged mutator.
func (s *operatorService) Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("delete requires an authenticated session")
	}
	if !sess.Capabilities().CanDelete {
		return domainerrors.ErrForbidden.WrapMessage("only administrators can delete operators")
	}

	if err := s.mutator.DeleteOperator(ctx, sess.AccessToken, id); err != nil {
		return err
	}

	s.saga.audit(ctx, sess.UserID, "operator", id, service.AuditActionDeleted)

	return nil
}
