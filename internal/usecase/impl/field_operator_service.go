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

// fieldOperatorService implements the FieldOperatorUsecase interface.
type fieldOperatorService struct {
	saga              *submission
	fieldOperatorRepo repository.FieldOperatorRepository
	mutator           service.EntityMutator
	pageSize          int
	logger            *slog.Logger
}

// NewFieldOperatorUsecase is the constructor for fieldOperatorService.
func NewFieldOperatorUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	fieldOperatorRepo repository.FieldOperatorRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	pageSize int,
	logger *slog.Logger,
) usecase.FieldOperatorUsecase {
	return &fieldOperatorService{
		saga:              newSubmission(resolver, addressRepo, publisher, logger),
		fieldOperatorRepo: fieldOperatorRepo,
		mutator:           mutator,
		pageSize:          pageSize,
		logger:            logger,
	}
}

func fieldOperatorSearchFields(o *entity.FieldOperator) []string {
	return []string{o.FirstName, o.LastName, o.PhoneNumber, o.WorkingArea, o.Domain}
}

func fieldOperatorSortKey(o *entity.FieldOperator, field string) string {
	switch field {
	case "last_name":
		return strings.ToLower(o.LastName)
	case "phone_number":
		return o.PhoneNumber
	case "working_area":
		return strings.ToLower(o.WorkingArea)
	case "domain":
		return strings.ToLower(o.Domain)
	case "created_at":
		return o.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	default:
		return strings.ToLower(o.FirstName)
	}
}

// List retrieves all field operators and applies filter, sort and pagination
// in memory.
func (s *fieldOperatorService) List(ctx context.Context, opts usecase.ListOptions) (*listing.Page[*entity.FieldOperator], error) {
	rows, err := s.fieldOperatorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list field operators")
	}

	filtered := listing.Filter(rows, opts.Term, fieldOperatorSearchFields)
	sorted := listing.SortBy(filtered, opts.Direction, func(a, b *entity.FieldOperator) bool {
		return fieldOperatorSortKey(a, opts.SortField) < fieldOperatorSortKey(b, opts.SortField)
	})
	page := listing.Paginate(sorted, opts.Page, s.pageSize)

	return &page, nil
}

// Get retrieves a single field operator.
func (s *fieldOperatorService) Get(ctx context.Context, id uuid.UUID) (*entity.FieldOperator, error) {
	fieldOperator, err := s.fieldOperatorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFieldOperatorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("field operator not found")
		}

		return nil, errors.Wrap(err, "failed to get field operator")
	}

	return fieldOperator, nil
}

// Submit creates or updates a field operator with the same address saga as
// operators.
func (s *fieldOperatorService) Submit(ctx context.Context, sess *entity.Session, input *usecase.FieldOperatorSubmitInput) (*entity.FieldOperator, error) {
	creating := input.ID == nil
	if creating && !sess.Capabilities().CanCreate {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators can create field operators")
	}

	var existingAddressID *uuid.UUID
	if !creating {
		current, err := s.Get(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		existingAddressID = current.AddressID
	}

	var result *entity.FieldOperator
	err := s.saga.run(ctx, sess, existingAddressID, &input.Address, func(addressID *uuid.UUID) error {
		profile := input.Profile
		profile.AddressID = addressID

		var mutErr error
		if creating {
			result, mutErr = s.mutator.CreateFieldOperator(ctx, sess.AccessToken, &service.CreateFieldOperatorPayload{
				Email:               input.Email,
				Password:            input.Password,
				FieldOperatorFields: profile,
			})
		} else {
			result, mutErr = s.mutator.UpdateFieldOperator(ctx, sess.AccessToken, &service.UpdateFieldOperatorPayload{
				ID:                  *input.ID,
				FieldOperatorFields: profile,
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
	s.saga.audit(ctx, sess.UserID, "field_operator", result.ID, action)

	return result, nil
}

// Delete removes a field operator through the privileged mutator.
func (s *fieldOperatorService) Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("delete requires an authenticated session")
	}
	if !sess.Capabilities().CanDelete {
		return domainerrors.ErrForbidden.WrapMessage("only administrators can delete field operators")
	}

	if err := s.mutator.DeleteFieldOperator(ctx, sess.AccessToken, id); err != nil {
		return err
	}

	s.saga.audit(ctx, sess.UserID, "field_operator", id, service.AuditActionDeleted)

	return nil
}
