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

// storeService implements the StoreUsecase interface.
type storeService struct {
	saga      *submission
	storeRepo repository.StoreRepository
	mutator   service.EntityMutator
	pageSize  int
	logger    *slog.Logger
}

// NewStoreUsecase is the constructor for storeService.
func NewStoreUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	storeRepo repository.StoreRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	pageSize int,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		saga:      newSubmission(resolver, addressRepo, publisher, logger),
		storeRepo: storeRepo,
		mutator:   mutator,
		pageSize:  pageSize,
		logger:    logger,
	}
}

func storeSearchFields(st *entity.Store) []string {
	fields := []string{st.Name, st.OwnerFirstName, st.OwnerLastName, st.PhoneNumber}
	if st.Category != nil {
		fields = append(fields, st.Category.Name)
	}

	return fields
}

func storeSortKey(st *entity.Store, field string) string {
	switch field {
	case "owner_first_name":
		return strings.ToLower(st.OwnerFirstName)
	case "owner_last_name":
		return strings.ToLower(st.OwnerLastName)
	case "phone_number":
		return st.PhoneNumber
	case "created_at":
		return st.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	default:
		return strings.ToLower(st.Name)
	}
}

// List retrieves all stores and applies filter, sort and pagination in memory.
func (s *storeService) List(ctx context.Context, opts usecase.ListOptions) (*listing.Page[*entity.Store], error) {
	rows, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	filtered := listing.Filter(rows, opts.Term, storeSearchFields)
	sorted := listing.SortBy(filtered, opts.Direction, func(a, b *entity.Store) bool {
		return storeSortKey(a, opts.SortField) < storeSortKey(b, opts.SortField)
	})
	page := listing.Paginate(sorted, opts.Page, s.pageSize)

	return &page, nil
}

// Get retrieves a single store.
func (s *storeService) Get(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("store not found")
		}

		return nil, errors.Wrap(err, "failed to get store")
	}

	return store, nil
}

// Submit creates or updates a store. A submission without address fields
// leaves the store's address identifier untouched, which on create means a
// null address.
func (s *storeService) Submit(ctx context.Context, sess *entity.Session, input *usecase.StoreSubmitInput) (*entity.Store, error) {
	creating := input.ID == nil
	if creating && !sess.Capabilities().CanCreate {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators can create stores")
	}

	var existingAddressID *uuid.UUID
	if !creating {
		current, err := s.Get(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		existingAddressID = current.AddressID
	}

	var result *entity.Store
	err := s.saga.run(ctx, sess, existingAddressID, &input.Address, func(addressID *uuid.UUID) error {
		profile := input.Profile
		profile.AddressID = addressID

		var mutErr error
		if creating {
			result, mutErr = s.mutator.CreateStore(ctx, sess.AccessToken, &service.CreateStorePayload{
				Email:       input.Email,
				Password:    input.Password,
				StoreFields: profile,
			})
		} else {
			result, mutErr = s.mutator.UpdateStore(ctx, sess.AccessToken, &service.UpdateStorePayload{
				ID:          *input.ID,
				StoreFields: profile,
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
	s.saga.audit(ctx, sess.UserID, "store", result.ID, action)

	return result, nil
}

// Delete removes a store through the privileged mutator.
func (s *storeService) Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("delete requires an authenticated session")
	}
	if !sess.Capabilities().CanDelete {
		return domainerrors.ErrForbidden.WrapMessage("only administrators can delete stores")
	}

	if err := s.mutator.DeleteStore(ctx, sess.AccessToken, id); err != nil {
		return err
	}

	s.saga.audit(ctx, sess.UserID, "store", id, service.AuditActionDeleted)

	return nil
}
