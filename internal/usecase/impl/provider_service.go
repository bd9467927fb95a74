package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/geo"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/listing"

	"github.com/google/uuid"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	saga         *submission
	providerRepo repository.ServiceProviderRepository
	mutator      service.EntityMutator
	pageSize     int
	logger       *slog.Logger
}

// NewProviderUsecase is the constructor for providerService.
func NewProviderUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	providerRepo repository.ServiceProviderRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	pageSize int,
	logger *slog.Logger,
) usecase.ProviderUsecase {
	return &providerService{
		saga:         newSubmission(resolver, addressRepo, publisher, logger),
		providerRepo: providerRepo,
		mutator:      mutator,
		pageSize:     pageSize,
		logger:       logger,
	}
}

func providerSearchFields(p *entity.ServiceProvider) []string {
	kind := "individual"
	if p.IsCompany {
		kind = "company"
	}

	fields := []string{p.FirstName, p.LastName, p.PhoneNumber, p.Status.String(), kind}
	if p.Address != nil {
		fields = append(fields, p.Address.City)
	}
	for _, area := range p.WorkingAreas {
		fields = append(fields, area.Name)
	}

	return fields
}

func providerSortKey(p *entity.ServiceProvider, field string) string {
	switch field {
	case "last_name":
		return strings.ToLower(p.LastName)
	case "phone_number":
		return p.PhoneNumber
	case "status":
		return p.Status.String()
	case "number_of_employees":
		// Zero-padded so the string comparison orders numerically.
		return fmt.Sprintf("%09d", p.NumberOfEmployees)
	case "created_at":
		return p.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	default:
		return strings.ToLower(p.FirstName)
	}
}

// List retrieves all service providers and applies filter, sort and
// pagination in memory.
func (s *providerService) List(ctx context.Context, opts usecase.ListOptions) (*listing.Page[*entity.ServiceProvider], error) {
	rows, err := s.providerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service providers")
	}

	filtered := listing.Filter(rows, opts.Term, providerSearchFields)
	sorted := listing.SortBy(filtered, opts.Direction, func(a, b *entity.ServiceProvider) bool {
		return providerSortKey(a, opts.SortField) < providerSortKey(b, opts.SortField)
	})
	page := listing.Paginate(sorted, opts.Page, s.pageSize)

	return &page, nil
}

// Get retrieves a single service provider with its join sets.
func (s *providerService) Get(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	provider, err := s.providerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceProviderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("service provider not found")
		}

		return nil, errors.Wrap(err, "failed to get service provider")
	}

	return provider, nil
}

// Submit creates or updates a service provider. The join sets travel inside
// the payload and are replaced wholesale by the mutator.
func (s *providerService) Submit(ctx context.Context, sess *entity.Session, input *usecase.ProviderSubmitInput) (*entity.ServiceProvider, error) {
	creating := input.ID == nil
	if creating && !sess.Capabilities().CanCreate {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators can create service providers")
	}

	var existingAddressID *uuid.UUID
	if !creating {
		current, err := s.Get(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		existingAddressID = current.AddressID
	}

	var result *entity.ServiceProvider
	err := s.saga.run(ctx, sess, existingAddressID, &input.Address, func(addressID *uuid.UUID) error {
		profile := input.Profile
		profile.AddressID = addressID

		var mutErr error
		if creating {
			result, mutErr = s.mutator.CreateServiceProvider(ctx, sess.AccessToken, &service.CreateServiceProviderPayload{
				Email:                 input.Email,
				Password:              input.Password,
				ServiceProviderFields: profile,
			})
		} else {
			result, mutErr = s.mutator.UpdateServiceProvider(ctx, sess.AccessToken, &service.UpdateServiceProviderPayload{
				ID:                    *input.ID,
				ServiceProviderFields: profile,
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
	s.saga.audit(ctx, sess.UserID, "service_provider", result.ID, action)

	return result, nil
}

// Delete removes a service provider through the privileged mutator.
func (s *providerService) Delete(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if !sess.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("delete requires an authenticated session")
	}
	if !sess.Capabilities().CanDelete {
		return domainerrors.ErrForbidden.WrapMessage("only administrators can delete service providers")
	}

	if err := s.mutator.DeleteServiceProvider(ctx, sess.AccessToken, id); err != nil {
		return err
	}

	s.saga.audit(ctx, sess.UserID, "service_provider", id, service.AuditActionDeleted)

	return nil
}

// FindCovering returns active providers whose address coordinates place the
// given point inside their working area circle. Providers without a geocoded
// address never match.
func (s *providerService) FindCovering(ctx context.Context, lat, lng float64) ([]*entity.ServiceProvider, error) {
	rows, err := s.providerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service providers")
	}

	covering := make([]*entity.ServiceProvider, 0)
	for _, provider := range rows {
		if provider.Status != entity.ProviderStatusActive {
			continue
		}
		if provider.Address == nil || !provider.Address.HasCoordinates() {
			continue
		}
		if geo.WithinDiameter(*provider.Address.Latitude, *provider.Address.Longitude, lat, lng, provider.WorkingAreaDiameter) {
			covering = append(covering, provider)
		}
	}

	return covering, nil
}
