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
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

// mutatorService implements the MutatorUsecase interface. Every operation
// runs inside one database transaction so an identity is never left behind
// without its role and profile rows, and vice versa.
type mutatorService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewMutatorUsecase is the constructor for mutatorService.
func NewMutatorUsecase(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.MutatorUsecase {
	return &mutatorService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *mutatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// provisionIdentity creates the identity and its role assignment. The role is
// self-assigned: assigned_by records the new identity itself, marking rows
// minted during provisioning.
func (s *mutatorService) provisionIdentity(ctx context.Context, factory repository.RepositoryFactory, email, password string, role entity.Role) (*entity.Identity, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	identity := &entity.Identity{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := factory.IdentityRepo().Create(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrIdentityExists) {
			return nil, domainerrors.ErrIdentityConflict.WrapMessage("email is already registered")
		}

		return nil, errors.Wrap(err, "failed to create identity")
	}

	userRole := &entity.UserRole{
		UserID:     identity.ID,
		Role:       role,
		AssignedBy: identity.ID,
		AssignedAt: time.Now().UTC(),
	}
	if err := factory.UserRoleRepo().Assign(ctx, userRole); err != nil {
		return nil, errors.Wrap(err, "failed to assign role")
	}

	return identity, nil
}

// teardownIdentity removes the role assignments and the identity itself, in
// that order. Called last during delete so login survives until every profile
// row referencing the identity is gone.
func (s *mutatorService) teardownIdentity(ctx context.Context, factory repository.RepositoryFactory, userID uuid.UUID) error {
	if err := factory.UserRoleRepo().DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete role assignments")
	}
	if err := factory.IdentityRepo().Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete identity")
	}

	return nil
}

// CreateOperator provisions an identity with the operator role and inserts
// the profile row, all in one transaction.
func (s *mutatorService) CreateOperator(ctx context.Context, payload *service.CreateOperatorPayload) (*entity.Operator, error) {
	var created *entity.Operator
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity, err := s.provisionIdentity(ctx, factory, payload.Email, payload.Password, entity.RoleOperator)
		if err != nil {
			return err
		}

		operator := &entity.Operator{
			ID:          uuid.New(),
			UserID:      identity.ID,
			FirstName:   payload.FirstName,
			LastName:    payload.LastName,
			PhoneNumber: payload.PhoneNumber,
			WorkingArea: payload.WorkingArea,
			DateOfBirth: payload.DateOfBirth,
			Description: payload.Description,
			AddressID:   payload.AddressID,
			CreatedBy:   identity.ID,
			UpdatedBy:   identity.ID,
		}
		if err := factory.OperatorRepo().Create(ctx, operator); err != nil {
			return errors.Wrap(err, "failed to create operator profile")
		}
		created = operator

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Created operator", slog.Any("operatorID", created.ID))

	return created, nil
}

// UpdateOperator modifies the profile fields of an existing operator.
func (s *mutatorService) UpdateOperator(ctx context.Context, payload *service.UpdateOperatorPayload) (*entity.Operator, error) {
	var updated *entity.Operator
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.OperatorRepo().FindByID(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, repository.ErrOperatorNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("operator not found")
			}

			return errors.Wrap(err, "failed to load operator")
		}

		current.FirstName = payload.FirstName
		current.LastName = payload.LastName
		current.PhoneNumber = payload.PhoneNumber
		current.WorkingArea = payload.WorkingArea
		current.DateOfBirth = payload.DateOfBirth
		current.Description = payload.Description
		current.AddressID = payload.AddressID
		current.UpdatedBy = current.UserID
		if err := factory.OperatorRepo().Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update operator profile")
		}
		updated = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteOperator removes the profile row, then the role assignments, then the
// identity, all in one transaction.
func (s *mutatorService) DeleteOperator(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.OperatorRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOperatorNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("operator not found")
			}

			return errors.Wrap(err, "failed to load operator")
		}

		if err := factory.OperatorRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete operator profile")
		}

		return s.teardownIdentity(ctx, factory, current.UserID)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Deleted operator", slog.Any("operatorID", id))

	return nil
}

// CreateFieldOperator provisions an identity with the field operator role and
// inserts the profile row, all in one transaction.
func (s *mutatorService) CreateFieldOperator(ctx context.Context, payload *service.CreateFieldOperatorPayload) (*entity.FieldOperator, error) {
	var created *entity.FieldOperator
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity, err := s.provisionIdentity(ctx, factory, payload.Email, payload.Password, entity.RoleFieldOperator)
		if err != nil {
			return err
		}

		fieldOperator := &entity.FieldOperator{
			ID:           uuid.New(),
			UserID:       identity.ID,
			FirstName:    payload.FirstName,
			LastName:     payload.LastName,
			PhoneNumber:  payload.PhoneNumber,
			WorkingArea:  payload.WorkingArea,
			DateOfBirth:  payload.DateOfBirth,
			Description:  payload.Description,
			ReferencedBy: payload.ReferencedBy,
			Domain:       payload.Domain,
			AddressID:    payload.AddressID,
			CreatedBy:    identity.ID,
			UpdatedBy:    identity.ID,
		}
		if err := factory.FieldOperatorRepo().Create(ctx, fieldOperator); err != nil {
			return errors.Wrap(err, "failed to create field operator profile")
		}
		created = fieldOperator

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Created field operator", slog.Any("fieldOperatorID", created.ID))

	return created, nil
}

// UpdateFieldOperator modifies the profile fields of an existing field operator.
func (s *mutatorService) UpdateFieldOperator(ctx context.Context, payload *service.UpdateFieldOperatorPayload) (*entity.FieldOperator, error) {
	var updated *entity.FieldOperator
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.FieldOperatorRepo().FindByID(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, repository.ErrFieldOperatorNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("field operator not found")
			}

			return errors.Wrap(err, "failed to load field operator")
		}

		current.FirstName = payload.FirstName
		current.LastName = payload.LastName
		current.PhoneNumber = payload.PhoneNumber
		current.WorkingArea = payload.WorkingArea
		current.DateOfBirth = payload.DateOfBirth
		current.Description = payload.Description
		current.ReferencedBy = payload.ReferencedBy
		current.Domain = payload.Domain
		current.AddressID = payload.AddressID
		current.UpdatedBy = current.UserID
		if err := factory.FieldOperatorRepo().Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update field operator profile")
		}
		updated = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteFieldOperator removes the profile row, then the role assignments,
// then the identity, all in one transaction.
func (s *mutatorService) DeleteFieldOperator(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.FieldOperatorRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrFieldOperatorNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("field operator not found")
			}

			return errors.Wrap(err, "failed to load field operator")
		}

		if err := factory.FieldOperatorRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete field operator profile")
		}

		return s.teardownIdentity(ctx, factory, current.UserID)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Deleted field operator", slog.Any("fieldOperatorID", id))

	return nil
}

// CreateServiceProvider provisions an identity with the service provider role,
// inserts the profile row and both join sets, all in one transaction.
func (s *mutatorService) CreateServiceProvider(ctx context.Context, payload *service.CreateServiceProviderPayload) (*entity.ServiceProvider, error) {
	var created *entity.ServiceProvider
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity, err := s.provisionIdentity(ctx, factory, payload.Email, payload.Password, entity.RoleServiceProvider)
		if err != nil {
			return err
		}

		provider := &entity.ServiceProvider{
			ID:                  uuid.New(),
			UserID:              identity.ID,
			FirstName:           payload.FirstName,
			LastName:            payload.LastName,
			PhoneNumber:         payload.PhoneNumber,
			WorkingAreaDiameter: payload.WorkingAreaDiameter,
			DateOfBirth:         payload.DateOfBirth,
			Description:         payload.Description,
			ReferencedBy:        payload.ReferencedBy,
			IsCompany:           payload.IsCompany,
			NumberOfEmployees:   payload.NumberOfEmployees,
			Status:              payload.Status,
			AddressID:           payload.AddressID,
			FileURL:             payload.FileURL,
			CreatedBy:           identity.ID,
			UpdatedBy:           identity.ID,
			ServiceTypeIDs:      payload.ServiceTypeIDs,
			WorkingAreaIDs:      payload.WorkingAreaIDs,
		}
		if err := factory.ProviderRepo().Create(ctx, provider); err != nil {
			return errors.Wrap(err, "failed to create service provider profile")
		}

		if err := factory.ProviderRepo().ReplaceServiceTypes(ctx, provider.ID, payload.ServiceTypeIDs, identity.ID); err != nil {
			return errors.Wrap(err, "failed to insert service type associations")
		}
		if err := factory.ProviderRepo().ReplaceWorkingAreas(ctx, provider.ID, payload.WorkingAreaIDs, identity.ID); err != nil {
			return errors.Wrap(err, "failed to insert working area associations")
		}
		created = provider

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Created service provider", slog.Any("providerID", created.ID))

	return created, nil
}

// UpdateServiceProvider modifies the profile fields and replaces both join
// sets wholesale. An empty set in the payload clears all associations.
func (s *mutatorService) UpdateServiceProvider(ctx context.Context, payload *service.UpdateServiceProviderPayload) (*entity.ServiceProvider, error) {
	var updated *entity.ServiceProvider
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.ProviderRepo().FindByID(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceProviderNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("service provider not found")
			}

			return errors.Wrap(err, "failed to load service provider")
		}

		current.FirstName = payload.FirstName
		current.LastName = payload.LastName
		current.PhoneNumber = payload.PhoneNumber
		current.WorkingAreaDiameter = payload.WorkingAreaDiameter
		current.DateOfBirth = payload.DateOfBirth
		current.Description = payload.Description
		current.ReferencedBy = payload.ReferencedBy
		current.IsCompany = payload.IsCompany
		current.NumberOfEmployees = payload.NumberOfEmployees
		current.Status = payload.Status
		current.AddressID = payload.AddressID
		current.FileURL = payload.FileURL
		current.UpdatedBy = current.UserID
		if err := factory.ProviderRepo().Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update service provider profile")
		}

		if err := factory.ProviderRepo().ReplaceServiceTypes(ctx, current.ID, payload.ServiceTypeIDs, current.UserID); err != nil {
			return errors.Wrap(err, "failed to replace service type associations")
		}
		if err := factory.ProviderRepo().ReplaceWorkingAreas(ctx, current.ID, payload.WorkingAreaIDs, current.UserID); err != nil {
			return errors.Wrap(err, "failed to replace working area associations")
		}
		current.ServiceTypeIDs = payload.ServiceTypeIDs
		current.WorkingAreaIDs = payload.WorkingAreaIDs
		updated = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteServiceProvider removes the join sets, the profile row, the role
// assignments and finally the identity, all in one transaction.
func (s *mutatorService) DeleteServiceProvider(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.ProviderRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrServiceProviderNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("service provider not found")
			}

			return errors.Wrap(err, "failed to load service provider")
		}

		if err := factory.ProviderRepo().DeleteServiceTypes(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete service type associations")
		}
		if err := factory.ProviderRepo().DeleteWorkingAreas(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete working area associations")
		}
		if err := factory.ProviderRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete service provider profile")
		}

		return s.teardownIdentity(ctx, factory, current.UserID)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Deleted service provider", slog.Any("providerID", id))

	return nil
}

// CreateStore provisions an identity with the store role and inserts the
// profile row, all in one transaction.
func (s *mutatorService) CreateStore(ctx context.Context, payload *service.CreateStorePayload) (*entity.Store, error) {
	var created *entity.Store
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity, err := s.provisionIdentity(ctx, factory, payload.Email, payload.Password, entity.RoleStore)
		if err != nil {
			return err
		}

		store := &entity.Store{
			ID:             uuid.New(),
			UserID:         identity.ID,
			Name:           payload.Name,
			OwnerFirstName: payload.OwnerFirstName,
			OwnerLastName:  payload.OwnerLastName,
			CategoryID:     payload.CategoryID,
			PhoneNumber:    payload.PhoneNumber,
			Description:    payload.Description,
			AddressID:      payload.AddressID,
			CreatedBy:      identity.ID,
			UpdatedBy:      identity.ID,
		}
		if err := factory.StoreRepo().Create(ctx, store); err != nil {
			return errors.Wrap(err, "failed to create store profile")
		}
		created = store

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Created store", slog.Any("storeID", created.ID))

	return created, nil
}

// UpdateStore modifies the profile fields of an existing store.
func (s *mutatorService) UpdateStore(ctx context.Context, payload *service.UpdateStorePayload) (*entity.Store, error) {
	var updated *entity.Store
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.StoreRepo().FindByID(ctx, payload.ID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("store not found")
			}

			return errors.Wrap(err, "failed to load store")
		}

		current.Name = payload.Name
		current.OwnerFirstName = payload.OwnerFirstName
		current.OwnerLastName = payload.OwnerLastName
		current.CategoryID = payload.CategoryID
		current.PhoneNumber = payload.PhoneNumber
		current.Description = payload.Description
		current.AddressID = payload.AddressID
		current.UpdatedBy = current.UserID
		if err := factory.StoreRepo().Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update store profile")
		}
		updated = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteStore removes the profile row, then the role assignments, then the
// identity, all in one transaction.
func (s *mutatorService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		current, err := factory.StoreRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("store not found")
			}

			return errors.Wrap(err, "failed to load store")
		}

		if err := factory.StoreRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete store profile")
		}

		return s.teardownIdentity(ctx, factory, current.UserID)
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Deleted store", slog.Any("storeID", id))

	return nil
}
