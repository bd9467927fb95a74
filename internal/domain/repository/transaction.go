package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so all operations within a transaction share one connection.
type RepositoryFactory interface {
	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// IdentityRepo returns an IdentityRepository bound to the current transaction.
	IdentityRepo() IdentityRepository

	// UserRoleRepo returns a UserRoleRepository bound to the current transaction.
	UserRoleRepo() UserRoleRepository

	// OperatorRepo returns an OperatorRepository bound to the current transaction.
	OperatorRepo() OperatorRepository

	// FieldOperatorRepo returns a FieldOperatorRepository bound to the current transaction.
	FieldOperatorRepo() FieldOperatorRepository

	// ProviderRepo returns a ServiceProviderRepository bound to the current transaction.
	ProviderRepo() ServiceProviderRepository

	// StoreRepo returns a StoreRepository bound to the current transaction.
	StoreRepo() StoreRepository
}
