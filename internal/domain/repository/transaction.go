package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within one transaction: an error rolls everything back, nil commits.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the surrounding transaction.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
	AddressRepo() AddressRepository
	FoodPreferenceRepo() FoodPreferenceRepository
	PaymentRepo() PaymentRepository
}
