package repository

import "context"

// TransactionManager runs use-case steps atomically without exposing the
// storage driver to the use-case layer.
type TransactionManager interface {
	// Execute runs fn in one transaction. A non-nil error from fn rolls back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository

	NewAuthRepository() AuthRepository

	NewPasswordResetRepository() PasswordResetRepository
}
