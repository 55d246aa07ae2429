package repositories

import "context"

// UnitOfWork executes a function within a single transaction scope.
// Repositories participating in the transaction pick it up from the context.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
