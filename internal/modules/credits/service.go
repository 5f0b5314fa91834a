package credits

import "context"

// CreditStore is the persistence surface the service needs.
type CreditStore interface {
	Consume(ctx context.Context, uid string) error
	EnsureUser(ctx context.Context, uid string) error
	Remaining(ctx context.Context, uid string) (int, error)
}

// Service orchestrates generation-credit logic.
type Service struct {
	store CreditStore
}

// NewService creates a Service backed by the given store.
func NewService(store CreditStore) *Service {
	return &Service{store: store}
}

// Consume deducts one credit from the user's monthly allowance. If the user
// row does not exist yet it is initialised and the credit is immediately
// consumed. Returns ErrExhausted when the allowance for the current month
// is spent.
func (s *Service) Consume(ctx context.Context, uid string) error {
	err := s.store.Consume(ctx, uid)
	if err != ErrExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, uid)
}

// Remaining reports the user's credits left this month.
func (s *Service) Remaining(ctx context.Context, uid string) (int, error) {
	return s.store.Remaining(ctx, uid)
}
