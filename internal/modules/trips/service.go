// README: Trip service; read/delete operations with ownership checks.
package trips

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("trip not found")
	ErrForbidden = errors.New("trip belongs to another user")
)

// TripStore is the persistence surface the service needs; implemented by the
// Firestore Store and by in-memory fakes in tests.
type TripStore interface {
	Get(ctx context.Context, docID string) (*Trip, error)
	ListByUser(ctx context.Context, email string) ([]*Trip, error)
	Delete(ctx context.Context, docID string) error
	DeleteAllByUser(ctx context.Context, email string) (int, error)
}

type Service struct {
	store TripStore
}

func NewService(store TripStore) *Service {
	return &Service{store: store}
}

// Get fetches one trip and verifies the caller owns it. A foreign trip is
// reported as ErrForbidden rather than leaked.
func (s *Service) Get(ctx context.Context, email, docID string) (*Trip, error) {
	t, err := s.store.Get(ctx, docID)
	if err != nil {
		return nil, err
	}
	if t.UserEmail != email {
		return nil, ErrForbidden
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, email string) ([]*Trip, error) {
	return s.store.ListByUser(ctx, email)
}

func (s *Service) Delete(ctx context.Context, email, docID string) error {
	t, err := s.store.Get(ctx, docID)
	if err != nil {
		return err
	}
	if t.UserEmail != email {
		return ErrForbidden
	}
	return s.store.Delete(ctx, docID)
}

// DeleteAll removes every trip the caller owns; used by account deletion.
func (s *Service) DeleteAll(ctx context.Context, email string) (int, error) {
	return s.store.DeleteAllByUser(ctx, email)
}
