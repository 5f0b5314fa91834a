// README: Trip store backed by Firestore (user-scoped, append-only writes).
package trips

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wander/internal/modules/itinerary"
)

const tripsCollection = "trips"

type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Save writes a brand-new document for the finished plan and returns its
// identifier. Create (not Set) keeps the collection append-only: an identifier
// collision fails instead of silently overwriting an earlier trip.
func (s *Store) Save(ctx context.Context, userEmail string, plan *itinerary.TravelPlan, params itinerary.TripParameters) (string, error) {
	t := NewTrip(userEmail, plan, params)
	if _, err := s.client.Collection(tripsCollection).Doc(t.DocID).Create(ctx, t); err != nil {
		return "", fmt.Errorf("firestore create trip: %w", err)
	}
	return t.DocID, nil
}

func (s *Store) Get(ctx context.Context, docID string) (*Trip, error) {
	snap, err := s.client.Collection(tripsCollection).Doc(docID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("firestore get trip: %w", err)
	}
	var t Trip
	if err := snap.DataTo(&t); err != nil {
		return nil, fmt.Errorf("firestore decode trip: %w", err)
	}
	return &t, nil
}

// ListByUser returns all trips owned by email, newest first. Ordering happens
// client-side so the equality filter needs no composite index.
func (s *Store) ListByUser(ctx context.Context, email string) ([]*Trip, error) {
	iter := s.client.Collection(tripsCollection).Where("userEmail", "==", email).Documents(ctx)
	defer iter.Stop()

	var out []*Trip
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list trips: %w", err)
		}
		var t Trip
		if err := snap.DataTo(&t); err != nil {
			return nil, fmt.Errorf("firestore decode trip: %w", err)
		}
		out = append(out, &t)
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Store) Delete(ctx context.Context, docID string) error {
	if _, err := s.client.Collection(tripsCollection).Doc(docID).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete trip: %w", err)
	}
	return nil
}

// DeleteAllByUser removes every trip owned by email (account-deletion cascade)
// and reports how many documents were removed.
func (s *Store) DeleteAllByUser(ctx context.Context, email string) (int, error) {
	iter := s.client.Collection(tripsCollection).Where("userEmail", "==", email).Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("firestore list trips: %w", err)
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return deleted, fmt.Errorf("firestore delete trip %s: %w", snap.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}
