// README: Trip module tests (document construction, ownership checks).
package trips

import (
	"context"
	"errors"
	"testing"
	"time"

	"wander/internal/modules/itinerary"
)

func sampleParams(t *testing.T) itinerary.TripParameters {
	t.Helper()
	start, err := time.Parse(itinerary.DateFormat, "2026-04-10")
	if err != nil {
		t.Fatal(err)
	}
	return itinerary.TripParameters{
		Destination: "Paris, France",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Party:       "Couple",
		Budget:      "average",
	}
}

func TestNewTripNormalizesParameters(t *testing.T) {
	plan := &itinerary.TravelPlan{Destination: "Paris, France"}
	trip := NewTrip("a@b.c", plan, sampleParams(t))

	if trip.DocID == "" {
		t.Error("missing doc id")
	}
	if trip.UserEmail != "a@b.c" {
		t.Errorf("user email = %q", trip.UserEmail)
	}
	if trip.Data.StartDate != "2026-04-10" || trip.Data.EndDate != "2026-04-12" {
		t.Errorf("dates not normalized: %q / %q", trip.Data.StartDate, trip.Data.EndDate)
	}
	if trip.Data.TotalDays != 3 || trip.Data.TotalNights != 2 {
		t.Errorf("day counts = %d/%d", trip.Data.TotalDays, trip.Data.TotalNights)
	}
}

// Two generations must never share a document identifier: the collection is
// append-only and regeneration creates a new document.
func TestNewTripDistinctIDs(t *testing.T) {
	plan := &itinerary.TravelPlan{Destination: "Paris, France"}
	a := NewTrip("a@b.c", plan, sampleParams(t))
	b := NewTrip("a@b.c", plan, sampleParams(t))
	if a.DocID == b.DocID {
		t.Errorf("duplicate doc id %q", a.DocID)
	}
}

func TestSortNewestFirst(t *testing.T) {
	now := time.Now()
	ts := []*Trip{
		{DocID: "old", CreatedAt: now.Add(-2 * time.Hour)},
		{DocID: "new", CreatedAt: now},
		{DocID: "mid", CreatedAt: now.Add(-time.Hour)},
	}
	sortNewestFirst(ts)
	if ts[0].DocID != "new" || ts[1].DocID != "mid" || ts[2].DocID != "old" {
		t.Errorf("order = %s,%s,%s", ts[0].DocID, ts[1].DocID, ts[2].DocID)
	}
}

// memStore is an in-memory TripStore for service tests.
type memStore struct {
	trips map[string]*Trip
}

func newMemStore() *memStore { return &memStore{trips: map[string]*Trip{}} }

func (m *memStore) Get(_ context.Context, docID string) (*Trip, error) {
	t, ok := m.trips[docID]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (m *memStore) ListByUser(_ context.Context, email string) ([]*Trip, error) {
	var out []*Trip
	for _, t := range m.trips {
		if t.UserEmail == email {
			out = append(out, t)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *memStore) Delete(_ context.Context, docID string) error {
	delete(m.trips, docID)
	return nil
}

func (m *memStore) DeleteAllByUser(_ context.Context, email string) (int, error) {
	n := 0
	for id, t := range m.trips {
		if t.UserEmail == email {
			delete(m.trips, id)
			n++
		}
	}
	return n, nil
}

func TestServiceOwnershipChecks(t *testing.T) {
	store := newMemStore()
	store.trips["t1"] = &Trip{DocID: "t1", UserEmail: "owner@x.y"}
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "owner@x.y", "t1"); err != nil {
		t.Errorf("owner get: %v", err)
	}
	if _, err := svc.Get(ctx, "other@x.y", "t1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign get: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, "owner@x.y", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing get: expected ErrNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, "other@x.y", "t1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, "owner@x.y", "t1"); err != nil {
		t.Errorf("owner delete: %v", err)
	}
	if _, err := svc.Get(ctx, "owner@x.y", "t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted trip still readable: %v", err)
	}
}

func TestServiceDeleteAll(t *testing.T) {
	store := newMemStore()
	store.trips["t1"] = &Trip{DocID: "t1", UserEmail: "a@x.y"}
	store.trips["t2"] = &Trip{DocID: "t2", UserEmail: "a@x.y"}
	store.trips["t3"] = &Trip{DocID: "t3", UserEmail: "b@x.y"}
	svc := NewService(store)

	n, err := svc.DeleteAll(context.Background(), "a@x.y")
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}
	if left, _ := svc.List(context.Background(), "b@x.y"); len(left) != 1 {
		t.Errorf("other user's trips affected: %d left", len(left))
	}
}
