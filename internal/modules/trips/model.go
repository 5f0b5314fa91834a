// README: Persisted trip document and its construction from a finished generation.
package trips

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"wander/internal/modules/itinerary"
)

// Trip is the persisted document: the plan plus the originating parameters,
// written once under a generated identifier and never partially updated.
// Regeneration always creates a new document.
type Trip struct {
	DocID     string               `firestore:"docId" json:"doc_id"`
	UserEmail string               `firestore:"userEmail" json:"user_email"`
	Plan      itinerary.TravelPlan `firestore:"tripPlan" json:"trip_plan"`
	Data      TripData             `firestore:"tripData" json:"trip_data"`
	CreatedAt time.Time            `firestore:"createdAt" json:"created_at"`
}

// TripData is the normalized copy of the trip parameters stored alongside the
// plan; dates are fixed calendar-date strings.
type TripData struct {
	Destination   string `firestore:"destination" json:"destination"`
	Category      string `firestore:"category" json:"category"`
	StartDate     string `firestore:"startDate" json:"start_date"`
	EndDate       string `firestore:"endDate" json:"end_date"`
	TotalDays     int    `firestore:"totalDays" json:"total_days"`
	TotalNights   int    `firestore:"totalNights" json:"total_nights"`
	Traveler      string `firestore:"traveler" json:"traveler"`
	Budget        string `firestore:"budget" json:"budget"`
	Accommodation string `firestore:"accommodation" json:"accommodation"`
	ActivityLevel string `firestore:"activityLevel" json:"activity_level"`
}

// NewTrip builds the document for one successful generation with a fresh
// identifier and normalized parameters.
func NewTrip(userEmail string, plan *itinerary.TravelPlan, params itinerary.TripParameters) *Trip {
	return &Trip{
		DocID:     uuid.NewString(),
		UserEmail: userEmail,
		Plan:      *plan,
		Data: TripData{
			Destination:   params.Destination,
			Category:      params.Category,
			StartDate:     params.StartDate.Format(itinerary.DateFormat),
			EndDate:       params.EndDate.Format(itinerary.DateFormat),
			TotalDays:     params.TotalDays(),
			TotalNights:   params.TotalNights(),
			Traveler:      params.Traveler(),
			Budget:        params.Budget,
			Accommodation: params.Accommodation,
			ActivityLevel: params.ActivityLevel,
		},
		CreatedAt: time.Now().UTC(),
	}
}

// sortNewestFirst orders trips for listing, most recent generation first.
func sortNewestFirst(ts []*Trip) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].CreatedAt.After(ts[j].CreatedAt)
	})
}
