// README: Trip parameters, travel plan aggregate and error taxonomy.
package itinerary

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"wander/internal/types"
)

// DateFormat is the calendar-date form parameters are normalized to before storage.
const DateFormat = "2006-01-02"

var ErrBadRequest = errors.New("bad request")

// ParseError reports that a model response could not be reduced to a valid
// travel plan. It is retryable: resampling the model may yield better output.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "plan parse: " + e.Reason
}

// TerminalError reports that the retry budget is exhausted. It carries the
// attempt count and the last underlying failure.
type TerminalError struct {
	Attempts int
	Cause    error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("itinerary generation failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *TerminalError) Unwrap() error { return e.Cause }

// TripParameters is the user-supplied input to one generation request.
// Exactly one of Destination (resolved free-text place) or Category (abstract
// destination tag) is expected to be set; the caller picks the matching template.
type TripParameters struct {
	Destination   string
	Category      string
	StartDate     time.Time
	EndDate       time.Time
	Party         string // "Solo", "Couple", "Group" …
	PartySize     int    // headcount alternative; used when Party is empty
	Budget        string // "cheap", "average", "luxury" …
	Accommodation string
	ActivityLevel string
}

// Validate rejects parameters no generation can work with: a reversed date
// range or a request naming neither a destination nor a category.
func (p TripParameters) Validate() error {
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrBadRequest)
	}
	if p.Destination == "" && p.Category == "" {
		return fmt.Errorf("%w: destination or category required", ErrBadRequest)
	}
	return nil
}

// TotalDays is the inclusive day count between start and end; always >= 1
// for valid parameters.
func (p TripParameters) TotalDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// TotalNights is the number of nights between the dates (days-between).
func (p TripParameters) TotalNights() int {
	return p.TotalDays() - 1
}

// Traveler returns the party descriptor used in prompts: the label when one
// was chosen, otherwise the headcount.
func (p TripParameters) Traveler() string {
	if p.Party != "" {
		return p.Party
	}
	if p.PartySize > 0 {
		return strconv.Itoa(p.PartySize) + " people"
	}
	return ""
}

// TemplateVars builds the placeholder bag for prompt rendering. Numbers are
// stringified verbatim; empty fields render as empty strings.
func (p TripParameters) TemplateVars() map[string]string {
	return map[string]string{
		"location":      p.Destination,
		"category":      p.Category,
		"totalDays":     strconv.Itoa(p.TotalDays()),
		"totalNight":    strconv.Itoa(p.TotalNights()),
		"traveler":      p.Traveler(),
		"budget":        p.Budget,
		"accommodation": p.Accommodation,
		"activity":      p.ActivityLevel,
		"startDate":     p.StartDate.Format(DateFormat),
		"endDate":       p.EndDate.Format(DateFormat),
	}
}

// TravelPlan is the sanitized, parsed structured result of one generation.
type TravelPlan struct {
	Destination string    `json:"destination" firestore:"destination"`
	Budget      string    `json:"budget" firestore:"budget"`
	Flight      Flight    `json:"flight" firestore:"flight"`
	Hotels      []Hotel   `json:"hotels" firestore:"hotels"`
	Itinerary   []DayPlan `json:"itinerary" firestore:"itinerary"`
}

type Flight struct {
	Airline    string `json:"airline" firestore:"airline"`
	Price      string `json:"price" firestore:"price"`
	BookingURL string `json:"bookingUrl" firestore:"bookingUrl"`
}

type Hotel struct {
	Name          string         `json:"name" firestore:"name"`
	Address       string         `json:"address" firestore:"address"`
	PricePerNight string         `json:"pricePerNight" firestore:"pricePerNight"`
	Rating        float64        `json:"rating" firestore:"rating"`
	Coordinates   types.GeoPoint `json:"coordinates" firestore:"coordinates"`
	Description   string         `json:"description" firestore:"description"`
	BookingURL    string         `json:"bookingUrl" firestore:"bookingUrl"`
}

type DayPlan struct {
	Day    int     `json:"day" firestore:"day"`
	Places []Place `json:"places" firestore:"places"`
}

type Place struct {
	Name        string         `json:"name" firestore:"name"`
	Details     string         `json:"details" firestore:"details"`
	TicketPrice string         `json:"ticketPrice" firestore:"ticketPrice"`
	Coordinates types.GeoPoint `json:"coordinates" firestore:"coordinates"`
	URL         string         `json:"url" firestore:"url"`
}
