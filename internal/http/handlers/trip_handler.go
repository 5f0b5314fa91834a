// README: Trip handlers: generation, listing, detail, deletion, credits.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wander/internal/http/middleware"
	"wander/internal/modules/itinerary"
	"wander/internal/modules/trips"
)

// generationTimeout bounds one full generation including backoff waits.
const generationTimeout = 2 * time.Minute

// Generator runs the itinerary generation pipeline.
type Generator interface {
	Generate(ctx context.Context, userEmail string, params itinerary.TripParameters, kind itinerary.TemplateKind) (*itinerary.Result, error)
}

// TripReader serves saved-trip reads and deletes.
type TripReader interface {
	Get(ctx context.Context, email, docID string) (*trips.Trip, error)
	List(ctx context.Context, email string) ([]*trips.Trip, error)
	Delete(ctx context.Context, email, docID string) error
	DeleteAll(ctx context.Context, email string) (int, error)
}

// CreditManager guards generations with the monthly allowance.
type CreditManager interface {
	Consume(ctx context.Context, uid string) error
	Remaining(ctx context.Context, uid string) (int, error)
}

type TripHandler struct {
	generator Generator
	trips     TripReader
	credits   CreditManager
}

func NewTripHandler(generator Generator, tripSvc TripReader, creditSvc CreditManager) *TripHandler {
	return &TripHandler{generator: generator, trips: tripSvc, credits: creditSvc}
}

type generateTripReq struct {
	Destination   string `json:"destination"`
	Category      string `json:"category"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Party         string `json:"party"`
	PartySize     int    `json:"party_size"`
	Budget        string `json:"budget"`
	Accommodation string `json:"accommodation"`
	ActivityLevel string `json:"activity_level"`
}

// Generate handles POST /api/trips.
func (h *TripHandler) Generate(c *gin.Context) {
	var req generateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	start, err := time.Parse(itinerary.DateFormat, req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid start_date, want YYYY-MM-DD")
		return
	}
	end, err := time.Parse(itinerary.DateFormat, req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid end_date, want YYYY-MM-DD")
		return
	}

	// Template choice belongs to the caller-facing layer: a concrete place
	// uses the free-text template, otherwise the category one.
	kind := itinerary.TemplateFreeText
	if req.Destination == "" {
		if req.Category == "" {
			writeError(c, http.StatusBadRequest, "destination or category required")
			return
		}
		kind = itinerary.TemplateCategory
	}

	params := itinerary.TripParameters{
		Destination:   req.Destination,
		Category:      req.Category,
		StartDate:     start,
		EndDate:       end,
		Party:         req.Party,
		PartySize:     req.PartySize,
		Budget:        req.Budget,
		Accommodation: req.Accommodation,
		ActivityLevel: req.ActivityLevel,
	}
	if err := params.Validate(); err != nil {
		writeTripError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationTimeout)
	defer cancel()

	if err := h.credits.Consume(ctx, middleware.CallerUID(c)); err != nil {
		writeTripError(c, err)
		return
	}

	res, err := h.generator.Generate(ctx, middleware.CallerEmail(c), params, kind)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, res)
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	ts, err := h.trips.List(c.Request.Context(), middleware.CallerEmail(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	if ts == nil {
		ts = []*trips.Trip{}
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": ts})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	t, err := h.trips.Get(c.Request.Context(), middleware.CallerEmail(c), c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), middleware.CallerEmail(c), c.Param("id")); err != nil {
		writeTripError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/trips (account deletion cascade).
func (h *TripHandler) DeleteAll(c *gin.Context) {
	n, err := h.trips.DeleteAll(c.Request.Context(), middleware.CallerEmail(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": n})
}

// Credits handles GET /api/credits.
func (h *TripHandler) Credits(c *gin.Context) {
	n, err := h.credits.Remaining(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"remaining": n})
}
