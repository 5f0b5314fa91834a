// README: Trip handler tests (request validation, error mapping, credit guard).
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"wander/internal/http/handlers"
	httpmiddleware "wander/internal/http/middleware"
	"wander/internal/infra"
	"wander/internal/modules/credits"
	"wander/internal/modules/itinerary"
	"wander/internal/modules/trips"
)

type stubTokenVerifier struct {
	token *infra.FirebaseToken
}

func (s *stubTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	return s.token, nil
}

type stubGenerator struct {
	res   *itinerary.Result
	err   error
	calls int
	email string
}

func (s *stubGenerator) Generate(_ context.Context, userEmail string, _ itinerary.TripParameters, _ itinerary.TemplateKind) (*itinerary.Result, error) {
	s.calls++
	s.email = userEmail
	return s.res, s.err
}

type stubTrips struct {
	trip *trips.Trip
	err  error
}

func (s *stubTrips) Get(_ context.Context, _, _ string) (*trips.Trip, error) {
	return s.trip, s.err
}
func (s *stubTrips) List(_ context.Context, _ string) ([]*trips.Trip, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.trip == nil {
		return nil, nil
	}
	return []*trips.Trip{s.trip}, nil
}
func (s *stubTrips) Delete(_ context.Context, _, _ string) error        { return s.err }
func (s *stubTrips) DeleteAll(_ context.Context, _ string) (int, error) { return 2, s.err }

type stubCredits struct {
	consumeErr error
	remaining  int
}

func (s *stubCredits) Consume(_ context.Context, _ string) error          { return s.consumeErr }
func (s *stubCredits) Remaining(_ context.Context, _ string) (int, error) { return s.remaining, nil }

func buildRouter(gen *stubGenerator, tr *stubTrips, cr *stubCredits) *gin.Engine {
	gin.SetMode(gin.TestMode)
	verifier := &stubTokenVerifier{token: &infra.FirebaseToken{
		UID:    "u1",
		Claims: map[string]interface{}{"email": "u1@example.com"},
	}}
	h := handlers.NewTripHandler(gen, tr, cr)
	r := gin.New()
	api := r.Group("/api", httpmiddleware.Auth(verifier))
	api.POST("/trips", h.Generate)
	api.GET("/trips", h.List)
	api.GET("/trips/:id", h.Get)
	api.DELETE("/trips/:id", h.Delete)
	api.DELETE("/trips", h.DeleteAll)
	api.GET("/credits", h.Credits)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"destination": "Paris, France",
		"start_date":  "2026-04-10",
		"end_date":    "2026-04-12",
		"party":       "Couple",
		"budget":      "average",
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{res: &itinerary.Result{DocID: "d1", Plan: &itinerary.TravelPlan{Destination: "Paris, France"}}}
	w := doJSON(buildRouter(gen, &stubTrips{}, &stubCredits{}), http.MethodPost, "/api/trips", validBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}
	if gen.email != "u1@example.com" {
		t.Errorf("generator called with email %q", gen.email)
	}
	var res struct {
		DocID string `json:"doc_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.DocID != "d1" {
		t.Errorf("body = %s", w.Body)
	}
}

func TestGenerate_BadDates(t *testing.T) {
	body := validBody()
	body["start_date"] = "04/10/2026"
	w := doJSON(buildRouter(&stubGenerator{}, &stubTrips{}, &stubCredits{}), http.MethodPost, "/api/trips", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_MissingDestinationAndCategory(t *testing.T) {
	body := validBody()
	delete(body, "destination")
	w := doJSON(buildRouter(&stubGenerator{}, &stubTrips{}, &stubCredits{}), http.MethodPost, "/api/trips", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_CreditExhausted(t *testing.T) {
	gen := &stubGenerator{}
	cr := &stubCredits{consumeErr: credits.ErrExhausted}
	w := doJSON(buildRouter(gen, &stubTrips{}, cr), http.MethodPost, "/api/trips", validBody())
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
	if gen.calls != 0 {
		t.Errorf("generator must not run without a credit")
	}
}

func TestGenerate_TerminalFailure(t *testing.T) {
	gen := &stubGenerator{err: &itinerary.TerminalError{Attempts: 4, Cause: errors.New("overloaded")}}
	w := doJSON(buildRouter(gen, &stubTrips{}, &stubCredits{}), http.MethodPost, "/api/trips", validBody())
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	w := doJSON(buildRouter(&stubGenerator{}, &stubTrips{err: trips.ErrNotFound}, &stubCredits{}), http.MethodGet, "/api/trips/x", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetTrip_Foreign(t *testing.T) {
	w := doJSON(buildRouter(&stubGenerator{}, &stubTrips{err: trips.ErrForbidden}, &stubCredits{}), http.MethodGet, "/api/trips/x", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestListTrips_EmptyIsArray(t *testing.T) {
	w := doJSON(buildRouter(&stubGenerator{}, &stubTrips{}, &stubCredits{}), http.MethodGet, "/api/trips", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "{\"trips\":[]}" {
		t.Errorf("body = %s", got)
	}
}

func TestDeleteAll(t *testing.T) {
	w := doJSON(buildRouter(&stubGenerator{}, &stubTrips{}, &stubCredits{}), http.MethodDelete, "/api/trips", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Deleted int `json:"deleted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Deleted != 2 {
		t.Errorf("body = %s", w.Body)
	}
}

func TestCredits(t *testing.T) {
	w := doJSON(buildRouter(&stubGenerator{}, &stubTrips{}, &stubCredits{remaining: 7}), http.MethodGet, "/api/credits", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Remaining int `json:"remaining"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Remaining != 7 {
		t.Errorf("body = %s", w.Body)
	}
}
