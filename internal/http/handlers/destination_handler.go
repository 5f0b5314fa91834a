// README: Destination resolution handler.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wander/internal/modules/places"
)

// DestinationResolver turns free-text queries into candidate destinations.
type DestinationResolver interface {
	Resolve(ctx context.Context, query string) ([]places.Destination, error)
}

type DestinationHandler struct {
	places DestinationResolver
}

func NewDestinationHandler(svc DestinationResolver) *DestinationHandler {
	return &DestinationHandler{places: svc}
}

// Resolve handles GET /api/destinations?q=.
func (h *DestinationHandler) Resolve(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		writeError(c, http.StatusBadRequest, "query too short")
		return
	}

	dests, err := h.places.Resolve(c.Request.Context(), q)
	if err != nil {
		writeError(c, http.StatusBadGateway, "destination lookup failed")
		return
	}
	if dests == nil {
		dests = []places.Destination{}
	}
	writeJSON(c, http.StatusOK, gin.H{"destinations": dests})
}
