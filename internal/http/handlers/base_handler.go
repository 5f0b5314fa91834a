// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/modules/credits"
	"wander/internal/modules/itinerary"
	"wander/internal/modules/trips"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	var terr *itinerary.TerminalError
	switch {
	case errors.Is(err, itinerary.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, credits.ErrExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, trips.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, trips.ErrForbidden):
		writeError(c, http.StatusForbidden, err.Error())
	case errors.As(err, &terr):
		// Retry budget exhausted against the model service.
		writeError(c, http.StatusBadGateway, terr.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
