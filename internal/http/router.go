// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"wander/internal/http/handlers"
	"wander/internal/http/middleware"
	"wander/internal/infra"
)

type RouterDeps struct {
	Verifier       infra.TokenVerifier
	Trips          *handlers.TripHandler
	Destinations   *handlers.DestinationHandler
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(middleware.Recovery(), middleware.Logging())

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := engine.Group("/api", middleware.Auth(deps.Verifier))
	api.POST("/trips", deps.RateLimiter.Middleware(), deps.Trips.Generate)
	api.GET("/trips", deps.Trips.List)
	api.GET("/trips/:id", deps.Trips.Get)
	api.DELETE("/trips/:id", deps.Trips.Delete)
	api.DELETE("/trips", deps.Trips.DeleteAll)
	api.GET("/credits", deps.Trips.Credits)
	api.GET("/destinations", deps.Destinations.Resolve)

	return cors.New(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(engine)
}
