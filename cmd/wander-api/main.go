// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wander/internal/ai"
	"wander/internal/config"
	httptransport "wander/internal/http"
	"wander/internal/http/handlers"
	"wander/internal/http/middleware"
	"wander/internal/infra"
	"wander/internal/modules/credits"
	"wander/internal/modules/itinerary"
	"wander/internal/modules/places"
	"wander/internal/modules/trips"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	firebaseApp, err := infra.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}
	verifier, err := firebaseApp.Verifier(ctx)
	if err != nil {
		log.Fatalf("firebase auth: %v", err)
	}
	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer firestoreClient.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gemini.Close()

	tripStore := trips.NewStore(firestoreClient)
	tripSvc := trips.NewService(tripStore)

	itinerarySvc := itinerary.NewService(
		gemini,
		tripStore,
		cfg.Generation.MaxAttempts,
		time.Duration(cfg.Generation.BackoffBaseSeconds)*time.Second,
	)

	creditStore := credits.NewStore(dbPool)
	creditSvc := credits.NewService(creditStore)

	placeSvc, err := places.NewService(cfg.Maps.APIKey, places.NewCache(redisClient))
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Verifier:       verifier,
		Trips:          handlers.NewTripHandler(itinerarySvc, tripSvc, creditSvc),
		Destinations:   handlers.NewDestinationHandler(placeSvc),
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
