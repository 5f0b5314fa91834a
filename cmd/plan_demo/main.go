package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"wander/internal/ai"
	"wander/internal/modules/itinerary"
	"wander/internal/prompt"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey, "gemini-2.0-flash")
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	start, _ := time.Parse(itinerary.DateFormat, "2026-04-10")
	params := itinerary.TripParameters{
		Destination: "Paris, France",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Party:       "Couple",
		Budget:      "average",
	}

	rendered := prompt.Render(prompt.FreeText, params.TemplateVars())
	fmt.Printf("Prompt:\n%s\n\n", rendered)

	raw, err := provider.GenerateText(ctx, rendered)
	if err != nil {
		log.Fatalf("Error generating text: %v", err)
	}

	plan, err := itinerary.ParsePlan(raw)
	if err != nil {
		log.Fatalf("Error parsing plan: %v", err)
	}

	fmt.Printf("Destination: %s\n", plan.Destination)
	fmt.Printf("Flight: %s (%s)\n", plan.Flight.Airline, plan.Flight.Price)
	fmt.Printf("Hotels: %d\n", len(plan.Hotels))
	for _, day := range plan.Itinerary {
		fmt.Printf("Day %d: %d places\n", day.Day, len(day.Places))
	}
}
