// README: Generation pipeline: prompt render, model invocation with backoff, parse, persist.
package itinerary

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sethvargo/go-retry"

	"wander/internal/ai"
	"wander/internal/prompt"
)

// Saver persists a finished plan together with its originating parameters and
// returns the document identifier used. Each save creates a brand-new document.
type Saver interface {
	Save(ctx context.Context, userEmail string, plan *TravelPlan, params TripParameters) (string, error)
}

// TemplateKind selects which fixed prompt template a generation uses. The
// choice belongs to the caller: concrete place vs. abstract category.
type TemplateKind int

const (
	TemplateFreeText TemplateKind = iota
	TemplateCategory
)

const (
	// DefaultMaxAttempts is the total invocation budget, first try included.
	DefaultMaxAttempts = 4
	// DefaultBackoffBase is the first retry delay; subsequent delays double.
	DefaultBackoffBase = time.Second
)

// Service drives the generation pipeline. Transport failures and malformed
// output share one retry budget; persistence failures are never retried.
type Service struct {
	gen         ai.TextGenerator
	saver       Saver
	maxAttempts int
	backoffBase time.Duration
}

func NewService(gen ai.TextGenerator, saver Saver, maxAttempts int, backoffBase time.Duration) *Service {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if backoffBase <= 0 {
		backoffBase = DefaultBackoffBase
	}
	return &Service{gen: gen, saver: saver, maxAttempts: maxAttempts, backoffBase: backoffBase}
}

// Result is handed back to the caller on success so it can navigate to the
// detail view keyed by DocID.
type Result struct {
	DocID string      `json:"doc_id"`
	Plan  *TravelPlan `json:"trip_plan"`
}

// Generate renders the prompt for params, invokes the model with exponential
// backoff (base, 2*base, 4*base …) until a plan parses or the attempt budget
// runs out, then persists the plan. Context cancellation aborts any scheduled
// retry; an in-flight invocation is left to finish or fail on its own.
func (s *Service) Generate(ctx context.Context, userEmail string, params TripParameters, kind TemplateKind) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tmpl := prompt.FreeText
	if kind == TemplateCategory {
		tmpl = prompt.Category
	}
	rendered := prompt.Render(tmpl, params.TemplateVars())

	var plan *TravelPlan
	attempts := 0

	b := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewExponential(s.backoffBase))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempts++
		raw, err := s.gen.GenerateText(ctx, rendered)
		if err != nil {
			log.Printf("itinerary: attempt %d invocation failed: %v", attempts, err)
			return retry.RetryableError(err)
		}
		p, err := ParsePlan(raw)
		if err != nil {
			log.Printf("itinerary: attempt %d yielded unusable output: %v", attempts, err)
			return retry.RetryableError(err)
		}
		plan = p
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			// The owning flow was torn down; report the cancellation itself
			// rather than a terminal generation failure.
			return nil, ctx.Err()
		}
		return nil, &TerminalError{Attempts: attempts, Cause: err}
	}

	docID, err := s.saver.Save(ctx, userEmail, plan, params)
	if err != nil {
		return nil, fmt.Errorf("save trip: %w", err)
	}
	return &Result{DocID: docID, Plan: plan}, nil
}
