package ai

import (
	"context"
)

// TextGenerator defines the contract for interacting with AI models.
// Each call is a single stateless turn: one prompt in, one text payload out.
// The generation pipeline keeps no cross-call conversational memory, so the
// provider handle can be shared freely between concurrent requests.
type TextGenerator interface {
	// GenerateText sends one rendered prompt and returns the raw response text.
	// Transport and remote-service failures surface as a wrapped generic error;
	// classifying them is the caller's job.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
