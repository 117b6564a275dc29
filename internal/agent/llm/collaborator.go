// Package llm holds the narrow boundary to the external text-generation
// collaborator. The core only ever needs "prompt in, text out"; everything
// else (providers, transports, pricing) stays behind this interface.
package llm

import (
	"context"
)

// Collaborator is a synchronous prompt-completion service. Complete may fail;
// callers are expected to recover locally (the reasoning layer substitutes
// mock text) rather than propagate the failure. No retry or timeout policy is
// applied here; a wrapping layer may add one.
type Collaborator interface {
	// Name identifies the backing provider/model for summaries and logs.
	Name() string

	// Complete sends one prompt and returns the generated text.
	Complete(ctx context.Context, prompt string) (string, error)
}
