package llm

import (
	"context"

	"skillbridge/pkg/models"
)

// Provider defines the interface for chat-completion model backends
type Provider interface {
	// Complete sends a single non-streaming chat request and returns the raw
	// text the model produced. One call is one attempt; retry policy, if any,
	// belongs to the caller.
	Complete(ctx context.Context, req *models.InferenceRequest) (string, error)

	// GetProviderName returns the name of the model provider
	GetProviderName() string
}
