package llm

import (
	"fmt"

	"skillbridge/internal/config"
	"skillbridge/internal/llm/providers"
)

// Factory creates model provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates a model provider based on the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.LLM.Provider {
	case "ollama":
		return providers.NewOllamaProvider(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", f.config.LLM.Provider)
	}
}

// GetSupportedProviders returns a list of supported model providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"ollama"}
}
