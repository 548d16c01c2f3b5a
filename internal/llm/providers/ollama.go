package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"skillbridge/internal/config"
	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

// OllamaProvider implements the model provider interface against a local
// Ollama server's /api/chat endpoint. The server is treated as an unreliable
// external dependency: every transport failure maps to a typed error.
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *logrus.Logger
}

// NewOllamaProvider creates a new Ollama provider instance
func NewOllamaProvider(cfg *config.Config) *OllamaProvider {
	return &OllamaProvider{
		baseURL: strings.TrimRight(cfg.LLM.BaseURL, "/"),
		model:   cfg.LLM.Model,
		client: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
		logger: utils.GetLogger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

// chatResponse covers the two envelope shapes local inference servers emit:
// /api/chat places text under message.content, older endpoints under a
// top-level response field.
type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Response string `json:"response"`
}

// Complete sends one non-streaming chat request and returns the raw model
// output. No retries: a failed call surfaces immediately.
func (p *OllamaProvider) Complete(ctx context.Context, req *models.InferenceRequest) (string, error) {
	startTime := time.Now()

	model := req.Model
	if model == "" {
		model = p.model
	}

	p.logger.WithFields(logrus.Fields{
		"model":    model,
		"provider": "ollama",
	}).Info("Sending chat request to model server")

	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		Stream: false,
		Format: req.Format,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", utils.ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", utils.ErrConnectionUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read model server response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.logger.WithFields(logrus.Fields{
			"status":   resp.StatusCode,
			"provider": "ollama",
		}).Error("Model server returned non-success status")
		return "", &utils.ServerError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var envelope chatResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", fmt.Errorf("failed to decode model server envelope: %w", err)
	}

	content := envelope.Message.Content
	if content == "" {
		// Fallback if the envelope shape is different
		content = envelope.Response
	}

	p.logger.WithFields(logrus.Fields{
		"model":           model,
		"provider":        "ollama",
		"output_length":   len(content),
		"processing_time": time.Since(startTime),
	}).Info("Chat request completed")

	return content, nil
}

// GetProviderName returns the name of the model provider
func (p *OllamaProvider) GetProviderName() string {
	return "ollama"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
