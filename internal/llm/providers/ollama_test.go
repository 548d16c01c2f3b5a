package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/internal/config"
	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

func providerForServer(url string, timeout time.Duration) *OllamaProvider {
	cfg := &config.Config{}
	cfg.LLM.Provider = "ollama"
	cfg.LLM.BaseURL = url
	cfg.LLM.Model = "phi:latest"
	cfg.LLM.Timeout = timeout
	return NewOllamaProvider(cfg)
}

func analysisRequest() *models.InferenceRequest {
	return &models.InferenceRequest{
		Model:        "phi:latest",
		SystemPrompt: "You are an AI Recruiter.",
		UserPrompt:   "RESUME:\nGo developer\n\nJD:\nBackend role",
		Format:       "json",
	}
}

func TestCompleteReturnsMessageContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)

		var payload chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "phi:latest", payload.Model)
		assert.False(t, payload.Stream)
		assert.Equal(t, "json", payload.Format)
		require.Len(t, payload.Messages, 2)
		assert.Equal(t, "system", payload.Messages[0].Role)
		assert.Equal(t, "user", payload.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": {"content": "{\"job_title\": \"Engineer\"}"}}`))
	}))
	defer server.Close()

	p := providerForServer(server.URL, 5*time.Second)

	out, err := p.Complete(context.Background(), analysisRequest())
	require.NoError(t, err)
	assert.Equal(t, `{"job_title": "Engineer"}`, out)
}

func TestCompleteFallsBackToResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": "generated text"}`))
	}))
	defer server.Close()

	p := providerForServer(server.URL, 5*time.Second)

	out, err := p.Complete(context.Background(), analysisRequest())
	require.NoError(t, err)
	assert.Equal(t, "generated text", out)
}

func TestCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`model "phi:latest" not found`))
	}))
	defer server.Close()

	p := providerForServer(server.URL, 5*time.Second)

	_, err := p.Complete(context.Background(), analysisRequest())
	require.Error(t, err)

	var serverErr *utils.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	assert.Contains(t, serverErr.Body, "not found")
}

func TestCompleteConnectionUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := providerForServer(url, 5*time.Second)

	_, err := p.Complete(context.Background(), analysisRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConnectionUnavailable))
}

func TestCompleteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	p := providerForServer(server.URL, 50*time.Millisecond)

	_, err := p.Complete(context.Background(), analysisRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrTimeout))
}

func TestCompleteUsesConfiguredModelWhenRequestOmitsIt(t *testing.T) {
	var seenModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload chatRequest
		json.NewDecoder(r.Body).Decode(&payload)
		seenModel = payload.Model
		w.Write([]byte(`{"message": {"content": "ok"}}`))
	}))
	defer server.Close()

	p := providerForServer(server.URL, 5*time.Second)

	req := analysisRequest()
	req.Model = ""
	_, err := p.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "phi:latest", seenModel)
}

func TestGetProviderName(t *testing.T) {
	p := providerForServer("http://localhost:11434", time.Second)
	assert.Equal(t, "ollama", p.GetProviderName())
}
