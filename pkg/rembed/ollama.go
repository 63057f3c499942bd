package rembed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaConfig configures an OllamaEmbedder.
type OllamaConfig struct {
	APIURL  string
	APIPath string
	Model   string
	Timeout time.Duration
}

// DefaultOllamaConfig returns the conventional local-Ollama configuration:
// http://localhost:11434, model mxbai-embed-large, 30s timeout.
func DefaultOllamaConfig() OllamaConfig {
	return OllamaConfig{
		APIURL:  "http://localhost:11434",
		APIPath: "/api/embeddings",
		Model:   "mxbai-embed-large",
		Timeout: 30 * time.Second,
	}
}

// OllamaEmbedder implements Embedder against a local Ollama server's
// /api/embeddings endpoint.
type OllamaEmbedder struct {
	config OllamaConfig
	client *http.Client
}

// NewOllamaEmbedder builds an OllamaEmbedder; a zero-value config is
// replaced with DefaultOllamaConfig.
func NewOllamaEmbedder(config OllamaConfig) *OllamaEmbedder {
	if config.APIURL == "" {
		config = DefaultOllamaConfig()
	}
	return &OllamaEmbedder{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed requests a single embedding from the Ollama server.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(ollamaRequest{Model: e.config.Model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("rembed: marshal request: %w", err)
	}

	url := e.config.APIURL + e.config.APIPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("rembed: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rembed: ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("rembed: ollama returned %d: %s", resp.StatusCode, string(data))
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("rembed: decode response: %w", err)
	}
	return out.Embedding, nil
}
