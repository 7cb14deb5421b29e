package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Embedder converts a text into its embedding vector.
type Embedder interface {
	Embed(text string) ([]float64, error)
	ModelName() string
}

// EmbeddingsClient talks to an OpenAI-compatible /embeddings endpoint. Local
// servers such as Ollama or LocalAI expose the same shape, which is how the
// sentence-transformer model is served in deployment.
type EmbeddingsClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// EmbeddingsConfig configures the embeddings client.
type EmbeddingsConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// NewEmbeddingsClient creates a client with defaults applied.
func NewEmbeddingsClient(cfg EmbeddingsConfig) *EmbeddingsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "all-minilm"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &EmbeddingsClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// NewEmbeddingsClientFromEnv reads EMBEDDINGS_BASE_URL, EMBEDDINGS_MODEL and
// EMBEDDINGS_API_KEY.
func NewEmbeddingsClientFromEnv() *EmbeddingsClient {
	return NewEmbeddingsClient(EmbeddingsConfig{
		BaseURL: os.Getenv("EMBEDDINGS_BASE_URL"),
		APIKey:  os.Getenv("EMBEDDINGS_API_KEY"),
		Model:   os.Getenv("EMBEDDINGS_MODEL"),
	})
}

// ModelName returns the configured model identifier.
func (c *EmbeddingsClient) ModelName() string { return c.model }

// Embed returns the embedding vector for the given text.
func (c *EmbeddingsClient) Embed(text string) ([]float64, error) {
	reqBody := struct {
		Input string `json:"input"`
		Model string `json:"model"`
	}{Input: text, Model: c.model}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embeddings request failed: %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	var out struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("no embedding returned for model %s", c.model)
	}
	return out.Data[0].Embedding, nil
}
