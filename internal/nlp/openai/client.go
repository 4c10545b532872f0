// Package openai implements nlp.EntityRecognizer and nlp.Embedder over any
// OpenAI-compatible HTTP API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentsift/resume-parser/internal/nlp"
)

type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	EmbeddingModel string
	Temperature    float32
	Timeout        time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// RecognizeEntities asks the model for named entities in the text and
// validates the response against the entities schema before trusting it.
func (c *Client) RecognizeEntities(ctx context.Context, text string) ([]nlp.Entity, error) {
	rid := uuid.New().String()
	start := time.Now()

	schema := nlp.BuildEntitiesJSONSchema()
	sys := "You are a named-entity recognizer for resume text. " +
		"Find PERSON names, ORG organizations, and TITLE job titles. " +
		"Return ONLY JSON that matches the provided schema. Never output null."

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": text},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("nlp.ner.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in chat response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := nlp.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("nlp.ner.schema_validation_failed", "req_id", rid, "error", err)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var out struct {
		Entities []nlp.Entity `json:"entities"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("unmarshal entities: %w", err)
	}

	c.log.Info("nlp.ner.ok", "req_id", rid, "entities", len(out.Entities),
		"elapsed_ms", time.Since(start).Milliseconds())
	return out.Entities, nil
}

// Embed returns one embedding vector per input string.
func (c *Client) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	rid := uuid.New().String()
	start := time.Now()

	body := map[string]any{
		"model": c.cfg.EmbeddingModel,
		"input": inputs,
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/embeddings"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("nlp.embed.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var resp struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", err)
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("embeddings count mismatch: got %d, want %d", len(resp.Data), len(inputs))
	}

	out := make([][]float32, len(inputs))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("embedding index out of range: %d", d.Index)
		}
		out[d.Index] = d.Embedding
	}

	c.log.Info("nlp.embed.ok", "req_id", rid, "inputs", len(inputs),
		"elapsed_ms", time.Since(start).Milliseconds())
	return out, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nlp http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("nlp response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("nlp status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
