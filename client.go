// Package genbridge bridges a single JSON request to the Gemini
// generateContent HTTP API: one prompt in, one generated text out.
package genbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultModel is used when the request does not name a model.
	DefaultModel = "gemini-pro"
	// DefaultMaxTokens bounds the generated output when the request does not.
	DefaultMaxTokens = 8192
	// DefaultTimeout is the wait bound for the single upstream call.
	DefaultTimeout = 180 * time.Second

	// envKeyMarker flags a credential that names an environment variable
	// instead of carrying the key itself ("API_KEY_ENV=<VAR>").
	envKeyMarker = "API_KEY_ENV"
	// urlKeyPlaceholder is replaced by the resolved credential wherever it
	// appears in the endpoint template.
	urlKeyPlaceholder = "GEMINI_API_KEY"
)

// Result is the outcome of a single generation call.
type Result struct {
	Text        string `json:"text"`
	UsageTokens int    `json:"usage_tokens"`
}

// Client performs one-shot calls against a generateContent endpoint.
// The HTTP transport is created lazily on the first Generate and released
// exactly once by Close.
type Client struct {
	url    string
	apiKey string
	model  string

	timeout time.Duration
	logger  zerolog.Logger
	httpc   *http.Client // caller-supplied, overrides the lazy transport

	transportOnce sync.Once
	transport     *http.Client
	closeOnce     sync.Once
}

// New resolves the configured credential and endpoint template and returns a
// client. No network resource is acquired until the first Generate call.
func New(cfg ClientConfig, opts ...Option) *Client {
	key, envName := resolveCredential(cfg.APIKey)

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		url:     strings.ReplaceAll(cfg.URL, urlKeyPlaceholder, key),
		apiKey:  key,
		model:   model,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if envName != "" {
		c.logger.Info().Str("env", envName).Msg("using API key from environment variable")
	}

	c.logger.Info().
		Str("model", c.model).
		Str("url", c.redactedURL()).
		Msg("client initialized")

	return c
}

// resolveCredential handles the API_KEY_ENV=<VAR> indirection. It returns the
// resolved key and, when indirection was used, the variable name. An unset
// variable falls back to the literal credential string.
func resolveCredential(raw string) (key, envName string) {
	if !strings.Contains(raw, envKeyMarker) {
		return raw, ""
	}

	parts := strings.Split(raw, "=")
	if len(parts) < 2 {
		return raw, ""
	}

	name := parts[1]
	if v, ok := os.LookupEnv(name); ok {
		return v, name
	}

	return raw, name
}

// Generate sends the prompt upstream and returns the generated text together
// with the token usage. A maxTokens of zero or less falls back to
// DefaultMaxTokens. The call is not retried on any failure.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (Result, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	c.logger.Info().
		Int("max_tokens", maxTokens).
		Str("prompt", truncate(prompt, 50)).
		Msg("sending generation request")

	payload, err := json.Marshal(apiRequest{
		Contents:         []apiContent{{Parts: []apiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{MaxOutputTokens: maxTokens},
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	c.logger.Debug().RawJSON("body", payload).Msg("request body")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	text := firstFragment(parsed.Candidates)

	usage, estimated := resolveUsage(parsed.UsageMetadata, prompt, text)
	if estimated {
		c.logger.Warn().Msg("usageMetadata not found in response, estimating token count")
	}

	c.logger.Info().
		Int("text_len", len(text)).
		Int("usage_tokens", usage).
		Msg("generation succeeded")

	return Result{Text: text, UsageTokens: usage}, nil
}

// firstFragment returns the text of the first text-bearing part of the first
// candidate. Later parts and later candidates are ignored.
func firstFragment(cands []apiCandidate) string {
	if len(cands) == 0 {
		return ""
	}

	for _, p := range cands[0].Content.Parts {
		if p.Text != "" {
			return p.Text
		}
	}

	return ""
}

// resolveUsage prefers the exact count reported by the API and falls back to
// the word-count estimate, reporting which path was taken.
func resolveUsage(meta *apiUsageMeta, prompt, text string) (usage int, estimated bool) {
	if meta != nil && meta.TotalTokenCount != nil {
		return *meta.TotalTokenCount, false
	}

	return EstimateTokens(prompt) + EstimateTokens(text), true
}

// httpClient returns the active transport, creating it on first use.
func (c *Client) httpClient() *http.Client {
	if c.httpc != nil {
		return c.httpc
	}

	c.transportOnce.Do(func() {
		c.transport = &http.Client{Timeout: c.timeout}
	})

	return c.transport
}

// Close releases the lazily created transport. It runs at most once, is safe
// to call before the first Generate, and leaves a caller-supplied HTTP client
// untouched.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.transport != nil {
			c.transport.CloseIdleConnections()
		}
	})
}

func (c *Client) redactedURL() string {
	if c.apiKey == "" {
		return c.url
	}

	return strings.ReplaceAll(c.url, c.apiKey, "***")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n]) + "..."
}
