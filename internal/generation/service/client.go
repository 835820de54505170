package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/generation/datauri"
	"github.com/designforge/design-forge-backend/internal/generation/prompt"
	"github.com/designforge/design-forge-backend/internal/logging"
)

// Generator is the narrow interface handlers depend on, so the concrete
// upstream client is swappable and mockable.
type Generator interface {
	Generate(ctx context.Context, image *datauri.Image, instructions string) (string, error)
	GenerateStream(ctx context.Context, image *datauri.Image, instructions string) (<-chan string, <-chan error)
}

// Client calls the external multimodal generation service over its
// messages API.
type Client struct {
	baseURL       string
	apiKey        string
	model         string
	defaultClient *http.Client
	streamClient  *http.Client // Streams need a longer overall deadline
}

// NewClient creates a generation client. baseURL and model fall back to
// known-good defaults when empty.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com/v1"
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		defaultClient: &http.Client{
			Timeout: timeout,
		},
		streamClient: &http.Client{
			Timeout: StreamTimeout,
		},
	}
}

type messageContent struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type message struct {
	Role    string           `json:"role"`
	Content []messageContent `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	Stream      bool      `json:"stream,omitempty"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) buildRequest(image *datauri.Image, instructions string, stream bool) messagesRequest {
	return messagesRequest{
		Model:     c.model,
		MaxTokens: MaxOutputTokens,
		System:    prompt.SystemInstructions,
		Messages: []message{{
			Role: "user",
			Content: []messageContent{
				{Type: "image", Source: &imageSource{
					Type:      "base64",
					MediaType: image.MediaType,
					Data:      image.Base64,
				}},
				{Type: "text", Text: prompt.Compose(instructions)},
			},
		}},
		Temperature: Temperature,
		Stream:      stream,
	}
}

func (c *Client) newHTTPRequest(ctx context.Context, reqBody messagesRequest) (*http.Request, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", DefaultAPIVersion)
	return req, nil
}

// classifyStatus maps an upstream HTTP failure onto the error taxonomy.
// Auth failures are not retryable; quota signals are, with backoff, but
// never server-side.
func classifyStatus(status int, body string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperr.New(apperr.UpstreamAuthError, "generation service rejected credentials")
	case http.StatusTooManyRequests:
		return apperr.New(apperr.UpstreamRateLimited, "generation service rate limit exceeded")
	default:
		return apperr.New(apperr.GenerationFailed, fmt.Sprintf("generation service error (status %d): %s", status, truncate(body, 300)))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Generate blocks until the full completion is returned.
func (c *Client) Generate(ctx context.Context, image *datauri.Image, instructions string) (string, error) {
	logger := logging.NewLogger(ctx)
	start := time.Now()

	if c.apiKey == "" {
		return "", apperr.New(apperr.ConfigurationError, "generation API key not configured")
	}

	req, err := c.newHTTPRequest(ctx, c.buildRequest(image, instructions, false))
	if err != nil {
		return "", apperr.Wrap(apperr.GenerationFailed, "failed to build generation request", err)
	}

	resp, err := c.defaultClient.Do(req)
	if err != nil {
		logger.LogError("generate", err)
		return "", apperr.Wrap(apperr.GenerationFailed, "generation request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Wrap(apperr.GenerationFailed, "failed to read generation response", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.LogWarnf("generate", "upstream returned status %d", resp.StatusCode)
		return "", classifyStatus(resp.StatusCode, string(body))
	}

	var out messagesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", apperr.Wrap(apperr.GenerationFailed, "failed to parse generation response", err)
	}
	if out.Error != nil {
		return "", apperr.New(apperr.GenerationFailed, "generation service error: "+out.Error.Message)
	}

	var result strings.Builder
	for _, content := range out.Content {
		if content.Type == "text" {
			result.WriteString(content.Text)
		}
	}
	if result.Len() == 0 {
		return "", apperr.New(apperr.GenerationFailed, "generation service returned no completion")
	}

	logger.LogInfof("generate", "completed in %v response_len=%d", time.Since(start), result.Len())
	return result.String(), nil
}

// GenerateStream returns incremental text chunks as they arrive. Both
// channels close when the stream ends; a closed upstream connection on the
// caller side cancels ctx and abandons the in-flight read.
func (c *Client) GenerateStream(ctx context.Context, image *datauri.Image, instructions string) (<-chan string, <-chan error) {
	chunks := make(chan string, 16)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		logger := logging.NewLogger(ctx)
		start := time.Now()

		if c.apiKey == "" {
			errs <- apperr.New(apperr.ConfigurationError, "generation API key not configured")
			return
		}

		req, err := c.newHTTPRequest(ctx, c.buildRequest(image, instructions, true))
		if err != nil {
			errs <- apperr.Wrap(apperr.GenerationFailed, "failed to build generation request", err)
			return
		}
		req.Header.Set("Accept", "text/event-stream")

		resp, err := c.streamClient.Do(req)
		if err != nil {
			logger.LogError("generate_stream", err)
			errs <- apperr.Wrap(apperr.GenerationFailed, "generation request failed", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errs <- classifyStatus(resp.StatusCode, string(body))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			var evt struct {
				Type  string `json:"type"`
				Delta *struct {
					Type string `json:"type"`
					Text string `json:"text,omitempty"`
				} `json:"delta,omitempty"`
				Error *struct {
					Type    string `json:"type"`
					Message string `json:"message"`
				} `json:"error,omitempty"`
			}
			if err := json.Unmarshal([]byte(data), &evt); err != nil {
				continue
			}
			if evt.Error != nil {
				errs <- apperr.New(apperr.GenerationFailed, "generation service error: "+evt.Error.Message)
				return
			}
			if evt.Type == "message_stop" {
				break
			}
			if evt.Delta != nil && evt.Delta.Text != "" {
				select {
				case chunks <- evt.Delta.Text:
				case <-ctx.Done():
					return
				}
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- apperr.Wrap(apperr.GenerationFailed, "generation stream failed", err)
			return
		}

		logger.LogInfof("generate_stream", "completed in %v", time.Since(start))
	}()

	return chunks, errs
}
