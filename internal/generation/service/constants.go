package service

import "time"

const (
	// DefaultTimeout bounds single-shot generation calls
	DefaultTimeout = 90 * time.Second
	// StreamTimeout bounds the whole streamed generation, not per chunk
	StreamTimeout = 5 * time.Minute

	// DefaultModel is the multimodal model used for design-to-code calls
	DefaultModel = "claude-sonnet-4-5-20250514"
	// DefaultAPIVersion is the upstream API version header value
	DefaultAPIVersion = "2023-06-01"

	// MaxOutputTokens caps single completions
	MaxOutputTokens = 8192
	// Temperature is kept low for deterministic output
	Temperature = 0.1
)
