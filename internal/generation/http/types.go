package http

import (
	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/generation/datauri"
)

// MaxImageBytes caps the decoded size of an uploaded design image.
const MaxImageBytes = 10 << 20 // 10 MiB

type GenerateRequest struct {
	ImageDataURL string `json:"imageDataURL"`
	Prompt       string `json:"prompt"`
}

// Validate enforces shape, format and size before any upstream call is
// made, so oversized or malformed payloads fail cheaply.
func (r *GenerateRequest) Validate() error {
	if r.ImageDataURL == "" {
		return apperr.New(apperr.InvalidRequest, "imageDataURL is required")
	}
	if !datauri.IsImage(r.ImageDataURL) {
		return apperr.New(apperr.InvalidRequest, "imageDataURL must be a base64 image data URI")
	}
	if datauri.EstimatedDecodedSize(r.ImageDataURL) > MaxImageBytes {
		return apperr.New(apperr.InvalidRequest, "imageDataURL exceeds the 10 MiB image limit")
	}
	return nil
}

type GenerateResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
	UserID  string `json:"userId,omitempty"`
}
