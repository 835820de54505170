package datauri

import (
	"fmt"
	"strings"
)

// Image is a decoded image data URI: declared media type plus the raw
// base64 payload, still encoded.
type Image struct {
	MediaType string
	Base64    string
}

// IsImage reports whether s looks like a base64 image data URI.
func IsImage(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}

// Parse splits an image data URI into its media type and base64 payload.
func Parse(s string) (*Image, error) {
	if !IsImage(s) {
		return nil, fmt.Errorf("not a base64 image data URI")
	}
	rest := strings.TrimPrefix(s, "data:")
	sep := strings.Index(rest, ";base64,")
	mediaType := rest[:sep]
	payload := rest[sep+len(";base64,"):]
	if payload == "" {
		return nil, fmt.Errorf("empty image payload")
	}
	return &Image{MediaType: mediaType, Base64: payload}, nil
}

// EstimatedDecodedSize approximates the decoded byte size of the base64
// payload without decoding it (4 base64 chars encode 3 bytes).
func EstimatedDecodedSize(s string) int {
	if i := strings.Index(s, ";base64,"); i >= 0 {
		s = s[i+len(";base64,"):]
	}
	return len(s) * 3 / 4
}
