package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/generation/datauri"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	calls     int
	lastImage *datauri.Image
	result    string
	err       error
	chunks    []string
	streamErr error
}

func (m *mockGenerator) Generate(_ context.Context, image *datauri.Image, _ string) (string, error) {
	m.calls++
	m.lastImage = image
	return m.result, m.err
}

func (m *mockGenerator) GenerateStream(_ context.Context, image *datauri.Image, _ string) (<-chan string, <-chan error) {
	m.calls++
	m.lastImage = image
	chunks := make(chan string, len(m.chunks))
	errs := make(chan error, 1)
	if m.streamErr != nil {
		errs <- m.streamErr
	} else {
		for _, c := range m.chunks {
			chunks <- c
		}
	}
	close(errs)
	close(chunks)
	return chunks, errs
}

func setupRouter(gen *mockGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(gen).Register(r)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const smallPNG = `data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==`

func TestGenerate_SanitizesModelOutput(t *testing.T) {
	gen := &mockGenerator{result: "<thinking>x</thinking>export default function C(){return null}"}
	r := setupRouter(gen)

	w := postJSON(r, "/generate", `{"imageDataURL":"`+smallPNG+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "export default function C(){return null}", resp.Code)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "image/png", gen.lastImage.MediaType)
}

func TestGenerate_MissingImageFailsBeforeUpstream(t *testing.T) {
	gen := &mockGenerator{result: "code"}
	r := setupRouter(gen)

	w := postJSON(r, "/generate", `{"prompt":"make it blue"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "imageDataURL")
	assert.Equal(t, 0, gen.calls, "validation failure must not reach the generation client")
}

func TestGenerate_NonImagePayloadRejected(t *testing.T) {
	gen := &mockGenerator{}
	r := setupRouter(gen)

	w := postJSON(r, "/generate", `{"imageDataURL":"data:text/plain;base64,aGk="}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerate_OversizedImageFailsBeforeUpstream(t *testing.T) {
	gen := &mockGenerator{}
	r := setupRouter(gen)

	// 14M base64 chars estimate to ~10.5 MiB decoded, over the 10 MiB cap.
	huge := "data:image/png;base64," + strings.Repeat("A", 14<<20)
	w := postJSON(r, "/generate", `{"imageDataURL":"`+huge+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "10 MiB")
	assert.Equal(t, 0, gen.calls, "oversized payload must not reach the generation client")
}

func TestGenerate_InvalidJSONBody(t *testing.T) {
	gen := &mockGenerator{}
	r := setupRouter(gen)

	w := postJSON(r, "/generate", `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerate_UpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperr.New(apperr.UpstreamRateLimited, "quota"), http.StatusTooManyRequests},
		{apperr.New(apperr.UpstreamAuthError, "bad key"), http.StatusUnauthorized},
		{apperr.New(apperr.ConfigurationError, "no key"), http.StatusInternalServerError},
		{apperr.New(apperr.GenerationFailed, "boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		gen := &mockGenerator{err: tc.err}
		r := setupRouter(gen)

		w := postJSON(r, "/generate", `{"imageDataURL":"`+smallPNG+`"}`)

		assert.Equal(t, tc.status, w.Code, "for %v", tc.err)
		var resp GenerateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	}
}

func TestGenerate_ConfigurationErrorHidesDetail(t *testing.T) {
	gen := &mockGenerator{err: apperr.New(apperr.ConfigurationError, "generation API key not configured")}
	r := setupRouter(gen)

	w := postJSON(r, "/generate", `{"imageDataURL":"`+smallPNG+`"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "API key")
}

func TestGenerateStream_ForwardsChunks(t *testing.T) {
	gen := &mockGenerator{chunks: []string{"export default ", "function C()", "{return null}"}}
	r := setupRouter(gen)

	w := postJSON(r, "/generate/stream", `{"imageDataURL":"`+smallPNG+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "export default function C(){return null}", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestGenerateStream_ErrorBeforeFirstChunk(t *testing.T) {
	gen := &mockGenerator{streamErr: apperr.New(apperr.UpstreamRateLimited, "quota")}
	r := setupRouter(gen)

	w := postJSON(r, "/generate/stream", `{"imageDataURL":"`+smallPNG+`"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestGenerateStream_ValidationBeforeUpstream(t *testing.T) {
	gen := &mockGenerator{}
	r := setupRouter(gen)

	w := postJSON(r, "/generate/stream", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gen.calls)
}
