package http

import (
	"fmt"
	"net/http"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/auth"
	"github.com/designforge/design-forge-backend/internal/generation/datauri"
	"github.com/designforge/design-forge-backend/internal/generation/sanitize"
	"github.com/designforge/design-forge-backend/internal/generation/service"
	"github.com/designforge/design-forge-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	generator service.Generator
}

func New(generator service.Generator) *Handler {
	return &Handler{generator: generator}
}

// Generate handles single-shot design-to-code requests.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Success: false, Error: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), GenerateResponse{Success: false, Error: apperr.PublicMessage(err)})
		return
	}

	image, err := datauri.Parse(req.ImageDataURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Success: false, Error: "imageDataURL could not be parsed"})
		return
	}

	raw, err := h.generator.Generate(c.Request.Context(), image, req.Prompt)
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("generate", err)
		c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), GenerateResponse{Success: false, Error: apperr.PublicMessage(err)})
		return
	}

	code := sanitize.Clean(raw)
	if code == "" {
		c.JSON(http.StatusInternalServerError, GenerateResponse{Success: false, Error: "generation produced no code"})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Success: true,
		Code:    code,
		UserID:  auth.UserID(c),
	})
}

// GenerateStream forwards source code to the caller as a raw chunked text
// stream while the upstream completion is still in flight. Errors that
// occur before the first chunk use the regular status-code mapping; once
// bytes are on the wire the stream just ends at connection close.
func (h *Handler) GenerateStream(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Success: false, Error: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), GenerateResponse{Success: false, Error: apperr.PublicMessage(err)})
		return
	}

	image, err := datauri.Parse(req.ImageDataURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Success: false, Error: "imageDataURL could not be parsed"})
		return
	}

	ctx := c.Request.Context()
	chunks, errs := h.generator.GenerateStream(ctx, image, req.Prompt)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, GenerateResponse{Success: false, Error: "streaming unsupported"})
		return
	}

	started := false
	for {
		select {
		case <-ctx.Done():
			// Client disconnected; the upstream read is abandoned via ctx.
			return

		case err, open := <-errs:
			if !open {
				errs = nil
				continue
			}
			logging.NewLogger(ctx).LogError("generate_stream", err)
			if !started {
				c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), GenerateResponse{Success: false, Error: apperr.PublicMessage(err)})
			}
			return

		case chunk, open := <-chunks:
			if !open {
				if errs != nil {
					if err, pending := <-errs; pending {
						logging.NewLogger(ctx).LogError("generate_stream", err)
						if !started {
							c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), GenerateResponse{Success: false, Error: apperr.PublicMessage(err)})
						}
					}
				}
				return
			}
			if !started {
				c.Header("Content-Type", "text/plain; charset=utf-8")
				c.Header("Cache-Control", "no-cache")
				c.Header("X-Accel-Buffering", "no") // nginx: disable buffering
				c.Status(http.StatusOK)
				started = true
			}
			fmt.Fprint(c.Writer, chunk)
			flusher.Flush()
		}
	}
}
