package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/generate", h.Generate)
	r.POST("/generate/stream", h.GenerateStream)
}
