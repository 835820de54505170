package http

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/auth"
	"github.com/designforge/design-forge-backend/internal/deployment/scaffold"
	"github.com/designforge/design-forge-backend/internal/deployment/service"
	"github.com/designforge/design-forge-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	deployer service.Deployer
	now      func() time.Time
}

func New(deployer service.Deployer) *Handler {
	return &Handler{deployer: deployer, now: time.Now}
}

var projectNameInvalid = regexp.MustCompile(`[^a-z0-9-]+`)

// resolveProjectName slugs the caller-supplied name (or a fixed default)
// and appends a time-based suffix so repeated deploys don't collide.
func (h *Handler) resolveProjectName(name string) string {
	base := projectNameInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "design-forge-app"
	}
	return fmt.Sprintf("%s-%d", base, h.now().Unix())
}

// Deploy scaffolds a full project around the submitted code and creates a
// deployment on the hosting platform.
func (h *Handler) Deploy(c *gin.Context) {
	var req DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, DeployResponse{Success: false, Error: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), DeployResponse{Success: false, Error: apperr.PublicMessage(err)})
		return
	}

	framework, _ := scaffold.ParseFramework(req.Framework)
	projectName := h.resolveProjectName(req.ProjectName)

	files, err := scaffold.Build(scaffold.Input{
		Source:        req.Code,
		ComponentName: req.ComponentName,
		ProjectName:   projectName,
		Framework:     framework,
	})
	if err != nil {
		err = apperr.Wrap(apperr.InvalidRequest, "framework must be one of: next, react", err)
		c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), DeployResponse{Success: false, Error: apperr.PublicMessage(err)})
		return
	}

	url, err := h.deployer.Deploy(c.Request.Context(), projectName, files, framework)
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("deploy", err)
		c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), DeployResponse{Success: false, Error: apperr.PublicMessage(err)})
		return
	}

	c.JSON(http.StatusOK, DeployResponse{
		Success:       true,
		DeploymentURL: url,
		UserID:        auth.UserID(c),
	})
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/deploy", h.Deploy)
}
