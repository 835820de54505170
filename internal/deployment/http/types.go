package http

import (
	"regexp"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/deployment/scaffold"
)

// MaxCodeBytes caps the submitted source text.
const MaxCodeBytes = 2 << 20 // 2 MiB

// The component name becomes a file path segment and a TypeScript import,
// so it must be a plain identifier.
var componentNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type DeployRequest struct {
	Code          string `json:"code"`
	ComponentName string `json:"componentName"`
	ProjectName   string `json:"projectName"`
	Framework     string `json:"framework"`
}

// Validate checks the request before any scaffolding or platform call.
func (r *DeployRequest) Validate() error {
	if r.Code == "" {
		return apperr.New(apperr.InvalidRequest, "code is required")
	}
	if len(r.Code) > MaxCodeBytes {
		return apperr.New(apperr.InvalidRequest, "code exceeds the 2 MiB limit")
	}
	if r.ComponentName != "" && !componentNamePattern.MatchString(r.ComponentName) {
		return apperr.New(apperr.InvalidRequest, "componentName must be a valid identifier")
	}
	if _, err := scaffold.ParseFramework(r.Framework); err != nil {
		return apperr.New(apperr.InvalidRequest, "framework must be one of: next, react")
	}
	return nil
}

type DeployResponse struct {
	Success       bool   `json:"success"`
	DeploymentURL string `json:"deploymentUrl,omitempty"`
	Error         string `json:"error,omitempty"`
	UserID        string `json:"userId,omitempty"`
}
