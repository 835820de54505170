package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/deployment/scaffold"
	"github.com/designforge/design-forge-backend/internal/logging"
)

// DefaultTimeout bounds deployment submission calls. The platform builds
// asynchronously; this only covers the create call itself.
const DefaultTimeout = 60 * time.Second

// Deployer is the narrow interface handlers depend on.
type Deployer interface {
	Deploy(ctx context.Context, projectName string, files []scaffold.File, framework scaffold.Framework) (string, error)
}

// Client submits assembled file sets to the hosting platform's deployment
// API. Every call creates a new remote project; there is no update-in-place.
type Client struct {
	baseURL       string
	token         string
	defaultClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.vercel.com"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		defaultClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type deploymentFile struct {
	File string `json:"file"`
	Data string `json:"data"`
}

type projectSettings struct {
	Framework       string `json:"framework"`
	DevCommand      string `json:"devCommand,omitempty"`
	BuildCommand    string `json:"buildCommand,omitempty"`
	OutputDirectory string `json:"outputDirectory,omitempty"`
}

type createDeploymentRequest struct {
	Name            string           `json:"name"`
	Files           []deploymentFile `json:"files"`
	ProjectSettings projectSettings  `json:"projectSettings"`
	Target          string           `json:"target"`
}

type createDeploymentResponse struct {
	URL   string `json:"url"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// settingsFor maps the target framework onto the platform's build hints.
func settingsFor(framework scaffold.Framework) projectSettings {
	switch framework {
	case scaffold.FrameworkReact:
		return projectSettings{
			Framework:       "vite",
			DevCommand:      "vite",
			BuildCommand:    "vite build",
			OutputDirectory: "dist",
		}
	default:
		return projectSettings{Framework: "nextjs"}
	}
}

// Deploy submits the file set and returns the live URL.
func (c *Client) Deploy(ctx context.Context, projectName string, files []scaffold.File, framework scaffold.Framework) (string, error) {
	logger := logging.NewLogger(ctx)
	start := time.Now()

	if c.token == "" {
		return "", apperr.New(apperr.ConfigurationError, "deployment token not configured")
	}

	reqBody := createDeploymentRequest{
		Name:            projectName,
		Files:           make([]deploymentFile, 0, len(files)),
		ProjectSettings: settingsFor(framework),
		Target:          "production",
	}
	for _, f := range files {
		reqBody.Files = append(reqBody.Files, deploymentFile{File: f.Path, Data: f.Content})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperr.Wrap(apperr.DeploymentFailed, "failed to build deployment request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v13/deployments", bytes.NewReader(payload))
	if err != nil {
		return "", apperr.Wrap(apperr.DeploymentFailed, "failed to build deployment request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.defaultClient.Do(req)
	if err != nil {
		logger.LogError("deploy", err)
		return "", apperr.Wrap(apperr.DeploymentFailed, "deployment request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Wrap(apperr.DeploymentFailed, "failed to read deployment response", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", apperr.New(apperr.UpstreamAuthError, "deployment platform rejected credentials")
	case http.StatusTooManyRequests:
		return "", apperr.New(apperr.UpstreamRateLimited, "deployment platform rate limit exceeded")
	default:
		logger.LogWarnf("deploy", "platform returned status %d", resp.StatusCode)
		return "", apperr.New(apperr.DeploymentFailed, fmt.Sprintf("deployment failed (status %d)", resp.StatusCode))
	}

	var out createDeploymentResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", apperr.Wrap(apperr.DeploymentFailed, "failed to parse deployment response", err)
	}
	if out.Error != nil {
		return "", apperr.New(apperr.DeploymentFailed, "deployment failed: "+out.Error.Message)
	}
	if out.URL == "" {
		return "", apperr.New(apperr.DeploymentFailed, "deployment platform returned no URL")
	}

	logger.LogInfof("deploy", "created deployment in %v name=%s", time.Since(start), projectName)
	return "https://" + out.URL, nil
}
