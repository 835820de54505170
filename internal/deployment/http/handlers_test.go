package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/deployment/scaffold"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDeployer struct {
	calls     int
	lastName  string
	lastFiles []scaffold.File
	url       string
	err       error
}

func (m *mockDeployer) Deploy(_ context.Context, projectName string, files []scaffold.File, _ scaffold.Framework) (string, error) {
	m.calls++
	m.lastName = projectName
	m.lastFiles = files
	return m.url, m.err
}

func setupRouter(dep *mockDeployer) (*gin.Engine, *Handler) {
	gin.SetMode(gin.TestMode)
	h := New(dep)
	h.now = func() time.Time { return time.Unix(1700000000, 0) }
	r := gin.New()
	h.Register(r)
	return r, h
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/deploy", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeploy_Success(t *testing.T) {
	dep := &mockDeployer{url: "https://my-app-1700000000.vercel.app"}
	r, _ := setupRouter(dep)

	w := postJSON(r, `{"code":"export default function C(){return null}","componentName":"C","projectName":"My App"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp DeployResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "https://my-app-1700000000.vercel.app", resp.DeploymentURL)

	assert.Equal(t, 1, dep.calls)
	assert.Equal(t, "my-app-1700000000", dep.lastName, "project name should be slugged with a time suffix")

	var component *scaffold.File
	for i := range dep.lastFiles {
		if dep.lastFiles[i].Path == "components/C.tsx" {
			component = &dep.lastFiles[i]
		}
	}
	require.NotNil(t, component, "scaffolded file set should include the component")
	assert.Equal(t, "export default function C(){return null}", component.Content)
}

func TestDeploy_AutoProjectName(t *testing.T) {
	dep := &mockDeployer{url: "https://x.vercel.app"}
	r, _ := setupRouter(dep)

	w := postJSON(r, `{"code":"x"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "design-forge-app-1700000000", dep.lastName)
}

func TestDeploy_MissingCode(t *testing.T) {
	dep := &mockDeployer{}
	r, _ := setupRouter(dep)

	w := postJSON(r, `{"projectName":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "code")
	assert.Equal(t, 0, dep.calls, "validation failure must not reach the deployment client")
}

func TestDeploy_OversizedCode(t *testing.T) {
	dep := &mockDeployer{}
	r, _ := setupRouter(dep)

	big, _ := json.Marshal(strings.Repeat("a", MaxCodeBytes+1))
	w := postJSON(r, `{"code":`+string(big)+`}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, dep.calls)
}

func TestDeploy_InvalidComponentName(t *testing.T) {
	cases := []string{"My Component", "../x", "1stComponent", "a/b", "a.b"}
	for _, name := range cases {
		dep := &mockDeployer{}
		r, _ := setupRouter(dep)

		body, _ := json.Marshal(DeployRequest{Code: "x", ComponentName: name})
		w := postJSON(r, string(body))

		assert.Equal(t, http.StatusBadRequest, w.Code, "for %q", name)
		assert.Contains(t, w.Body.String(), "componentName")
		assert.Equal(t, 0, dep.calls)
	}
}

func TestDeploy_UnsupportedFramework(t *testing.T) {
	dep := &mockDeployer{}
	r, _ := setupRouter(dep)

	w := postJSON(r, `{"code":"x","framework":"svelte"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "framework")
	assert.Equal(t, 0, dep.calls)
}

func TestDeploy_UpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperr.New(apperr.UpstreamAuthError, "bad token"), http.StatusUnauthorized},
		{apperr.New(apperr.UpstreamRateLimited, "quota"), http.StatusTooManyRequests},
		{apperr.New(apperr.ConfigurationError, "no token"), http.StatusInternalServerError},
		{apperr.New(apperr.DeploymentFailed, "build broke"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		dep := &mockDeployer{err: tc.err}
		r, _ := setupRouter(dep)

		w := postJSON(r, `{"code":"x"}`)

		assert.Equal(t, tc.status, w.Code, "for %v", tc.err)
		var resp DeployResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	}
}
