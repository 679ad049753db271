package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scenarios-conductor/internal/mocks"
)

func performHealthRequest(t *testing.T, client *mocks.MockClient, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHealthHandler(client)
	router.GET("/health", handler.Health)
	router.GET("/health/live", handler.Live)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth_UpstreamAlive(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().IsAlive(gomock.Any()).Return(true)
	client.EXPECT().GetVersion(gomock.Any()).Return("1.2.3", nil)

	w := performHealthRequest(t, client, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Services["urban_api"])
	assert.Equal(t, "1.2.3", resp.Services["urban_api_version"])
}

func TestHealth_VersionLookupFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().IsAlive(gomock.Any()).Return(true)
	client.EXPECT().GetVersion(gomock.Any()).Return("", errors.New("openapi endpoint broken"))

	w := performHealthRequest(t, client, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotContains(t, resp.Services, "urban_api_version")
}

func TestHealth_UpstreamUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().IsAlive(gomock.Any()).Return(false)

	w := performHealthRequest(t, client, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "unreachable", resp.Services["urban_api"])
}

func TestLive_AlwaysOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	w := performHealthRequest(t, client, "/health/live")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["alive"])
}
