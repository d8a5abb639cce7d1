package server

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"seo-provisioner/internal/core/config"
	"seo-provisioner/internal/core/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	logger.Init("development", "debug")
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

// TestNew_Health verifies the health route and the generated ray id header.
func TestNew_Health(t *testing.T) {
	srv := New(&config.AppConfig{ServerPort: 8080})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	_, err = uuid.Parse(resp.Header.Get(RayIDHeader))
	assert.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

// TestNew_RayIDPassthrough verifies a client supplied ray id is kept.
func TestNew_RayIDPassthrough(t *testing.T) {
	srv := New(&config.AppConfig{ServerPort: 8080})

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RayIDHeader, "client-ray")
	resp, err := srv.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "client-ray", resp.Header.Get(RayIDHeader))
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	logger.Init("development", "error")

	srv := New(cfg)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.Shutdown()
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
