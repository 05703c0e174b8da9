package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datepick/internal/web"
)

func stubServe(t *testing.T) **web.Server {
	t.Helper()
	original := serveRunner
	t.Cleanup(func() { serveRunner = original })

	var captured *web.Server
	serveRunner = func(_ context.Context, srv *web.Server) error {
		captured = srv
		return nil
	}
	return &captured
}

func TestServeUsesConfiguredAddress(t *testing.T) {
	captured := stubServe(t)
	path := writeConfig(t, "server:\n  addr: 127.0.0.1:9191\n")

	_, _, err := execute(t, "--config", path, "serve")
	require.NoError(t, err)
	require.NotNil(t, *captured)
	assert.Equal(t, "127.0.0.1:9191", (*captured).Addr())
}

func TestServeFlagOverridesAddressAndBounds(t *testing.T) {
	captured := stubServe(t)

	_, _, err := execute(t, "serve", "--addr", ":0", "--min", "2024-04-10", "--max", "2024-04-20")
	require.NoError(t, err)
	require.NotNil(t, *captured)
	assert.Equal(t, ":0", (*captured).Addr())

	rr := httptest.NewRecorder()
	(*captured).Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/select?year=2024&month=3&day=25", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
