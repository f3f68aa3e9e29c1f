package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func TestHandleHealthz(t *testing.T) {
	rec := getRequest(t, HandleHealthz(), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		rec := getRequest(t, HandleReadyz(&fakePinger{}), "/readyz")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[HealthResponse](t, rec)
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("database down", func(t *testing.T) {
		rec := getRequest(t, HandleReadyz(&fakePinger{err: errors.New("connection refused")}), "/readyz")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		resp := decodeBody[HealthResponse](t, rec)
		assert.Equal(t, "unavailable", resp.Status)
	})
}

func TestHandleVersion(t *testing.T) {
	rec := getRequest(t, HandleVersion(), "/version")

	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[VersionInfo](t, rec)
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
