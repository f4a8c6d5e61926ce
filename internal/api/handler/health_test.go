package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	e := newEcho()
	c, rec := newContext(e, http.MethodGet, "/health", nil)

	require.NoError(t, NewHealthHandler().Liveness(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("boom") }

	t.Run("all healthy", func(t *testing.T) {
		e := newEcho()
		c, rec := newContext(e, http.MethodGet, "/health/ready", nil)
		h := NewHealthDependenciesHandler(map[string]Check{"catalog": ok, "contacts": ok})

		require.NoError(t, h.Readiness(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("one failing dependency degrades", func(t *testing.T) {
		e := newEcho()
		c, rec := newContext(e, http.MethodGet, "/health/ready", nil)
		h := NewHealthDependenciesHandler(map[string]Check{"catalog": ok, "redis": fail})

		require.NoError(t, h.Readiness(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var got readinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "degraded", got.Status)
		assert.Equal(t, "ok", got.Dependencies["catalog"].Status)
		assert.Equal(t, "boom", got.Dependencies["redis"].Error)
	})
}

func TestFileAndDirChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "services.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o644))

	ctx := context.Background()
	assert.NoError(t, FileCheck(file)(ctx))
	assert.Error(t, FileCheck(filepath.Join(dir, "missing.json"))(ctx))
	assert.Error(t, FileCheck(dir)(ctx))

	assert.NoError(t, DirCheck(filepath.Join(dir, "contactos.json"))(ctx))
	assert.Error(t, DirCheck(filepath.Join(dir, "nope", "contactos.json"))(ctx))
}
