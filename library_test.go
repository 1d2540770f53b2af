package azure

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/backend/software"
)

func TestCurrentLibraryPinned(t *testing.T) {
	_, rec := useSoftware(t)
	lib, err := CurrentLibrary()
	require.NoError(t, err)
	assert.Same(t, rec, lib)
}

func TestCurrentLibraryFallsBackToRegistry(t *testing.T) {
	UseLibrary(nil)
	lib, err := CurrentLibrary()
	require.NoError(t, err)
	assert.Equal(t, backend.Default().Name(), lib.Name())
}

func TestWrappersKeepTheirLibrary(t *testing.T) {
	first, _ := useSoftware(t)
	dt := NewDrawTarget(SkiaBackend, IntSize{2, 2}, FormatB8G8R8A8)

	second := software.New()
	UseLibrary(second)

	assert.Equal(t, IntSize{2, 2}, dt.Size())
	dt.Release()
	assert.Equal(t, 1, first.Stats().FreedDrawTargets)
	assert.Zero(t, second.Stats().FreedDrawTargets)
}

func TestSetLoggerPropagates(t *testing.T) {
	var buf bytes.Buffer
	lib, _ := useSoftware(t)
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	dt := NewDrawTarget(SkiaBackend, IntSize{2, 2}, FormatB8G8R8A8)
	dt.Release()
	dt.Release()

	out := buf.String()
	assert.Contains(t, out, "azure: draw target created")
	assert.Contains(t, out, "software: draw target created", "the pinned library logs through the same handler")
	assert.Contains(t, out, "azure: DrawTarget released twice")
	assert.Zero(t, lib.Stats().DrawTargets)
}

func TestLoggerDefaultsToSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
