package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/backend/software"
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		cmd  CommandType
		want string
	}{
		{CmdCreateDrawTarget, "CreateDrawTarget"},
		{CmdRetainDrawTarget, "RetainDrawTarget"},
		{CmdPopClip, "PopClip"},
		{CmdReleaseSharedSurface, "ReleaseSharedSurface"},
		{CommandType(255), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cmd.String())
	}
}

func TestEveryCommandHasName(t *testing.T) {
	for c := CmdCreateColorPattern; c <= CmdReleaseSharedSurface; c++ {
		assert.NotEqual(t, "Unknown", c.String(), "command %d", c)
		assert.NotEmpty(t, c.String())
	}
}

func TestIsRelease(t *testing.T) {
	assert.True(t, CmdReleaseDrawTarget.IsRelease())
	assert.True(t, CmdReleaseSharedGLContext.IsRelease())
	assert.False(t, CmdRetainDrawTarget.IsRelease())
	assert.False(t, CmdFillRect.IsRelease())
}

func TestRecordsAndForwards(t *testing.T) {
	inner := software.New()
	rec := New(inner)
	assert.Equal(t, "recording(software)", rec.Name())

	size := backend.IntSize{Width: 4, Height: 4}
	dt := rec.CreateDrawTarget(backend.BackendSkia, &size, backend.FormatB8G8R8A8)
	require.NotZero(t, dt)

	rec.RetainDrawTarget(dt)
	rec.ReleaseDrawTarget(dt)
	assert.Equal(t, size, rec.DrawTargetGetSize(dt))
	rec.ReleaseDrawTarget(dt)

	cmds := rec.Commands()
	require.Len(t, cmds, 5)
	assert.Equal(t, Command{Type: CmdCreateDrawTarget, Result: uintptr(dt)}, cmds[0])
	assert.Equal(t, Command{Type: CmdRetainDrawTarget, Handle: uintptr(dt)}, cmds[1])
	assert.Equal(t, CmdGetSize, cmds[3].Type)

	assert.Equal(t, 2, rec.CountFor(CmdReleaseDrawTarget, uintptr(dt)))
	assert.Zero(t, rec.CountFor(CmdReleaseDrawTarget, uintptr(dt)+1))
	assert.Equal(t, 1, inner.Stats().FreedDrawTargets)

	rec.Reset()
	assert.Empty(t, rec.Commands())
}

func TestNilInnerPanics(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
