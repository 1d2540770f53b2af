// Package recording provides a backend.Library decorator that records
// every call before forwarding it.
//
// The record is a flat list of typed commands, one per library entry
// point, carrying the handle the call acted on and the handle it
// returned. It answers questions such as "how many retains did the draw
// target see" without instrumenting the library itself:
//
//	rec := recording.New(software.New())
//	azure.UseLibrary(rec)
//	// ... draw ...
//	retains := rec.Count(recording.CmdRetainDrawTarget)
package recording

// CommandType identifies the library entry point a command recorded.
type CommandType uint8

const (
	// Patterns
	CmdCreateColorPattern CommandType = iota
	CmdReleaseColorPattern

	// Draw target lifecycle
	CmdCreateDrawTarget
	CmdCreateDrawTargetForData
	CmdRetainDrawTarget
	CmdReleaseDrawTarget

	// Draw target operations
	CmdGetSize
	CmdFlush
	CmdClearRect
	CmdFill
	CmdFillRect
	CmdStroke
	CmdStrokeLine
	CmdStrokeRect
	CmdDrawSurface
	CmdGetSnapshot
	CmdCreateSourceSurfaceFromData
	CmdSetTransform
	CmdFillGlyphs
	CmdPushClip
	CmdPopClip

	// Paths
	CmdCreatePathBuilder
	CmdMoveTo
	CmdLineTo
	CmdQuadraticBezierTo
	CmdBezierTo
	CmdClosePath
	CmdFinishPath
	CmdReleasePathBuilder
	CmdReleasePath

	// Surfaces
	CmdReleaseSourceSurface
	CmdGetSurfaceSize
	CmdGetSurfaceFormat
	CmdGetDataSurface
	CmdGetData
	CmdGetStride

	// Fonts
	CmdCreateScaledFont
	CmdReleaseScaledFont

	// Shared GL contexts
	CmdCreateSharedGLContext
	CmdRetainSharedGLContext
	CmdReleaseSharedGLContext
	CmdMakeCurrent
	CmdStealSurface
	CmdFlushSharedGLContext
	CmdCreateDrawTargetForFBO
	CmdGetCurrentGLContext
	CmdReleaseSharedSurface
)

var commandTypeNames = [...]string{
	CmdCreateColorPattern:          "CreateColorPattern",
	CmdReleaseColorPattern:         "ReleaseColorPattern",
	CmdCreateDrawTarget:            "CreateDrawTarget",
	CmdCreateDrawTargetForData:     "CreateDrawTargetForData",
	CmdRetainDrawTarget:            "RetainDrawTarget",
	CmdReleaseDrawTarget:           "ReleaseDrawTarget",
	CmdGetSize:                     "GetSize",
	CmdFlush:                       "Flush",
	CmdClearRect:                   "ClearRect",
	CmdFill:                        "Fill",
	CmdFillRect:                    "FillRect",
	CmdStroke:                      "Stroke",
	CmdStrokeLine:                  "StrokeLine",
	CmdStrokeRect:                  "StrokeRect",
	CmdDrawSurface:                 "DrawSurface",
	CmdGetSnapshot:                 "GetSnapshot",
	CmdCreateSourceSurfaceFromData: "CreateSourceSurfaceFromData",
	CmdSetTransform:                "SetTransform",
	CmdFillGlyphs:                  "FillGlyphs",
	CmdPushClip:                    "PushClip",
	CmdPopClip:                     "PopClip",
	CmdCreatePathBuilder:           "CreatePathBuilder",
	CmdMoveTo:                      "MoveTo",
	CmdLineTo:                      "LineTo",
	CmdQuadraticBezierTo:           "QuadraticBezierTo",
	CmdBezierTo:                    "BezierTo",
	CmdClosePath:                   "ClosePath",
	CmdFinishPath:                  "FinishPath",
	CmdReleasePathBuilder:          "ReleasePathBuilder",
	CmdReleasePath:                 "ReleasePath",
	CmdReleaseSourceSurface:        "ReleaseSourceSurface",
	CmdGetSurfaceSize:              "GetSurfaceSize",
	CmdGetSurfaceFormat:            "GetSurfaceFormat",
	CmdGetDataSurface:              "GetDataSurface",
	CmdGetData:                     "GetData",
	CmdGetStride:                   "GetStride",
	CmdCreateScaledFont:            "CreateScaledFont",
	CmdReleaseScaledFont:           "ReleaseScaledFont",
	CmdCreateSharedGLContext:       "CreateSharedGLContext",
	CmdRetainSharedGLContext:       "RetainSharedGLContext",
	CmdReleaseSharedGLContext:      "ReleaseSharedGLContext",
	CmdMakeCurrent:                 "MakeCurrent",
	CmdStealSurface:                "StealSurface",
	CmdFlushSharedGLContext:        "FlushSharedGLContext",
	CmdCreateDrawTargetForFBO:      "CreateDrawTargetForFBO",
	CmdGetCurrentGLContext:         "GetCurrentGLContext",
	CmdReleaseSharedSurface:        "ReleaseSharedSurface",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsRelease reports whether the command gives up a reference.
func (c CommandType) IsRelease() bool {
	switch c {
	case CmdReleaseColorPattern, CmdReleaseDrawTarget, CmdReleasePathBuilder,
		CmdReleasePath, CmdReleaseSourceSurface, CmdReleaseScaledFont,
		CmdReleaseSharedGLContext, CmdReleaseSharedSurface:
		return true
	}
	return false
}

// Command is one recorded library call.
type Command struct {
	Type CommandType
	// Handle is the handle the call acted on, or 0.
	Handle uintptr
	// Result is the handle the call returned, or 0.
	Result uintptr
}
