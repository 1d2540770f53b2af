package azure

import (
	"errors"
	"fmt"
)

// Sentinel errors. Panics raised by this package carry errors wrapping
// one of these, so recovering callers can match them with errors.Is.
var (
	// ErrAllocationFailed reports a null handle from an allocating call.
	ErrAllocationFailed = errors.New("azure: allocation failed")

	// ErrContractViolation reports a caller bug, such as a buffer shorter
	// than stride*height.
	ErrContractViolation = errors.New("azure: contract violation")

	// ErrUnknownSurfaceFormat reports a surface format code outside the
	// four known formats.
	ErrUnknownSurfaceFormat = errors.New("azure: unknown surface format")

	// ErrPathBuilderFinished is recorded when a finished PathBuilder is
	// used again.
	ErrPathBuilderFinished = errors.New("azure: path builder already finished")

	// ErrReleased reports use of a wrapper after Release.
	ErrReleased = errors.New("azure: use of released resource")

	// ErrNoLibrary reports that no library is pinned or registered.
	ErrNoLibrary = errors.New("azure: no library available")
)

func allocationFailed(call string) error {
	return fmt.Errorf("azure: %s returned a null handle: %w", call, ErrAllocationFailed)
}

func contractViolation(format string, args ...any) error {
	return fmt.Errorf("azure: %s: %w", fmt.Sprintf(format, args...), ErrContractViolation)
}

func released(kind string) error {
	return fmt.Errorf("azure: %s: %w", kind, ErrReleased)
}
