//go:build !linux && !darwin

package native

import (
	"fmt"
	"runtime"

	"github.com/gogpu/azure/backend"
)

func open(path string, _ ...Option) (backend.Library, error) {
	return nil, fmt.Errorf("native: %s: dynamic loading unsupported on %s: %w", path, runtime.GOOS, backend.ErrLibraryNotAvailable)
}
