// Package display defines the contract between a rendering layer and
// the display backends that present its output.
//
// A backend owns exactly one display device and exposes a single
// off-screen drawing surface. Callers render into that surface and call
// Flip to present the result; they never touch device memory directly.
// Concrete backends live in sub-packages, such as [fbdev] for
// memory-mapped Linux framebuffer devices.
package display

import (
	"errors"
	"os"

	"github.com/openrescue/display/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Debug reports whether the DISPLAY_DEBUG environment variable is set.
func Debug() bool {
	return debug
}

// Errors
var (
	ErrNotSupported = errors.New("display: not supported on this platform")
)

// Backend drives one display device through an init, flip, blank,
// close lifecycle.
//
// Backends are not safe for concurrent use: a single caller drives the
// whole lifecycle from one goroutine. After Close, only a fresh Init
// makes the backend usable again.
type Backend interface {
	// Init opens the device and returns the drawing surface. On
	// failure no resources stay acquired and callers must not retry
	// automatically.
	Init() (*pixel.Surface, error)

	// Flip presents the current contents of the drawing surface and
	// returns the same surface for the next frame.
	Flip() (*pixel.Surface, error)

	// Blank powers the display output down (true) or back up (false),
	// independent of the surface contents.
	Blank(on bool) error

	// Close releases the device and all surfaces. The drawing surface
	// is invalid afterwards. Close is safe to call after a failed Init
	// and safe to call more than once.
	Close() error
}
