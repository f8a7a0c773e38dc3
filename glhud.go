// Package glhud renders an immediate-mode UI overlay from inside another
// process's OpenGL render loop. The host's frame-present call and window
// procedure are intercepted elsewhere; the two hook bodies call into a single
// App record here, which owns its own GL context and swaps it in and out
// around every frame so the host's context state is never disturbed.
package glhud

import (
	"github.com/elliotmr/glhud/paint"
	"github.com/elliotmr/glhud/ui"
	"github.com/pkg/errors"
)

// Native handle types, mirroring the win32 originals. They are carried
// opaquely; only the Platform implementation dereferences them.
type (
	HDC   uintptr
	HWND  uintptr
	HGLRC uintptr
)

// Unrecoverable protocol violations. A caller receiving one of these must
// tear the overlay down; a half-initialized GL context cannot be reasoned
// about, so there is no retry path.
var (
	ErrAlreadyInit   = errors.New("app already initialized")
	ErrNotInit       = errors.New("app not initialized")
	ErrInvalidWindow = errors.New("invalid output window handle")
)

// UIFn declares the overlay UI each frame. It owns no state of its own: it is
// handed the framework context and an exclusive reference to the caller state
// stored in the App record.
type UIFn[T any] func(ctx ui.Context, state *T)

// Platform is the native graphics boundary: context creation and exchange,
// window geometry, clipboard. The win32/wgl implementation is the production
// one; tests substitute fakes.
type Platform interface {
	// LoadGL resolves the driver entry points and returns the GL dispatch
	// used by the paint pipeline. Called once, during Init.
	LoadGL() (paint.Backend, error)

	CurrentContext() HGLRC
	CreateContext(hdc HDC) (HGLRC, error)
	MakeCurrent(hdc HDC, glrc HGLRC) error

	ClientRect(hwnd HWND) (w, h uint32, err error)

	// SetClipboardText forwards framework copy requests to the host OS.
	// Best effort: rendering does not depend on it.
	SetClipboardText(hwnd HWND, text string) error

	// NewCollector builds the message-to-event translator for the window.
	NewCollector(hwnd HWND) InputCollector
}

// InputCollector accumulates translated window messages between frames and
// surrenders them as one snapshot per render call.
type InputCollector interface {
	Process(msg uint32, wparam, lparam uintptr)
	Collect() ui.RawInput
}
