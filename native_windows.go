//go:build windows

package glhud

import (
	"github.com/elliotmr/glhud/input"
	"github.com/elliotmr/glhud/paint"
	"github.com/elliotmr/glhud/w32"
)

// New builds an App against the native win32/wgl platform. One per process;
// the record itself enforces single initialization.
func New[T any]() *App[T] {
	return NewWithPlatform[T](nativePlatform{}, defaultLogger())
}

type nativePlatform struct{}

func (nativePlatform) LoadGL() (paint.Backend, error) {
	return paint.NewGLBackend(w32.GLProcAddress)
}

func (nativePlatform) CurrentContext() HGLRC {
	return HGLRC(w32.GetCurrentContext())
}

func (nativePlatform) CreateContext(hdc HDC) (HGLRC, error) {
	glrc, err := w32.CreateContext(uintptr(hdc))
	return HGLRC(glrc), err
}

func (nativePlatform) MakeCurrent(hdc HDC, glrc HGLRC) error {
	return w32.MakeCurrent(uintptr(hdc), uintptr(glrc))
}

func (nativePlatform) ClientRect(hwnd HWND) (uint32, uint32, error) {
	return w32.GetClientSize(uintptr(hwnd))
}

func (nativePlatform) SetClipboardText(hwnd HWND, text string) error {
	return w32.SetClipboardText(uintptr(hwnd), text)
}

func (nativePlatform) NewCollector(hwnd HWND) InputCollector {
	return input.NewCollector(uintptr(hwnd))
}
