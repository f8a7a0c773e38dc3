//go:build windows

package w32

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
)

var (
	procWglCreateContext     = modopengl32.NewProc("wglCreateContext")
	procWglDeleteContext     = modopengl32.NewProc("wglDeleteContext")
	procWglGetCurrentContext = modopengl32.NewProc("wglGetCurrentContext")
	procWglMakeCurrent       = modopengl32.NewProc("wglMakeCurrent")
	procWglGetProcAddress    = modopengl32.NewProc("wglGetProcAddress")
)

// CreateContext creates a GL rendering context for the device context.
// https://learn.microsoft.com/windows/win32/api/wingdi/nf-wingdi-wglcreatecontext
func CreateContext(hdc uintptr) (uintptr, error) {
	ret, _, err := procWglCreateContext.Call(hdc)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return 0, errors.Wrap(err, "wglCreateContext")
		}
		return 0, syscall.EINVAL
	}
	return ret, nil
}

func DeleteContext(glrc uintptr) error {
	ret, _, err := procWglDeleteContext.Call(glrc)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return errors.Wrap(err, "wglDeleteContext")
		}
		return syscall.EINVAL
	}
	return nil
}

// GetCurrentContext returns the calling thread's current GL context, 0 when
// none is current.
func GetCurrentContext() uintptr {
	ret, _, _ := procWglGetCurrentContext.Call()
	return ret
}

// MakeCurrent makes the context current on the calling thread. A zero glrc
// releases the current context.
func MakeCurrent(hdc, glrc uintptr) error {
	ret, _, err := procWglMakeCurrent.Call(hdc, glrc)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return errors.Wrap(err, "wglMakeCurrent")
		}
		return syscall.EINVAL
	}
	return nil
}

// GLProcAddress resolves a GL entry point against the loaded driver: the
// opengl32 export table first, then wglGetProcAddress for extension and
// post-1.1 functions. A name neither knows resolves to nil rather than an
// error; callers treat the entry point as unavailable.
func GLProcAddress(name string) unsafe.Pointer {
	if addr := opengl32Module().ProcAddress(name); addr != 0 {
		return unsafe.Pointer(addr)
	}
	b, err := syscall.BytePtrFromString(name)
	if err != nil {
		return nil
	}
	ret, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(b)))
	return unsafe.Pointer(ret)
}

var opengl32 *Module

func opengl32Module() *Module {
	if opengl32 == nil {
		opengl32 = &Module{h: syscall.Handle(modopengl32.Handle())}
	}
	return opengl32
}
