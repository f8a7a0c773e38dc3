//go:build windows

package w32

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
)

var (
	moduser32   = syscall.NewLazyDLL("user32.dll")
	modkernel32 = syscall.NewLazyDLL("kernel32.dll")
	modopengl32 = syscall.NewLazyDLL("opengl32.dll")
)

var (
	procGetModuleHandle          = modkernel32.NewProc("GetModuleHandleW")
	procGetProcAddress           = modkernel32.NewProc("GetProcAddress")
	procFreeLibraryAndExitThread = modkernel32.NewProc("FreeLibraryAndExitThread")
)

type Module struct {
	h syscall.Handle
}

func (m *Module) handle() syscall.Handle {
	if m == nil {
		return 0
	}
	return m.h
}

// GetModule wraps GetModuleHandleW; an empty name yields the module used to
// create the calling process.
func GetModule(name string) (*Module, error) {
	var mn uintptr
	if name != "" {
		n, err := syscall.UTF16PtrFromString(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid module name")
		}
		mn = uintptr(unsafe.Pointer(n))
	}
	ret, _, err := procGetModuleHandle.Call(mn)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return nil, errors.Wrap(err, "error calling kernel32")
		}
		return nil, syscall.EINVAL
	}
	return &Module{h: syscall.Handle(ret)}, nil
}

// ProcAddress resolves an exported symbol by ANSI name, 0 when absent.
func (m *Module) ProcAddress(name string) uintptr {
	b, err := syscall.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	ret, _, _ := procGetProcAddress.Call(uintptr(m.handle()), uintptr(unsafe.Pointer(b)))
	return ret
}

// Unload frees the named module and exits the current thread. An injected
// overlay uses it to remove itself; it does not return on success.
func Unload(moduleName string) error {
	m, err := GetModule(moduleName)
	if err != nil {
		return errors.Wrap(err, "module not loaded")
	}
	procFreeLibraryAndExitThread.Call(uintptr(m.handle()), 0)
	return nil
}
