//go:build windows

package w32

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
)

var (
	procGetClientRect = moduser32.NewProc("GetClientRect")
	procWindowFromDC  = moduser32.NewProc("WindowFromDC")
)

// https://learn.microsoft.com/windows/win32/api/windef/ns-windef-rect
type rect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

// GetClientSize returns the window's client area in pixels.
func GetClientSize(hwnd uintptr) (w, h uint32, err error) {
	var r rect
	ret, _, errno := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		if errno.(syscall.Errno) != 0 {
			return 0, 0, errors.Wrap(errno, "GetClientRect")
		}
		return 0, 0, syscall.EINVAL
	}
	return uint32(r.right - r.left), uint32(r.bottom - r.top), nil
}

// WindowFromDC returns the window whose device context was handed to the
// present call, 0 when the DC is not tied to a window. Hook installers use it
// to find the overlay target on the first intercepted present.
func WindowFromDC(hdc uintptr) uintptr {
	ret, _, _ := procWindowFromDC.Call(hdc)
	return ret
}
