//go:build windows

package w32

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	procOpenClipboard    = moduser32.NewProc("OpenClipboard")
	procCloseClipboard   = moduser32.NewProc("CloseClipboard")
	procEmptyClipboard   = moduser32.NewProc("EmptyClipboard")
	procSetClipboardData = moduser32.NewProc("SetClipboardData")
	procGlobalAlloc      = modkernel32.NewProc("GlobalAlloc")
	procGlobalFree       = modkernel32.NewProc("GlobalFree")
	procGlobalLock       = modkernel32.NewProc("GlobalLock")
	procGlobalUnlock     = modkernel32.NewProc("GlobalUnlock")
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

// SetClipboardText places text on the clipboard as CF_UNICODETEXT, with the
// window as clipboard owner.
func SetClipboardText(hwnd uintptr, text string) error {
	buf, err := windows.UTF16FromString(text)
	if err != nil {
		return errors.Wrap(err, "invalid clipboard text")
	}

	ret, _, errno := procOpenClipboard.Call(hwnd)
	if ret == 0 {
		return errors.Wrap(errno, "OpenClipboard")
	}
	defer procCloseClipboard.Call()

	procEmptyClipboard.Call()

	size := uintptr(len(buf) * 2)
	hMem, _, errno := procGlobalAlloc.Call(gmemMoveable, size)
	if hMem == 0 {
		return errors.Wrap(errno, "GlobalAlloc")
	}
	ptr, _, errno := procGlobalLock.Call(hMem)
	if ptr == 0 {
		procGlobalFree.Call(hMem)
		return errors.Wrap(errno, "GlobalLock")
	}
	for i, u := range buf {
		*(*uint16)(unsafe.Pointer(ptr + uintptr(i)*2)) = u
	}
	procGlobalUnlock.Call(hMem)

	// On success the system owns the memory handle.
	ret, _, errno = procSetClipboardData.Call(cfUnicodeText, hMem)
	if ret == 0 {
		procGlobalFree.Call(hMem)
		if errno.(syscall.Errno) != 0 {
			return errors.Wrap(errno, "SetClipboardData")
		}
		return syscall.EINVAL
	}
	return nil
}
