//go:build windows

package w32

var (
	procAllocConsole = modkernel32.NewProc("AllocConsole")
	procFreeConsole  = modkernel32.NewProc("FreeConsole")
)

// AllocConsole attaches a console to the process so the overlay's log output
// has somewhere to go inside a GUI host. No-op failure is fine: the host may
// already own a console.
func AllocConsole() {
	procAllocConsole.Call()
}

func FreeConsole() {
	procFreeConsole.Call()
}
