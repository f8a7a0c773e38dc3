package wm

// Window message constants.
// https://learn.microsoft.com/windows/win32/winmsg/about-messages-and-message-queues
const (
	SetCursor = 0x0020

	Size          = 0x0005
	Sizing        = 0x0214
	EnterSizeMove = 0x0231
	ExitSizeMove  = 0x0232

	KeyDown    = 0x0100
	KeyUp      = 0x0101
	Char       = 0x0102
	SysKeyDown = 0x0104
	SysKeyUp   = 0x0105

	MouseMove     = 0x0200
	LButtonDown   = 0x0201
	LButtonUp     = 0x0202
	LButtonDblClk = 0x0203
	RButtonDown   = 0x0204
	RButtonUp     = 0x0205
	RButtonDblClk = 0x0206
	MButtonDown   = 0x0207
	MButtonUp     = 0x0208
	MButtonDblClk = 0x0209
	MouseWheel    = 0x020A
	XButtonDown   = 0x020B
	XButtonUp     = 0x020C
	XButtonDblClk = 0x020D
	MouseHWheel   = 0x020E
	MouseLeave    = 0x02A3
)
