package ui

// Modifiers is the keyboard modifier state at the time of an event.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
}

type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
	PointerExtra1
	PointerExtra2
)

// Key is a framework key code. Values mirror the framework's logical keys,
// not virtual-key codes; the input collector owns the mapping.
type Key int

const (
	KeyNone Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyA
	KeyC
	KeyR
	KeyV
	KeyX
	KeyZ
)

// Event is one translated input event.
type Event interface{ inputEvent() }

type PointerMoved struct {
	Pos Pos2
}

type PointerGone struct{}

type PointerButtonEvent struct {
	Pos       Pos2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

type Scroll struct {
	Delta Vec2
}

type KeyEvent struct {
	Key       Key
	Pressed   bool
	Modifiers Modifiers
}

type Text struct {
	Text string
}

func (PointerMoved) inputEvent()       {}
func (PointerGone) inputEvent()        {}
func (PointerButtonEvent) inputEvent() {}
func (Scroll) inputEvent()             {}
func (KeyEvent) inputEvent()           {}
func (Text) inputEvent()               {}

// RawInput is the aggregated input snapshot consumed once per render call.
type RawInput struct {
	ScreenRect *Rect
	Modifiers  Modifiers
	Events     []Event
}
