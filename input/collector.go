//go:build windows

package input

import (
	aw "github.com/AllenDang/w32"

	"github.com/elliotmr/glhud/ui"
	"github.com/elliotmr/glhud/w32/types/wm"
)

// One wheel notch scrolls this many points.
const scrollStep = 40.0

// Collector turns window messages into framework input events. Process runs
// on the message-pump thread, Collect on the present thread; the owning
// application record serializes them under its lock, so the collector itself
// carries none.
type Collector struct {
	hwnd      uintptr
	events    []ui.Event
	modifiers ui.Modifiers
	lastPos   ui.Pos2
}

func NewCollector(hwnd uintptr) *Collector {
	return &Collector{hwnd: hwnd}
}

// Collect surrenders the events accumulated since the previous call as one
// aggregated snapshot.
func (c *Collector) Collect() ui.RawInput {
	in := ui.RawInput{
		Modifiers: c.modifiers,
		Events:    c.events,
	}
	c.events = nil
	return in
}

func (c *Collector) Process(msg uint32, wparam, lparam uintptr) {
	switch msg {
	case wm.MouseMove:
		c.lastPos = pointFromLParam(lparam)
		c.push(ui.PointerMoved{Pos: c.lastPos})

	case wm.MouseLeave:
		c.push(ui.PointerGone{})

	case wm.LButtonDown, wm.LButtonDblClk:
		c.button(ui.PointerPrimary, true, lparam)
	case wm.LButtonUp:
		c.button(ui.PointerPrimary, false, lparam)
	case wm.RButtonDown, wm.RButtonDblClk:
		c.button(ui.PointerSecondary, true, lparam)
	case wm.RButtonUp:
		c.button(ui.PointerSecondary, false, lparam)
	case wm.MButtonDown, wm.MButtonDblClk:
		c.button(ui.PointerMiddle, true, lparam)
	case wm.MButtonUp:
		c.button(ui.PointerMiddle, false, lparam)

	case wm.XButtonDown, wm.XButtonDblClk:
		c.button(xbutton(wparam), true, lparam)
	case wm.XButtonUp:
		c.button(xbutton(wparam), false, lparam)

	case wm.MouseWheel:
		c.push(ui.Scroll{Delta: ui.Vec2{Y: wheelDelta(wparam) * scrollStep}})
	case wm.MouseHWheel:
		c.push(ui.Scroll{Delta: ui.Vec2{X: wheelDelta(wparam) * scrollStep}})

	case wm.KeyDown, wm.SysKeyDown:
		c.key(wparam, true)
	case wm.KeyUp, wm.SysKeyUp:
		c.key(wparam, false)

	case wm.Char:
		if r := rune(wparam); r >= 0x20 && r != 0x7F {
			c.push(ui.Text{Text: string(r)})
		}
	}
}

func (c *Collector) push(ev ui.Event) {
	c.events = append(c.events, ev)
}

func (c *Collector) button(btn ui.PointerButton, pressed bool, lparam uintptr) {
	c.lastPos = pointFromLParam(lparam)
	c.push(ui.PointerButtonEvent{
		Pos:       c.lastPos,
		Button:    btn,
		Pressed:   pressed,
		Modifiers: c.modifiers,
	})
}

func (c *Collector) key(wparam uintptr, pressed bool) {
	switch int(wparam) {
	case aw.VK_SHIFT:
		c.modifiers.Shift = pressed
		return
	case aw.VK_CONTROL:
		c.modifiers.Ctrl = pressed
		return
	case aw.VK_MENU:
		c.modifiers.Alt = pressed
		return
	}
	if k := mapVirtualKey(int(wparam)); k != ui.KeyNone {
		c.push(ui.KeyEvent{Key: k, Pressed: pressed, Modifiers: c.modifiers})
	}
}

func mapVirtualKey(vk int) ui.Key {
	switch vk {
	case aw.VK_DOWN:
		return ui.KeyArrowDown
	case aw.VK_LEFT:
		return ui.KeyArrowLeft
	case aw.VK_RIGHT:
		return ui.KeyArrowRight
	case aw.VK_UP:
		return ui.KeyArrowUp
	case aw.VK_ESCAPE:
		return ui.KeyEscape
	case aw.VK_TAB:
		return ui.KeyTab
	case aw.VK_BACK:
		return ui.KeyBackspace
	case aw.VK_RETURN:
		return ui.KeyEnter
	case aw.VK_SPACE:
		return ui.KeySpace
	case aw.VK_INSERT:
		return ui.KeyInsert
	case aw.VK_DELETE:
		return ui.KeyDelete
	case aw.VK_HOME:
		return ui.KeyHome
	case aw.VK_END:
		return ui.KeyEnd
	case aw.VK_PRIOR:
		return ui.KeyPageUp
	case aw.VK_NEXT:
		return ui.KeyPageDown
	case 'A':
		return ui.KeyA
	case 'C':
		return ui.KeyC
	case 'R':
		return ui.KeyR
	case 'V':
		return ui.KeyV
	case 'X':
		return ui.KeyX
	case 'Z':
		return ui.KeyZ
	}
	return ui.KeyNone
}

func pointFromLParam(lparam uintptr) ui.Pos2 {
	x := int16(lparam & 0xFFFF)
	y := int16((lparam >> 16) & 0xFFFF)
	return ui.Pos2{X: float32(x), Y: float32(y)}
}

func wheelDelta(wparam uintptr) float32 {
	// WHEEL_DELTA units, signed, in the high word.
	return float32(int16((wparam>>16)&0xFFFF)) / 120.0
}

func xbutton(wparam uintptr) ui.PointerButton {
	if (wparam>>16)&0xFFFF == 2 {
		return ui.PointerExtra2
	}
	return ui.PointerExtra1
}
