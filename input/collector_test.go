//go:build windows

package input

import (
	"testing"

	"github.com/elliotmr/glhud/ui"
	"github.com/elliotmr/glhud/w32/types/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lparamXY(x, y int16) uintptr {
	return uintptr(uint16(x)) | uintptr(uint16(y))<<16
}

func TestMouseMove(t *testing.T) {
	c := NewCollector(1)
	c.Process(wm.MouseMove, 0, lparamXY(30, 40))

	in := c.Collect()
	require.Len(t, in.Events, 1)
	assert.Equal(t, ui.PointerMoved{Pos: ui.Pos2{X: 30, Y: 40}}, in.Events[0])
}

func TestCollectDrainsEvents(t *testing.T) {
	c := NewCollector(1)
	c.Process(wm.MouseMove, 0, lparamXY(1, 1))

	assert.Len(t, c.Collect().Events, 1)
	assert.Empty(t, c.Collect().Events)
}

func TestButtonsCarryModifiers(t *testing.T) {
	c := NewCollector(1)
	c.Process(wm.KeyDown, 0x11 /* VK_CONTROL */, 0)
	c.Process(wm.LButtonDown, 0, lparamXY(5, 6))
	c.Process(wm.LButtonUp, 0, lparamXY(5, 6))

	in := c.Collect()
	require.Len(t, in.Events, 2)
	down := in.Events[0].(ui.PointerButtonEvent)
	assert.Equal(t, ui.PointerPrimary, down.Button)
	assert.True(t, down.Pressed)
	assert.True(t, down.Modifiers.Ctrl)
	up := in.Events[1].(ui.PointerButtonEvent)
	assert.False(t, up.Pressed)
	assert.True(t, in.Modifiers.Ctrl)
}

func TestExtraButtons(t *testing.T) {
	c := NewCollector(1)
	c.Process(wm.XButtonDown, 1<<16, lparamXY(0, 0))
	c.Process(wm.XButtonDown, 2<<16, lparamXY(0, 0))

	in := c.Collect()
	require.Len(t, in.Events, 2)
	assert.Equal(t, ui.PointerExtra1, in.Events[0].(ui.PointerButtonEvent).Button)
	assert.Equal(t, ui.PointerExtra2, in.Events[1].(ui.PointerButtonEvent).Button)
}

func TestWheelScrollsInPoints(t *testing.T) {
	c := NewCollector(1)
	c.Process(wm.MouseWheel, uintptr(uint16(120))<<16, 0)
	c.Process(wm.MouseWheel, uintptr(uint16(-240))<<16, 0)

	in := c.Collect()
	require.Len(t, in.Events, 2)
	assert.Equal(t, ui.Scroll{Delta: ui.Vec2{Y: scrollStep}}, in.Events[0])
	assert.Equal(t, ui.Scroll{Delta: ui.Vec2{Y: -2 * scrollStep}}, in.Events[1])
}

func TestKeyMapping(t *testing.T) {
	c := NewCollector(1)
	c.Process(wm.KeyDown, 0x1B /* VK_ESCAPE */, 0)
	c.Process(wm.KeyUp, 0x1B, 0)
	c.Process(wm.KeyDown, 'Z', 0)
	c.Process(wm.KeyDown, 0xFF /* unmapped */, 0)

	in := c.Collect()
	require.Len(t, in.Events, 3)
	esc := in.Events[0].(ui.KeyEvent)
	assert.Equal(t, ui.KeyEscape, esc.Key)
	assert.True(t, esc.Pressed)
	assert.False(t, in.Events[1].(ui.KeyEvent).Pressed)
	assert.Equal(t, ui.KeyZ, in.Events[2].(ui.KeyEvent).Key)
}

func TestCharProducesText(t *testing.T) {
	c := NewCollector(1)
	c.Process(wm.Char, uintptr('h'), 0)
	c.Process(wm.Char, 0x08 /* backspace, not text */, 0)

	in := c.Collect()
	require.Len(t, in.Events, 1)
	assert.Equal(t, ui.Text{Text: "h"}, in.Events[0])
}
