package paint

import (
	"testing"

	"github.com/elliotmr/glhud/paint/painttest"
	"github.com/elliotmr/glhud/ui"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPainter(t *testing.T) (*Painter, *painttest.Recorder) {
	t.Helper()
	r := painttest.New()
	p, err := NewPainter(r, zerolog.Nop())
	require.NoError(t, err)
	return p, r
}

func quad(tex ui.TextureID) ui.ClippedPrimitive {
	return ui.ClippedPrimitive{
		ClipRect: ui.NewRect(0, 0, 100, 100),
		Mesh: ui.Mesh{
			Indices: []uint32{0, 1, 2, 2, 3, 0},
			Vertices: []ui.Vertex{
				{Pos: ui.Pos2{X: 0, Y: 0}},
				{Pos: ui.Pos2{X: 10, Y: 0}},
				{Pos: ui.Pos2{X: 10, Y: 10}},
				{Pos: ui.Pos2{X: 0, Y: 10}},
			},
			Texture: tex,
		},
	}
}

func fontDelta() ui.TexturesDelta {
	return ui.TexturesDelta{
		Set: []ui.SetEntry{{
			ID: ui.FontAtlas,
			Delta: ui.ImageDelta{
				Image: ui.FontImage{Width: 2, Height: 2, Pixels: []float32{0, 0.5, 0.5, 1}},
			},
		}},
	}
}

func TestScissorRect(t *testing.T) {
	x, y, w, h := scissorRect(ui.NewRect(10, 10, 100, 50), 1.0, 800, 600)
	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(550), y)
	assert.Equal(t, int32(90), w)
	assert.Equal(t, int32(40), h)
}

func TestScissorRectClampsToScreen(t *testing.T) {
	x, y, w, h := scissorRect(ui.NewRect(-20, -20, 900, 700), 1.0, 800, 600)
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)
	assert.Equal(t, int32(800), w)
	assert.Equal(t, int32(600), h)
}

func TestScissorRectScalesByPixelsPerPoint(t *testing.T) {
	x, y, w, h := scissorRect(ui.NewRect(10, 10, 100, 50), 2.0, 800, 600)
	assert.Equal(t, int32(20), x)
	assert.Equal(t, int32(500), y)
	assert.Equal(t, int32(180), w)
	assert.Equal(t, int32(80), h)
}

func TestPaintIdempotentDrawSequence(t *testing.T) {
	prims := []ui.ClippedPrimitive{quad(ui.FontAtlas)}

	p1, r1 := newTestPainter(t)
	require.NoError(t, p1.Paint(1.0, prims, fontDelta(), 800, 600))

	p2, r2 := newTestPainter(t)
	require.NoError(t, p2.Paint(1.0, prims, fontDelta(), 800, 600))

	assert.Equal(t, r1.DrawCalls, r2.DrawCalls)
	assert.Equal(t, r1.Scissors, r2.Scissors)
	assert.Equal(t, r1.Calls, r2.Calls)
}

func TestPaintMissingTextureIsFatal(t *testing.T) {
	p, r := newTestPainter(t)
	prims := []ui.ClippedPrimitive{quad(ui.TextureID{User: true, ID: 5})}

	err := p.Paint(1.0, prims, ui.TexturesDelta{}, 800, 600)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTexture))
	assert.Empty(t, r.DrawCalls)
}

func TestPaintOrderingSetPaintFree(t *testing.T) {
	p, r := newTestPainter(t)

	delta := fontDelta()
	delta.Free = []ui.TextureID{ui.FontAtlas}

	// Same frame sets and frees the font texture; the mesh must still draw.
	require.NoError(t, p.Paint(1.0, []ui.ClippedPrimitive{quad(ui.FontAtlas)}, delta, 800, 600))
	assert.Len(t, r.DrawCalls, 1)
	assert.Len(t, r.DeletedTextures, 1)

	// After the free the id is gone.
	err := p.Paint(1.0, []ui.ClippedPrimitive{quad(ui.FontAtlas)}, ui.TexturesDelta{}, 800, 600)
	assert.True(t, errors.Is(err, ErrMissingTexture))
}

func TestPaintEmptyMeshSkipsDraw(t *testing.T) {
	p, r := newTestPainter(t)
	prim := ui.ClippedPrimitive{ClipRect: ui.NewRect(0, 0, 1, 1), Mesh: ui.Mesh{Texture: ui.FontAtlas}}

	require.NoError(t, p.Paint(1.0, []ui.ClippedPrimitive{prim}, fontDelta(), 800, 600))
	assert.Empty(t, r.DrawCalls)
}

func TestPaintSetsPremultipliedBlendAndScissor(t *testing.T) {
	p, r := newTestPainter(t)
	require.NoError(t, p.Paint(1.0, []ui.ClippedPrimitive{quad(ui.FontAtlas)}, fontDelta(), 800, 600))

	assert.Contains(t, r.Calls, "Enable(0x0BE2)")            // BLEND
	assert.Contains(t, r.Calls, "Enable(0x0C11)")            // SCISSOR_TEST
	assert.Contains(t, r.Calls, "Enable(0x8DB9)")            // FRAMEBUFFER_SRGB
	assert.Contains(t, r.Calls, "Disable(0x8DB9)")           // restored on return
	assert.Contains(t, r.Calls, "BlendFunc(0x0001, 0x0303)") // ONE, ONE_MINUS_SRC_ALPHA
	assert.Contains(t, r.Calls, "Viewport(0, 0, 800, 600)")
	assert.NotContains(t, r.Calls, "Disable(0x0C11)") // scissor left as-is
	assert.Equal(t, "Uniform2f(0, 800, 600)", mustFind(r, "Uniform2f"))
}

func mustFind(r *painttest.Recorder, prefix string) string {
	for _, c := range r.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			return c
		}
	}
	return ""
}

func TestRegisterNativeTexture(t *testing.T) {
	p, r := newTestPainter(t)
	id := p.RegisterNativeTexture(1234)
	assert.True(t, id.User)

	require.NoError(t, p.Paint(1.0, []ui.ClippedPrimitive{quad(id)}, ui.TexturesDelta{}, 800, 600))
	assert.Contains(t, r.BoundTextures, uint32(1234))
}
