package paint

import (
	"math"
	"unsafe"

	"github.com/elliotmr/glhud/ui"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Painter issues the GL draw calls for one frame of tessellated UI output.
// It owns the shader program, the shared vertex/index buffers and the texture
// store. Construction and painting must both run with the overlay's GL
// context current.
type Painter struct {
	b     Backend
	store *Store

	program  uint32
	vao      uint32
	indexBuf uint32
	posBuf   uint32
	tcBuf    uint32
	colorBuf uint32

	uScreenSize int32
	uSampler    int32
	aPos        uint32
	aTc         uint32
	aSrgba      uint32
}

func NewPainter(b Backend, log zerolog.Logger) (*Painter, error) {
	vs, err := compileShader(b, vertexSource, glVertexShader)
	if err != nil {
		return nil, errors.Wrap(err, "vertex stage")
	}
	fs, err := compileShader(b, fragmentSource, glFragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "fragment stage")
	}
	program, err := linkProgram(b, vs, fs)
	if err != nil {
		return nil, err
	}

	p := &Painter{
		b:           b,
		store:       NewStore(b, log),
		program:     program,
		uScreenSize: b.GetUniformLocation(program, "u_screen_size"),
		uSampler:    b.GetUniformLocation(program, "u_sampler"),
	}

	for _, attr := range []struct {
		name string
		dst  *uint32
	}{
		{"a_pos", &p.aPos},
		{"a_tc", &p.aTc},
		{"a_srgba", &p.aSrgba},
	} {
		loc := b.GetAttribLocation(program, attr.name)
		if loc < 0 {
			return nil, errors.Errorf("attribute %s missing from linked program", attr.name)
		}
		*attr.dst = uint32(loc)
	}

	b.GenVertexArrays(1, &p.vao)
	b.BindVertexArray(p.vao)
	b.GenBuffers(1, &p.indexBuf)
	b.GenBuffers(1, &p.posBuf)
	b.GenBuffers(1, &p.tcBuf)
	b.GenBuffers(1, &p.colorBuf)

	return p, nil
}

// Store exposes the painter's texture store for direct registration.
func (p *Painter) Store() *Store { return p.store }

// RegisterNativeTexture keys an existing host-owned GL texture for use from
// UI meshes. The handle is not adopted.
func (p *Painter) RegisterNativeTexture(glID uint32) ui.TextureID {
	return p.store.RegisterExternal(glID)
}

// RegisterUserTexture creates a painter-owned texture from raw pixels; it is
// uploaded during the next paint.
func (p *Painter) RegisterUserTexture(w, h int, pixels []ui.Color32, filter ui.TextureFilter) (ui.TextureID, error) {
	return p.store.RegisterUploaded(w, h, pixels, filter)
}

// Paint runs one frame: applies the delta's set entries, paints every
// primitive in order, then applies the frees. That ordering makes a delta
// that updates and frees the same texture within one frame behave correctly.
// Scissor and blend state are left enabled on return; only the framebuffer
// color-space flag is restored.
func (p *Painter) Paint(pixelsPerPoint float32, prims []ui.ClippedPrimitive, delta ui.TexturesDelta, clientW, clientH uint32) error {
	for _, set := range delta.Set {
		if err := p.store.ApplyDelta(set.ID, set.Delta); err != nil {
			return err
		}
	}

	if err := p.paintPrimitives(pixelsPerPoint, prims, clientW, clientH); err != nil {
		return err
	}

	for _, id := range delta.Free {
		p.store.Free(id)
	}
	return nil
}

func (p *Painter) paintPrimitives(pixelsPerPoint float32, prims []ui.ClippedPrimitive, clientW, clientH uint32) error {
	p.store.MaterializePending()

	b := p.b
	// Blending happens on linear values; without the sRGB framebuffer flag
	// the host's default framebuffer darkens and oversaturates the overlay.
	b.Enable(glFramebufferSRGB)
	b.Enable(glScissorTest)
	b.Enable(glBlend)
	b.BlendFunc(glOne, glOneMinusSrcAlpha) // premultiplied alpha
	b.UseProgram(p.program)
	b.ActiveTexture(glTexture0)

	b.Uniform2f(p.uScreenSize,
		float32(clientW)/pixelsPerPoint,
		float32(clientH)/pixelsPerPoint)
	b.Uniform1i(p.uSampler, 0)
	b.Viewport(0, 0, int32(clientW), int32(clientH))

	for _, prim := range prims {
		if err := p.paintMesh(&prim.Mesh, prim.ClipRect, pixelsPerPoint, clientW, clientH); err != nil {
			b.Disable(glFramebufferSRGB)
			return err
		}
	}

	b.Disable(glFramebufferSRGB)
	return nil
}

func (p *Painter) paintMesh(mesh *ui.Mesh, clip ui.Rect, pixelsPerPoint float32, clientW, clientH uint32) error {
	if len(mesh.Indices) == 0 {
		return nil
	}
	if err := p.store.Bind(mesh.Texture); err != nil {
		return err
	}

	b := p.b
	x, y, w, h := scissorRect(clip, pixelsPerPoint, clientW, clientH)
	b.Scissor(x, y, w, h)

	// The wire format caps meshes at 65535 vertices, so indices fit 16 bits.
	indices := make([]uint16, len(mesh.Indices))
	for i, idx := range mesh.Indices {
		indices[i] = uint16(idx)
	}

	positions := make([]float32, 0, 2*len(mesh.Vertices))
	texCoords := make([]float32, 0, 2*len(mesh.Vertices))
	colors := make([]uint8, 0, 4*len(mesh.Vertices))
	for _, v := range mesh.Vertices {
		positions = append(positions, v.Pos.X, v.Pos.Y)
		texCoords = append(texCoords, v.UV.X, v.UV.Y)
		colors = append(colors, v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}

	b.BindVertexArray(p.vao)
	b.BindBuffer(glElementArrayBuffer, p.indexBuf)
	b.BufferData(glElementArrayBuffer, len(indices)*2, unsafe.Pointer(&indices[0]), glStreamDraw)

	b.BindBuffer(glArrayBuffer, p.posBuf)
	b.BufferData(glArrayBuffer, len(positions)*4, unsafe.Pointer(&positions[0]), glStreamDraw)
	b.VertexAttribPointer(p.aPos, 2, glFloat, false, 0, 0)
	b.EnableVertexAttribArray(p.aPos)

	b.BindBuffer(glArrayBuffer, p.tcBuf)
	b.BufferData(glArrayBuffer, len(texCoords)*4, unsafe.Pointer(&texCoords[0]), glStreamDraw)
	b.VertexAttribPointer(p.aTc, 2, glFloat, false, 0, 0)
	b.EnableVertexAttribArray(p.aTc)

	b.BindBuffer(glArrayBuffer, p.colorBuf)
	b.BufferData(glArrayBuffer, len(colors), unsafe.Pointer(&colors[0]), glStreamDraw)
	b.VertexAttribPointer(p.aSrgba, 4, glUnsignedByte, false, 0, 0)
	b.EnableVertexAttribArray(p.aSrgba)

	b.DrawElements(glTriangles, int32(len(indices)), glUnsignedShort, 0)

	b.DisableVertexAttribArray(p.aPos)
	b.DisableVertexAttribArray(p.aTc)
	b.DisableVertexAttribArray(p.aSrgba)
	return nil
}

// scissorRect converts a clip rectangle in points to a GL scissor box in
// pixels: scaled by pixelsPerPoint, clamped to the client area and flipped
// vertically, since GL scissor origin is the bottom-left corner while clip
// rectangles originate at the top-left.
func scissorRect(clip ui.Rect, pixelsPerPoint float32, clientW, clientH uint32) (x, y, w, h int32) {
	sw := float32(clientW)
	sh := float32(clientH)

	minX := clamp(clip.Min.X*pixelsPerPoint, 0, sw)
	minY := clamp(clip.Min.Y*pixelsPerPoint, 0, sh)
	maxX := clamp(clip.Max.X*pixelsPerPoint, minX, sw)
	maxY := clamp(clip.Max.Y*pixelsPerPoint, minY, sh)

	x0 := int32(math.Round(float64(minX)))
	y0 := int32(math.Round(float64(minY)))
	x1 := int32(math.Round(float64(maxX)))
	y1 := int32(math.Round(float64(maxY)))

	return x0, int32(clientH) - y1, x1 - x0, y1 - y0
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
