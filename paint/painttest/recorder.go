// Package painttest provides a recording GL backend so pipeline behavior can
// be asserted without a live context.
package painttest

import (
	"fmt"
	"unsafe"
)

// Recorder satisfies the paint Backend interface. Object names are handed
// out sequentially; every call is appended to Calls in a stable textual form
// so two identical frames produce identical traces.
type Recorder struct {
	Calls []string

	// FailCompile / FailLink force shader and program status queries to
	// report failure, with Log as the diagnostic text.
	FailCompile bool
	FailLink    bool
	Log         string

	// Draw bookkeeping for assertions.
	DrawCalls       []int32
	BoundTextures   []uint32
	DeletedTextures []uint32
	Scissors        [][4]int32

	nextName uint32
}

func New() *Recorder {
	return &Recorder{nextName: 1}
}

func (r *Recorder) record(format string, args ...interface{}) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) alloc() uint32 {
	n := r.nextName
	r.nextName++
	return n
}

func (r *Recorder) Enable(cap uint32)  { r.record("Enable(0x%04X)", cap) }
func (r *Recorder) Disable(cap uint32) { r.record("Disable(0x%04X)", cap) }
func (r *Recorder) BlendFunc(sfactor, dfactor uint32) {
	r.record("BlendFunc(0x%04X, 0x%04X)", sfactor, dfactor)
}

func (r *Recorder) Viewport(x, y, w, h int32) { r.record("Viewport(%d, %d, %d, %d)", x, y, w, h) }

func (r *Recorder) Scissor(x, y, w, h int32) {
	r.Scissors = append(r.Scissors, [4]int32{x, y, w, h})
	r.record("Scissor(%d, %d, %d, %d)", x, y, w, h)
}

func (r *Recorder) UseProgram(program uint32) { r.record("UseProgram(%d)", program) }

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	switch name {
	case "u_screen_size":
		return 0
	case "u_sampler":
		return 1
	}
	return 2
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	switch name {
	case "a_pos":
		return 0
	case "a_tc":
		return 1
	case "a_srgba":
		return 2
	}
	return -1
}

func (r *Recorder) Uniform1i(location, v int32) { r.record("Uniform1i(%d, %d)", location, v) }
func (r *Recorder) Uniform2f(location int32, v0, v1 float32) {
	r.record("Uniform2f(%d, %g, %g)", location, v0, v1)
}

func (r *Recorder) GenVertexArrays(n int32, arrays *uint32) {
	*arrays = r.alloc()
	r.record("GenVertexArrays(%d) -> %d", n, *arrays)
}

func (r *Recorder) BindVertexArray(array uint32) { r.record("BindVertexArray(%d)", array) }

func (r *Recorder) GenBuffers(n int32, buffers *uint32) {
	*buffers = r.alloc()
	r.record("GenBuffers(%d) -> %d", n, *buffers)
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	r.record("BindBuffer(0x%04X, %d)", target, buffer)
}

func (r *Recorder) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	r.record("BufferData(0x%04X, %d bytes)", target, size)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer(%d, %d, 0x%04X, %t, %d, %d)", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray(%d)", index)
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray(%d)", index)
}

func (r *Recorder) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	r.DrawCalls = append(r.DrawCalls, count)
	r.record("DrawElements(0x%04X, %d, 0x%04X)", mode, count, xtype)
}

func (r *Recorder) ActiveTexture(texture uint32) { r.record("ActiveTexture(0x%04X)", texture) }

func (r *Recorder) GenTextures(n int32, textures *uint32) {
	*textures = r.alloc()
	r.record("GenTextures(%d) -> %d", n, *textures)
}

func (r *Recorder) BindTexture(target, texture uint32) {
	r.BoundTextures = append(r.BoundTextures, texture)
	r.record("BindTexture(0x%04X, %d)", target, texture)
}

func (r *Recorder) DeleteTextures(n int32, textures *uint32) {
	r.DeletedTextures = append(r.DeletedTextures, *textures)
	r.record("DeleteTextures(%d, %d)", n, *textures)
}

func (r *Recorder) TexParameteri(target, pname uint32, param int32) {
	r.record("TexParameteri(0x%04X, 0x%04X, %d)", target, pname, param)
}

func (r *Recorder) PixelStorei(pname uint32, param int32) {
	r.record("PixelStorei(0x%04X, %d)", pname, param)
}

func (r *Recorder) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	r.record("TexImage2D(0x%04X, %d, %dx%d)", target, level, width, height)
}

func (r *Recorder) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	r.record("TexSubImage2D(0x%04X, %d, (%d,%d) %dx%d)", target, level, xoffset, yoffset, width, height)
}

func (r *Recorder) CreateShader(xtype uint32) uint32 {
	id := r.alloc()
	r.record("CreateShader(0x%04X) -> %d", xtype, id)
	return id
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.record("ShaderSource(%d, %d bytes)", shader, len(source))
}

func (r *Recorder) CompileShader(shader uint32) { r.record("CompileShader(%d)", shader) }

func (r *Recorder) GetShaderiv(shader, pname uint32, params *int32) {
	if r.FailCompile {
		*params = 0
	} else {
		*params = 1
	}
}

func (r *Recorder) ShaderInfoLog(shader uint32) string { return r.Log }

func (r *Recorder) DeleteShader(shader uint32) { r.record("DeleteShader(%d)", shader) }

func (r *Recorder) CreateProgram() uint32 {
	id := r.alloc()
	r.record("CreateProgram() -> %d", id)
	return id
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader(%d, %d)", program, shader)
}

func (r *Recorder) LinkProgram(program uint32) { r.record("LinkProgram(%d)", program) }

func (r *Recorder) GetProgramiv(program, pname uint32, params *int32) {
	if r.FailLink {
		*params = 0
	} else {
		*params = 1
	}
}

func (r *Recorder) ProgramInfoLog(program uint32) string { return r.Log }
