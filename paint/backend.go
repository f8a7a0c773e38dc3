// Package paint turns the UI framework's per-frame output into GL draw calls
// against a context the caller has already made current.
package paint

import "unsafe"

// GL constants used by the pipeline. Values are the standard GL enums so a
// Backend can pass them straight through.
const (
	glBlend           = 0x0BE2
	glScissorTest     = 0x0C11
	glFramebufferSRGB = 0x8DB9

	glOne              = 1
	glOneMinusSrcAlpha = 0x0303

	glTexture0      = 0x84C0
	glTriangles     = 0x0004
	glUnsignedByte  = 0x1401
	glUnsignedShort = 0x1403
	glFloat         = 0x1406

	glRGBA = 0x1908
	glRed  = 0x1903

	glTexture2D        = 0x0DE1
	glTextureMagFilter = 0x2800
	glTextureMinFilter = 0x2801
	glTextureWrapS     = 0x2802
	glTextureWrapT     = 0x2803
	glNearest          = 0x2600
	glLinear           = 0x2601
	glClampToEdge      = 0x812F
	glTextureSwizzleA  = 0x8E45
	glUnpackAlignment  = 0x0CF5

	glArrayBuffer        = 0x8892
	glElementArrayBuffer = 0x8893
	glStreamDraw         = 0x88E0

	glVertexShader   = 0x8B31
	glFragmentShader = 0x8B30
	glCompileStatus  = 0x8B81
	glLinkStatus     = 0x8B82
	glInfoLogLength  = 0x8B84
)

// Backend is the slice of the GL API the pipeline needs. The production
// implementation wraps the loaded driver entry points; tests substitute a
// recorder so pipeline behavior is checkable without a GPU.
type Backend interface {
	Enable(cap uint32)
	Disable(cap uint32)
	BlendFunc(sfactor, dfactor uint32)
	Viewport(x, y, w, h int32)
	Scissor(x, y, w, h int32)

	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform2f(location int32, v0, v1 float32)

	GenVertexArrays(n int32, arrays *uint32)
	BindVertexArray(array uint32)
	GenBuffers(n int32, buffers *uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	ActiveTexture(texture uint32)
	GenTextures(n int32, textures *uint32)
	BindTexture(target, texture uint32)
	DeleteTextures(n int32, textures *uint32)
	TexParameteri(target, pname uint32, param int32)
	PixelStorei(pname uint32, param int32)
	TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)
	TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels unsafe.Pointer)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32, params *int32)
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32, params *int32)
	ProgramInfoLog(program uint32) string
}
