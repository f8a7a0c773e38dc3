package paint

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// GLBackend dispatches to the driver entry points loaded through the supplied
// resolver. The resolver contract: look the name up in the driver module
// first, then through the driver's extension loader, and return nil (not an
// error) for symbols that resolve to neither.
type GLBackend struct{}

func NewGLBackend(resolver func(name string) unsafe.Pointer) (*GLBackend, error) {
	if err := gl.InitWithProcAddrFunc(resolver); err != nil {
		return nil, errors.Wrap(err, "loading GL entry points")
	}
	return &GLBackend{}, nil
}

func (*GLBackend) Enable(cap uint32)                   { gl.Enable(cap) }
func (*GLBackend) Disable(cap uint32)                  { gl.Disable(cap) }
func (*GLBackend) BlendFunc(sfactor, dfactor uint32)   { gl.BlendFunc(sfactor, dfactor) }
func (*GLBackend) Viewport(x, y, w, h int32)           { gl.Viewport(x, y, w, h) }
func (*GLBackend) Scissor(x, y, w, h int32)            { gl.Scissor(x, y, w, h) }
func (*GLBackend) UseProgram(program uint32)           { gl.UseProgram(program) }
func (*GLBackend) Uniform1i(location, v int32)         { gl.Uniform1i(location, v) }
func (*GLBackend) Uniform2f(location int32, v0, v1 float32) {
	gl.Uniform2f(location, v0, v1)
}

func (*GLBackend) GetUniformLocation(program uint32, name string) int32 {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return gl.GetUniformLocation(program, *cname)
}

func (*GLBackend) GetAttribLocation(program uint32, name string) int32 {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return gl.GetAttribLocation(program, *cname)
}

func (*GLBackend) GenVertexArrays(n int32, arrays *uint32) { gl.GenVertexArrays(n, arrays) }
func (*GLBackend) BindVertexArray(array uint32)            { gl.BindVertexArray(array) }
func (*GLBackend) GenBuffers(n int32, buffers *uint32)     { gl.GenBuffers(n, buffers) }
func (*GLBackend) BindBuffer(target, buffer uint32)        { gl.BindBuffer(target, buffer) }
func (*GLBackend) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*GLBackend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*GLBackend) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (*GLBackend) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }
func (*GLBackend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}

func (*GLBackend) ActiveTexture(texture uint32)          { gl.ActiveTexture(texture) }
func (*GLBackend) GenTextures(n int32, textures *uint32) { gl.GenTextures(n, textures) }
func (*GLBackend) BindTexture(target, texture uint32)    { gl.BindTexture(target, texture) }
func (*GLBackend) DeleteTextures(n int32, textures *uint32) {
	gl.DeleteTextures(n, textures)
}

func (*GLBackend) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*GLBackend) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (*GLBackend) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalformat, width, height, border, format, xtype, pixels)
}

func (*GLBackend) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, xtype, pixels)
}

func (*GLBackend) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (*GLBackend) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (*GLBackend) CompileShader(shader uint32) { gl.CompileShader(shader) }
func (*GLBackend) GetShaderiv(shader, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (*GLBackend) ShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GLBackend) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }
func (*GLBackend) CreateProgram() uint32               { return gl.CreateProgram() }
func (*GLBackend) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*GLBackend) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (*GLBackend) GetProgramiv(program, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (*GLBackend) ProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
