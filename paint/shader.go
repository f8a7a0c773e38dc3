package paint

import "github.com/pkg/errors"

// Positions and texture coordinates arrive in points with the origin at the
// top-left; the vertex shader maps them to clip space and converts the sRGB
// vertex color to linear for blending.
const vertexSource = `#version 140
uniform vec2 u_screen_size;
in vec2 a_pos;
in vec2 a_tc;
in vec4 a_srgba;
out vec4 v_rgba;
out vec2 v_tc;

// 0-1 linear from 0-255 sRGB
vec3 linear_from_srgb(vec3 srgb) {
    bvec3 cutoff = lessThan(srgb, vec3(10.31475));
    vec3 lower = srgb / vec3(3294.6);
    vec3 higher = pow((srgb + vec3(14.025)) / vec3(269.025), vec3(2.4));
    return mix(higher, lower, cutoff);
}

vec4 linear_from_srgba(vec4 srgba) {
    return vec4(linear_from_srgb(srgba.rgb), srgba.a / 255.0);
}

void main() {
    gl_Position = vec4(
        2.0 * a_pos.x / u_screen_size.x - 1.0,
        1.0 - 2.0 * a_pos.y / u_screen_size.y,
        0.0,
        1.0);
    v_rgba = linear_from_srgba(a_srgba);
    v_tc = a_tc;
}
`

const fragmentSource = `#version 140
uniform sampler2D u_sampler;
in vec4 v_rgba;
in vec2 v_tc;
out vec4 f_color;

void main() {
    f_color = v_rgba * texture(u_sampler, v_tc);
}
`

// compileShader compiles one shader stage. A failed compile status is
// unrecoverable for the pipeline; the returned error carries the driver's
// diagnostic text.
func compileShader(b Backend, src string, stage uint32) (uint32, error) {
	id := b.CreateShader(stage)
	b.ShaderSource(id, src)
	b.CompileShader(id)

	var status int32
	b.GetShaderiv(id, glCompileStatus, &status)
	if status == 0 {
		log := b.ShaderInfoLog(id)
		b.DeleteShader(id)
		return 0, errors.Errorf("shader compile failed: %s", log)
	}
	return id, nil
}

// linkProgram links the two stages into a program. Link failure is
// unrecoverable; the error carries the program info log.
func linkProgram(b Backend, vs, fs uint32) (uint32, error) {
	program := b.CreateProgram()
	b.AttachShader(program, vs)
	b.AttachShader(program, fs)
	b.LinkProgram(program)

	var status int32
	b.GetProgramiv(program, glLinkStatus, &status)
	if status == 0 {
		return 0, errors.Errorf("program link failed: %s", b.ProgramInfoLog(program))
	}
	return program, nil
}
