package compute

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// One vec4 per particle: xy position, zw velocity. The force magnitude
// uses the clamped distance, the direction the raw position, matching
// the float64 integrator.
const orbitShaderSource = `#version 430

layout(local_size_x = 256) in;

layout(std430, binding = 0) buffer Particles {
    vec4 body[];
};

uniform float dt;
uniform float mu;
uniform float minDist;
uniform float maxDist;
uniform int numParticles;

void main() {
    uint i = gl_GlobalInvocationID.x;
    if (i >= uint(numParticles)) {
        return;
    }

    vec4 p = body[i];
    float raw = length(p.xy);
    if (raw > 0.0) {
        float d = clamp(raw, minDist, maxDist);
        float mag = mu / (d * d);
        p.zw -= (mag / raw) * p.xy * dt;
    }
    p.xy += p.zw * dt;
    body[i] = p;
}
`

// GLStepper runs the orbit kernel on the GPU through an OpenGL 4.3
// compute shader. The swarm lives in one SSBO updated in place; the
// central force needs no pairwise pass and no ping-pong buffers.
type GLStepper struct {
	params      Params
	program     uint32
	ssbo        uint32
	n           int32
	locDt       int32
	locMu       int32
	locMin      int32
	locMax      int32
	locN        int32
	initialized bool
}

func NewGLStepper(p Params) *GLStepper {
	return &GLStepper{params: p}
}

func (g *GLStepper) Name() string    { return "opengl" }
func (g *GLStepper) Available() bool { return g.initialized }

// Init compiles the kernel and uploads the swarm. It fails cleanly
// when no context is current or the driver lacks compute shaders, so
// callers can fall back to the CPU stepper.
func (g *GLStepper) Init(s *Swarm) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("compute: init opengl: %v", err)
	}

	program, err := createComputeProgram(orbitShaderSource)
	if err != nil {
		return err
	}
	g.program = program

	gl.GenBuffers(1, &g.ssbo)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, g.ssbo)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(s.Data)*4, gl.Ptr(s.Data), gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 0, g.ssbo)

	g.locDt = gl.GetUniformLocation(program, gl.Str("dt\x00"))
	g.locMu = gl.GetUniformLocation(program, gl.Str("mu\x00"))
	g.locMin = gl.GetUniformLocation(program, gl.Str("minDist\x00"))
	g.locMax = gl.GetUniformLocation(program, gl.Str("maxDist\x00"))
	g.locN = gl.GetUniformLocation(program, gl.Str("numParticles\x00"))

	g.n = int32(s.N)
	g.initialized = true
	return nil
}

// Step dispatches the kernel and reads the buffer back into s.Data so
// the renderer sees fresh positions.
func (g *GLStepper) Step(s *Swarm, dt float32) {
	if !g.initialized {
		return
	}

	gl.UseProgram(g.program)
	gl.Uniform1f(g.locDt, dt)
	gl.Uniform1f(g.locMu, g.params.Mu)
	gl.Uniform1f(g.locMin, g.params.MinDist)
	gl.Uniform1f(g.locMax, g.params.MaxDist)
	gl.Uniform1i(g.locN, g.n)

	groups := (g.n + 255) / 256
	gl.DispatchCompute(uint32(groups), 1, 1)
	gl.MemoryBarrier(gl.SHADER_STORAGE_BARRIER_BIT | gl.BUFFER_UPDATE_BARRIER_BIT)

	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, g.ssbo)
	gl.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(s.Data)*4, gl.Ptr(s.Data))
}

func (g *GLStepper) Cleanup() {
	if !g.initialized {
		return
	}
	gl.DeleteBuffers(1, &g.ssbo)
	gl.DeleteProgram(g.program)
	g.initialized = false
}

func createComputeProgram(src string) (uint32, error) {
	content := src + "\x00"

	shader := gl.CreateShader(gl.COMPUTE_SHADER)
	csources, free := gl.Strs(content)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compute: compile kernel: %v", strings.TrimRight(log, "\x00"))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, shader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("compute: link kernel program")
	}

	gl.DeleteShader(shader)
	return program, nil
}
