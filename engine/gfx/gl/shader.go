package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/oneroom/engine/assets"
	"github.com/hubastard/oneroom/engine/gfx"
)

// Both stages live in one source file. Each stage is compiled with a prelude
// that defines its stage macro and renames its fixed entry point to main.
const (
	shaderVersion = "#version 330 core\n"

	vertexEntry = "vsmain"
	pixelEntry  = "psmain"

	// constantsBlock is the uniform block fed by SetConstantBuffer slot 0.
	constantsBlock = "Constants"

	// Sampler uniforms named Texture0..TextureN read texture unit N.
	samplerPrefix = "Texture"
	maxTexSlots   = 16
)

// Vertex inputs are bound by semantic to these locations before linking, so
// an input layout built against one program matches every other program.
var semanticLocations = map[string]uint32{
	"POSITION": 0,
	"TEXCOORD": 1,
	"COLOR":    2,
	"NORMAL":   3,
}

type stage struct {
	kind   uint32
	define string
	entry  string
}

var (
	vertexStage = stage{kind: gl.VERTEX_SHADER, define: "VERTEX_STAGE", entry: vertexEntry}
	pixelStage  = stage{kind: gl.FRAGMENT_SHADER, define: "PIXEL_STAGE", entry: pixelEntry}
)

// stageSource prepends the stage prelude. A #version line in src is dropped
// since the prelude supplies it and GLSL requires it first.
func stageSource(src string, st stage) string {
	var b strings.Builder
	b.WriteString(shaderVersion)
	fmt.Fprintf(&b, "#define %s 1\n", st.define)
	fmt.Fprintf(&b, "#define %s main\n", st.entry)
	b.WriteString("#line 1\n")
	for _, line := range strings.SplitAfter(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#version") {
			b.WriteString("\n")
			continue
		}
		b.WriteString(line)
	}
	b.WriteByte(0)
	return b.String()
}

type Shader struct {
	path    string
	program uint32
	attribs map[string]int32
}

func (s *Shader) Path() string { return s.path }

func (d *Device) CreateShader(path string) (gfx.Shader, error) {
	src, err := assets.LoadShader(path)
	if err != nil {
		return nil, err
	}
	vs, err := compileStage(path, src, vertexStage)
	if err != nil {
		return nil, err
	}
	ps, err := compileStage(path, src, pixelStage)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, ps)
	for semantic, loc := range semanticLocations {
		gl.BindAttribLocation(prog, loc, gl.Str(semantic+"\x00"))
	}
	gl.LinkProgram(prog)
	gl.DeleteShader(vs)
	gl.DeleteShader(ps)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("shader %s: link: %s", path, strings.TrimRight(log, "\x00"))
	}

	if idx := gl.GetUniformBlockIndex(prog, gl.Str(constantsBlock+"\x00")); idx != gl.INVALID_INDEX {
		gl.UniformBlockBinding(prog, idx, 0)
	}
	gl.UseProgram(prog)
	for slot := 0; slot < maxTexSlots; slot++ {
		name := fmt.Sprintf("%s%d\x00", samplerPrefix, slot)
		if loc := gl.GetUniformLocation(prog, gl.Str(name)); loc >= 0 {
			gl.Uniform1i(loc, int32(slot))
		}
	}
	// restore the caller's program binding
	if d.shader != nil {
		gl.UseProgram(d.shader.program)
	} else {
		gl.UseProgram(0)
	}

	return &Shader{path: path, program: prog, attribs: map[string]int32{}}, nil
}

func compileStage(path, src string, st stage) (uint32, error) {
	sh := gl.CreateShader(st.kind)
	csrc, free := gl.Strs(stageSource(src, st))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader %s: compile %s: %s", path, st.entry, strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

// attribLocation resolves a semantic against the vertex stage's inputs.
func (s *Shader) attribLocation(semantic string) int32 {
	if loc, ok := s.attribs[semantic]; ok {
		return loc
	}
	loc := gl.GetAttribLocation(s.program, gl.Str(semantic+"\x00"))
	s.attribs[semantic] = loc
	return loc
}

func (d *Device) SetShader(s gfx.Shader) {
	sh := s.(*Shader)
	d.shader = sh
	gl.UseProgram(sh.program)
}

func (d *Device) FreeShader(s gfx.Shader) {
	sh := s.(*Shader)
	if d.shader == sh {
		gl.UseProgram(0)
		d.shader = nil
	}
	gl.DeleteProgram(sh.program)
	sh.program = 0
}
