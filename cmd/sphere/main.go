package main

import (
	"fmt"
	"runtime"
	"time"

	"sceneview/internal/geometry"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth  = 800
	windowHeight = 600

	meridians = 32
	parallels = 24
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "sphere preview", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		panic(err)
	}

	vertexSrc := `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec4 color;
uniform mat4 mvp;
uniform mat4 model;
out vec3 vNormal;
out vec4 vColor;
void main() {
	vNormal = mat3(model) * normal;
	vColor = color;
	gl_Position = mvp * vec4(position, 1.0);
}` + "\x00"

	fragmentSrc := `#version 410 core
in vec3 vNormal;
in vec4 vColor;
out vec4 fragColor;
void main() {
	vec3 lightDir = normalize(vec3(0.4, 0.8, 0.6));
	float diff = max(dot(normalize(vNormal), lightDir), 0.15);
	fragColor = vec4(vColor.rgb * diff, vColor.a);
}` + "\x00"

	program, err := newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		panic(err)
	}
	defer gl.DeleteProgram(program)

	mesh, err := geometry.GenerateSphere(meridians, parallels, 1.0, mgl32.Vec4{0.35, 0.65, 0.95, 1.0})
	if err != nil {
		panic(err)
	}
	vertices := mesh.Interleave()
	indices := mesh.Indices

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*geometry.FloatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(geometry.Stride)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*geometry.FloatSize))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, gl.PtrOffset(6*geometry.FloatSize))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.08, 0.08, 0.1, 1.0)

	view := mgl32.LookAtV(mgl32.Vec3{0, 1, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), float32(windowWidth)/float32(windowHeight), 0.1, 100.0)

	mvpLoc := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	modelLoc := gl.GetUniformLocation(program, gl.Str("model\x00"))

	gl.UseProgram(program)
	gl.BindVertexArray(vao)

	frames := 0
	start := time.Now()
	last := start
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		model := mgl32.HomogRotate3DY(float32(time.Since(start).Seconds()) * 0.6)
		mvp := proj.Mul4(view).Mul4(model)
		gl.UniformMatrix4fv(mvpLoc, 1, false, &mvp[0])
		gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])

		gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))

		window.SwapBuffers()
		glfw.PollEvents()

		frames++

		select {
		case <-fpsTicker.C:
			now := time.Now()
			elapsed := now.Sub(last).Seconds()
			if elapsed > 0 {
				fmt.Printf("FPS: %d\n", int(float64(frames)/elapsed+0.5))
			}
			frames = 0
			last = now
		default:
		}
	}

	gl.DeleteBuffers(1, &ebo)
	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
}

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	f, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("program link error: %s", string(log))
	}

	gl.DeleteShader(v)
	gl.DeleteShader(f)
	return program, nil
}

func compileShader(source string, shaderType uint32, label string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return 0, fmt.Errorf("%s shader compile error: %s", label, string(log))
	}
	return shader, nil
}
