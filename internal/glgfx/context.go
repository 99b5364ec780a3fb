//go:build !android

// Package glgfx implements trail.Graphics on an OpenGL 4.1 core context.
// All methods must be called on the thread that owns the current context.
package glgfx

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/oortviewer/trails/internal/trail"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Context owns the vertex array object that core profile requires for any
// attribute setup.
type Context struct {
	vao uint32
}

var _ trail.Graphics = (*Context)(nil)

// New must be called after gl.Init.
func New() *Context {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return &Context{vao: vao}
}

func (c *Context) LinkProgram(vertSrc, fragSrc string) (uint32, error) {
	return linkProgram(vertSrc, fragSrc)
}

func (c *Context) UniformLocation(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("did not find uniform %q", name)
	}
	return loc, nil
}

func (c *Context) NewVertexBuffer(size int) (uint32, error) {
	if size <= 0 {
		return 0, errors.New("empty vertex buffer")
	}
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return 0, errors.New("failed to create buffer")
	}
	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	// BufferData leaves contents undefined with a nil pointer; upload zeros
	// so unwritten slots are well defined.
	zeros := make([]byte, size)
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(zeros), gl.DYNAMIC_DRAW)

	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteBuffers(1, &vbo)
		return 0, fmt.Errorf("buffer data: gl error 0x%x", e)
	}
	return vbo, nil
}

func (c *Context) BufferSubData(buffer uint32, offset int, data []trail.Vertex) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data)*trail.VertexSize, gl.Ptr(data))
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) BindVertexBuffer(buffer uint32) {
	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (c *Context) VertexAttrib(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, glOffset(offset))
	gl.EnableVertexAttribArray(index)
}

func (c *Context) DisableVertexAttrib(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (c *Context) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// LineWidth only accepts 1.0 on forward-compatible core contexts; wider
// values raise INVALID_VALUE, so they are clamped.
func (c *Context) LineWidth(w float32) {
	if w > 1 {
		w = 1
	}
	gl.LineWidth(w)
}

func (c *Context) DrawLines(first, count int32) {
	gl.DrawArrays(gl.LINES, first, count)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) Destroy() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}
