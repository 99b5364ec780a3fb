package trail

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

type region struct {
	offset int // vertices
	n      int
}

// fakeGraphics mirrors a single vertex buffer in memory and records calls.
type fakeGraphics struct {
	linkErr    error
	uniformErr error
	bufferErr  error

	mem     []Vertex
	writes  []region
	calls   []string
	attribs map[uint32][3]int // size, stride, offset
	matrix  mgl32.Mat4
	lineW   float32
	drawn   [2]int32

	deletedBuffers  []uint32
	deletedPrograms []uint32
}

func newFakeGraphics() *fakeGraphics {
	return &fakeGraphics{attribs: make(map[uint32][3]int)}
}

func (f *fakeGraphics) LinkProgram(vertSrc, fragSrc string) (uint32, error) {
	if f.linkErr != nil {
		return 0, f.linkErr
	}
	return 7, nil
}

func (f *fakeGraphics) UniformLocation(program uint32, name string) (int32, error) {
	if f.uniformErr != nil {
		return -1, f.uniformErr
	}
	if name != "transform" {
		return -1, errors.New("no such uniform")
	}
	return 3, nil
}

func (f *fakeGraphics) NewVertexBuffer(size int) (uint32, error) {
	if f.bufferErr != nil {
		return 0, f.bufferErr
	}
	f.mem = make([]Vertex, size/VertexSize)
	return 11, nil
}

func (f *fakeGraphics) BufferSubData(buffer uint32, offset int, data []Vertex) {
	at := offset / VertexSize
	copy(f.mem[at:], data)
	f.writes = append(f.writes, region{offset: at, n: len(data)})
}

func (f *fakeGraphics) UseProgram(program uint32)     { f.calls = append(f.calls, "use") }
func (f *fakeGraphics) BindVertexBuffer(buffer uint32) { f.calls = append(f.calls, "bind") }

func (f *fakeGraphics) VertexAttrib(index uint32, size, stride int32, offset int) {
	f.attribs[index] = [3]int{int(size), int(stride), offset}
	f.calls = append(f.calls, "attrib")
}

func (f *fakeGraphics) DisableVertexAttrib(index uint32) {
	delete(f.attribs, index)
	f.calls = append(f.calls, "disable")
}

func (f *fakeGraphics) UniformMatrix4(location int32, m mgl32.Mat4) {
	f.matrix = m
	f.calls = append(f.calls, "uniform")
}

func (f *fakeGraphics) LineWidth(w float32) { f.lineW = w }

func (f *fakeGraphics) DrawLines(first, count int32) {
	f.drawn = [2]int32{first, count}
	f.calls = append(f.calls, "draw")
}

func (f *fakeGraphics) DeleteBuffer(buffer uint32) {
	f.deletedBuffers = append(f.deletedBuffers, buffer)
}

func (f *fakeGraphics) DeleteProgram(program uint32) {
	f.deletedPrograms = append(f.deletedPrograms, program)
}

// verts builds n distinguishable vertices tagged with base.
func verts(base float32, n int) []Vertex {
	out := make([]Vertex, n)
	for i := range out {
		out[i] = Vertex{Pos: mgl32.Vec2{base + float32(i), base}, Color: mgl32.Vec4{1, 1, 1, 1}}
	}
	return out
}
