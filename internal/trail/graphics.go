package trail

import "github.com/go-gl/mathgl/mgl32"

// Graphics is the subset of a GL-style context the trail renderer needs.
// Handles are opaque GL object names; zero is never a valid handle.
type Graphics interface {
	// LinkProgram compiles both stages and links them.
	LinkProgram(vertSrc, fragSrc string) (uint32, error)
	// UniformLocation fails when the program has no active uniform by that name.
	UniformLocation(program uint32, name string) (int32, error)
	// NewVertexBuffer allocates size bytes of zeroed vertex storage.
	NewVertexBuffer(size int) (uint32, error)
	// BufferSubData uploads data starting at byte offset.
	BufferSubData(buffer uint32, offset int, data []Vertex)

	UseProgram(program uint32)
	BindVertexBuffer(buffer uint32)
	// VertexAttrib points attribute index at size floats, then enables it.
	VertexAttrib(index uint32, size, stride int32, offset int)
	DisableVertexAttrib(index uint32)
	UniformMatrix4(location int32, m mgl32.Mat4)
	LineWidth(w float32)
	DrawLines(first, count int32)

	DeleteBuffer(buffer uint32)
	DeleteProgram(program uint32)
}

// uploader is the only capability the ring buffer needs.
type uploader interface {
	BufferSubData(buffer uint32, offset int, data []Vertex)
}
