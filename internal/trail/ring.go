package trail

import "fmt"

// RingBuffer is a fixed-capacity vertex buffer written cyclically.
// Batches that fit overwrite the oldest vertices; a batch larger than the
// whole buffer is dropped without touching anything.
type RingBuffer struct {
	up       uploader
	buffer   uint32
	capacity int
	cursor   int
	dropped  int
}

func newRingBuffer(up uploader, buffer uint32, capacity int) *RingBuffer {
	if capacity <= 0 {
		panic(fmt.Sprintf("trail: ring capacity %d", capacity))
	}
	return &RingBuffer{up: up, buffer: buffer, capacity: capacity}
}

// Append writes verts at the cursor, splitting at the end of the buffer.
// It returns false if the batch was dropped for exceeding capacity.
func (rb *RingBuffer) Append(verts []Vertex) bool {
	n := len(verts)
	if n == 0 {
		return true
	}
	if n > rb.capacity {
		rb.dropped++
		Logger().Warn("too many trail vertices", "count", n, "capacity", rb.capacity)
		return false
	}
	if n%2 != 0 {
		panic(fmt.Sprintf("trail: odd vertex batch (%d)", n))
	}

	room := rb.capacity - rb.cursor
	if n > room {
		rb.write(rb.cursor, verts[:room])
		rb.write(0, verts[room:])
	} else {
		rb.write(rb.cursor, verts)
	}

	rb.cursor = (rb.cursor + n) % rb.capacity
	if rb.cursor == rb.capacity {
		rb.cursor = 0
	}
	if rb.cursor < 0 || rb.cursor >= rb.capacity {
		panic(fmt.Sprintf("trail: cursor %d out of range [0, %d)", rb.cursor, rb.capacity))
	}
	return true
}

func (rb *RingBuffer) write(at int, verts []Vertex) {
	if len(verts) == 0 {
		panic("trail: empty ring write")
	}
	if at < 0 || at+len(verts) > rb.capacity {
		panic(fmt.Sprintf("trail: write [%d, %d) exceeds capacity %d", at, at+len(verts), rb.capacity))
	}
	rb.up.BufferSubData(rb.buffer, at*VertexSize, verts)
}

func (rb *RingBuffer) Cursor() int   { return rb.cursor }
func (rb *RingBuffer) Capacity() int { return rb.capacity }

// Dropped counts batches rejected for exceeding capacity.
func (rb *RingBuffer) Dropped() int { return rb.dropped }
