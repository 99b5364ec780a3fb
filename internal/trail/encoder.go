package trail

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the interleaved GPU record: 6 float32s, 24 bytes, no padding.
type Vertex struct {
	Pos   mgl32.Vec2
	Color mgl32.Vec4
}

// Encode appends two vertices per segment (start, then end) to dst[:0].
func Encode(dst []Vertex, segs []Segment) []Vertex {
	dst = dst[:0]
	for _, s := range segs {
		dst = append(dst,
			Vertex{Pos: s.From, Color: s.Color},
			Vertex{Pos: s.To, Color: s.Color},
		)
	}
	return dst
}
