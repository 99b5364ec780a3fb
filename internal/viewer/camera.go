package viewer

import "github.com/go-gl/mathgl/mgl32"

type Camera struct {
	X, Y float64 // world space, camera centre
	Zoom float64 // screen pixels per world unit
}

func (c *Camera) Clamp() {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

// Projection maps world coordinates (y up) to clip space for a framebuffer
// of fbW x fbH pixels.
func (c *Camera) Projection(fbW, fbH int) mgl32.Mat4 {
	halfW := float64(fbW) / (2.0 * c.Zoom)
	halfH := float64(fbH) / (2.0 * c.Zoom)
	return mgl32.Ortho2D(
		float32(c.X-halfW), float32(c.X+halfW),
		float32(c.Y-halfH), float32(c.Y+halfH),
	)
}
