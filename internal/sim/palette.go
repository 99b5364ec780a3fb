package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Team colors are spread around the hue wheel by the golden angle so
// neighbouring team numbers stay distinguishable.
const (
	goldenAngle = 137.50776
	teamSat     = 0.65
	teamVal     = 0.95
	trailAlpha  = 0.6
)

// TeamColor maps a team number to a translucent RGBA trail color.
func TeamColor(team int) mgl32.Vec4 {
	h := math.Mod(float64(team)*goldenAngle, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, teamSat, teamVal).Clamped()
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), trailAlpha}
}
