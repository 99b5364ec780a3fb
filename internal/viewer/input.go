//go:build !android

package viewer

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// MoveCamera pans with WASD/arrows and zooms with Q/E.
func MoveCamera(window *glfw.Window, cam *Camera, dt float64) {
	held := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}

	step := PanSpeed * dt / cam.Zoom
	if held(glfw.KeyA, glfw.KeyLeft) {
		cam.X -= step
	}
	if held(glfw.KeyD, glfw.KeyRight) {
		cam.X += step
	}
	if held(glfw.KeyS, glfw.KeyDown) {
		cam.Y -= step
	}
	if held(glfw.KeyW, glfw.KeyUp) {
		cam.Y += step
	}
	if held(glfw.KeyE) {
		cam.Zoom *= math.Pow(ZoomRate, dt)
	}
	if held(glfw.KeyQ) {
		cam.Zoom /= math.Pow(ZoomRate, dt)
	}
	cam.Clamp()
}
