//go:build !android

package viewer

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"

	"github.com/oortviewer/trails/internal/glgfx"
	"github.com/oortviewer/trails/internal/sim"
	"github.com/oortviewer/trails/internal/trail"
)

// RunDesktop opens the viewer window and blocks until it is closed.
// The trail renderer is updated once per fixed simulation tick, not once
// per rendered frame, so a frame may draw after zero or several updates.
func RunDesktop() {
	runtime.LockOSThread()

	settings := LoadSettings(uint64(time.Now().UnixNano()), sim.DefaultConfig().Ships, trail.DefaultCapacity)

	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	trail.SetLogger(logger)

	switch settings.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}
	logger.Debug("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.02, 0.02, 0.05, 1.0)

	gfx := glgfx.New()
	defer gfx.Destroy()

	opts := trail.DefaultOptions()
	opts.Capacity = settings.Capacity
	trails, err := trail.NewRenderer(gfx, opts)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer trails.Destroy()

	cfg := sim.DefaultConfig()
	cfg.Ships = settings.Ships
	fleet := sim.NewFleet(cfg, settings.Seed)
	logger.Info("viewer started", "seed", settings.Seed, "ships", cfg.Ships, "capacity", opts.Capacity)

	cam := Camera{Zoom: DefaultZoom}
	input := NewInput()
	paused := false

	var acc float64
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrame {
			dt = MaxFrame
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			paused = !paused
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		MoveCamera(window, &cam, dt)

		// One trail update per simulation tick keeps segment length tied
		// to simulated time rather than frame rate.
		if !paused {
			acc += dt
			for acc >= FixedStep {
				fleet.Step(FixedStep)
				trails.Update(fleet)
				acc -= FixedStep
			}
		}

		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		gl.Clear(gl.COLOR_BUFFER_BIT)
		trails.SetProjection(cam.Projection(fbW, fbH))
		trails.Draw()

		window.SwapBuffers()
	}

	logger.Debug("viewer stopped", "dropped_frames", trails.Dropped(), "tracked", trails.Tracked())
}
