package viewer

import (
	"os"
	"strconv"
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Trails"
	DefaultZoom  = 1.5
	MinZoom      = 0.25
	MaxZoom      = 12.0
	ZoomRate     = 1.8 // zoom factor per second while held
	PanSpeed     = 400 // screen pixels per second
)

// Simulation.
const (
	FixedStep = 1.0 / 60
	MaxFrame  = 0.1 // clamp long frames after stalls
)

// Settings are read from the environment at startup.
type Settings struct {
	Seed     uint64
	Ships    int
	Capacity int
	Debug    bool
	Profile  string // "", "cpu" or "mem"
}

func LoadSettings(defaultSeed uint64, defaultShips, defaultCapacity int) Settings {
	s := Settings{
		Seed:     defaultSeed,
		Ships:    defaultShips,
		Capacity: defaultCapacity,
		Profile:  os.Getenv("TRAILS_PROFILE"),
	}
	if v, err := strconv.ParseUint(os.Getenv("TRAILS_SEED"), 10, 64); err == nil {
		s.Seed = v
	}
	if v, err := strconv.Atoi(os.Getenv("TRAILS_SHIPS")); err == nil && v >= 0 {
		s.Ships = v
	}
	if v, err := strconv.Atoi(os.Getenv("TRAILS_CAPACITY")); err == nil {
		s.Capacity = v
	}
	if v, err := strconv.ParseBool(os.Getenv("TRAILS_DEBUG")); err == nil {
		s.Debug = v
	}
	return s
}
