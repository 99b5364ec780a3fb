package trail

import (
	"errors"
	"fmt"
)

// Vertex layout: 2 position floats followed by 4 color floats.
const (
	FloatsPerVertex = 6
	VertexSize      = FloatsPerVertex * 4 // bytes
	ColorOffset     = 2 * 4               // bytes
)

// Defaults.
const (
	DefaultCapacity  = 1024
	DefaultLineWidth = 1.0
)

// ErrBadCapacity is returned when Options.Capacity cannot hold whole segments.
var ErrBadCapacity = errors.New("trail: capacity must be positive and even")

type Options struct {
	Capacity  int     // vertices, fixed for the renderer's lifetime
	LineWidth float32 // passed to the line draw
}

func DefaultOptions() Options {
	return Options{
		Capacity:  DefaultCapacity,
		LineWidth: DefaultLineWidth,
	}
}

func (o Options) validate() error {
	if o.Capacity <= 0 || o.Capacity%2 != 0 {
		return fmt.Errorf("%w (got %d)", ErrBadCapacity, o.Capacity)
	}
	return nil
}
