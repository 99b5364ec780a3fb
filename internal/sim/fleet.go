// Package sim is a small orbital simulation used to drive the trail viewer.
// Ships of several teams orbit a central mass and are periodically
// replaced, so entity handles appear and disappear over time.
package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/oortviewer/trails/internal/trail"
)

// Physics.
const (
	G         = 0.667
	Softening = 5.0
)

type Config struct {
	Ships       int
	Teams       int
	CentralMass float64
	MinRadius   float64
	MaxRadius   float64
	MinLife     float64 // seconds before a ship is replaced
	MaxLife     float64
}

func DefaultConfig() Config {
	return Config{
		Ships:       16,
		Teams:       3,
		CentralMass: 4e4,
		MinRadius:   40,
		MaxRadius:   220,
		MinLife:     8,
		MaxLife:     30,
	}
}

type Ship struct {
	ID     trail.EntityID
	Team   int
	X, Y   float64
	VX, VY float64
	Life   float64
}

// Fleet implements trail.Snapshot and trail.Departures.
type Fleet struct {
	cfg   Config
	rng   *Rand
	Ships []Ship

	index    map[trail.EntityID]int
	nextID   trail.EntityID
	ids      []trail.EntityID // reused by Entities
	departed []trail.EntityID
}

var (
	_ trail.Snapshot   = (*Fleet)(nil)
	_ trail.Departures = (*Fleet)(nil)
)

func NewFleet(cfg Config, seed uint64) *Fleet {
	if cfg.Teams <= 0 {
		cfg.Teams = 1
	}
	f := &Fleet{
		cfg:   cfg,
		rng:   NewRand(seed),
		index: make(map[trail.EntityID]int, cfg.Ships),
	}
	for i := 0; i < cfg.Ships; i++ {
		f.spawn()
	}
	return f
}

// spawn places a ship on a circular orbit at a random radius and phase.
func (f *Fleet) spawn() {
	f.nextID++
	r := f.rng.RangeF(f.cfg.MinRadius, f.cfg.MaxRadius)
	a := f.rng.RangeF(0, 2*math.Pi)
	v := math.Sqrt(G * f.cfg.CentralMass / r)
	dir := f.rng.Sign()
	s := Ship{
		ID:   f.nextID,
		Team: f.rng.Intn(f.cfg.Teams),
		X:    r * math.Cos(a),
		Y:    r * math.Sin(a),
		VX:   -math.Sin(a) * v * dir,
		VY:   math.Cos(a) * v * dir,
		Life: f.rng.RangeF(f.cfg.MinLife, f.cfg.MaxLife),
	}
	f.index[s.ID] = len(f.Ships)
	f.Ships = append(f.Ships, s)
}

// Step advances every ship with semi-implicit Euler and replaces expired ones.
// Departures reported by Departed cover only the most recent Step.
func (f *Fleet) Step(dt float64) {
	f.departed = f.departed[:0]

	for i := range f.Ships {
		s := &f.Ships[i]
		d2 := s.X*s.X + s.Y*s.Y + Softening*Softening
		inv := 1 / math.Sqrt(d2)
		acc := G * f.cfg.CentralMass / d2
		s.VX -= s.X * inv * acc * dt
		s.VY -= s.Y * inv * acc * dt
		s.X += s.VX * dt
		s.Y += s.VY * dt
		s.Life -= dt
	}

	// Swap-remove expired ships, then refill.
	removed := 0
	for i := 0; i < len(f.Ships); {
		if f.Ships[i].Life > 0 {
			i++
			continue
		}
		f.remove(i)
		removed++
	}
	for ; removed > 0; removed-- {
		f.spawn()
	}
}

func (f *Fleet) remove(i int) {
	id := f.Ships[i].ID
	last := len(f.Ships) - 1
	f.Ships[i] = f.Ships[last]
	f.index[f.Ships[i].ID] = i
	f.Ships = f.Ships[:last]
	delete(f.index, id)
	f.departed = append(f.departed, id)
}

func (f *Fleet) Entities() []trail.EntityID {
	f.ids = f.ids[:0]
	for i := range f.Ships {
		f.ids = append(f.ids, f.Ships[i].ID)
	}
	return f.ids
}

func (f *Fleet) Position(id trail.EntityID) mgl32.Vec2 {
	s := &f.Ships[f.index[id]]
	return mgl32.Vec2{float32(s.X), float32(s.Y)}
}

func (f *Fleet) Color(id trail.EntityID) mgl32.Vec4 {
	return TeamColor(f.Ships[f.index[id]].Team)
}

func (f *Fleet) Departed() []trail.EntityID { return f.departed }

// Ship returns the live ship with the given id.
func (f *Fleet) Ship(id trail.EntityID) (Ship, bool) {
	i, ok := f.index[id]
	if !ok {
		return Ship{}, false
	}
	return f.Ships[i], true
}
