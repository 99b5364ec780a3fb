package trail

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is the read-only view of the simulation for one frame.
type Snapshot interface {
	Entities() []EntityID
	Position(id EntityID) mgl32.Vec2
	Color(id EntityID) mgl32.Vec4
}

// Departures is optionally implemented by snapshots that report entities
// removed since the previous frame. Their cached positions are pruned.
type Departures interface {
	Departed() []EntityID
}

// Renderer draws a fading line trail behind every entity in the snapshot.
// Update and Draw must be called from the thread owning the GL context.
type Renderer struct {
	gfx  Graphics
	opts Options

	program      uint32
	transformLoc int32
	projection   mgl32.Mat4

	ring    *RingBuffer
	tracker *Tracker

	// Reusable per-frame buffers.
	samples []Sample
	verts   []Vertex
}

func NewRenderer(gfx Graphics, opts Options) (*Renderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	program, err := gfx.LinkProgram(trailVertSrc, trailFragSrc)
	if err != nil {
		return nil, fmt.Errorf("trail program: %w", err)
	}
	loc, err := gfx.UniformLocation(program, "transform")
	if err != nil {
		gfx.DeleteProgram(program)
		return nil, fmt.Errorf("transform uniform: %w", err)
	}
	buffer, err := gfx.NewVertexBuffer(opts.Capacity * VertexSize)
	if err != nil {
		gfx.DeleteProgram(program)
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}

	Logger().Debug("trail renderer ready", "capacity", opts.Capacity, "bytes", opts.Capacity*VertexSize)

	return &Renderer{
		gfx:          gfx,
		opts:         opts,
		program:      program,
		transformLoc: loc,
		projection:   mgl32.Ident4(),
		ring:         newRingBuffer(gfx, buffer, opts.Capacity),
		tracker:      NewTracker(),
	}, nil
}

// SetProjection copies m; it is used unchanged by every later Draw.
func (r *Renderer) SetProjection(m mgl32.Mat4) {
	r.projection = m
}

// Update appends this frame's trail segments to the vertex ring.
// Frames producing more vertices than the ring holds are dropped.
func (r *Renderer) Update(snap Snapshot) {
	if d, ok := snap.(Departures); ok {
		for _, id := range d.Departed() {
			r.tracker.Forget(id)
		}
	}

	r.samples = r.samples[:0]
	for _, id := range snap.Entities() {
		r.samples = append(r.samples, Sample{ID: id, Pos: snap.Position(id), Color: snap.Color(id)})
	}

	segs := r.tracker.Update(r.samples)
	r.verts = Encode(r.verts, segs)
	if len(r.verts)%2 != 0 {
		panic(fmt.Sprintf("trail: encoder produced %d vertices", len(r.verts)))
	}
	r.ring.Append(r.verts)
}

// Draw renders the whole ring as line primitives, written or not.
// Never-written slots are zero and collapse to points at the origin.
func (r *Renderer) Draw() {
	g := r.gfx
	g.UseProgram(r.program)
	g.BindVertexBuffer(r.ring.buffer)

	g.VertexAttrib(0, 2, VertexSize, 0)
	g.VertexAttrib(1, 4, VertexSize, ColorOffset)
	g.UniformMatrix4(r.transformLoc, r.projection)
	g.LineWidth(r.opts.LineWidth)

	g.DrawLines(0, int32(r.ring.capacity))

	g.DisableVertexAttrib(0)
	g.DisableVertexAttrib(1)
}

// Forget prunes a single entity's cached position.
func (r *Renderer) Forget(id EntityID) { r.tracker.Forget(id) }

func (r *Renderer) Cursor() int   { return r.ring.Cursor() }
func (r *Renderer) Capacity() int { return r.ring.Capacity() }
func (r *Renderer) Dropped() int  { return r.ring.Dropped() }
func (r *Renderer) Tracked() int  { return r.tracker.Len() }

func (r *Renderer) Destroy() {
	if r.ring.buffer != 0 {
		r.gfx.DeleteBuffer(r.ring.buffer)
		r.ring.buffer = 0
	}
	if r.program != 0 {
		r.gfx.DeleteProgram(r.program)
		r.program = 0
	}
}
