package trail

import "github.com/go-gl/mathgl/mgl32"

// EntityID is an opaque, stable handle for a simulated entity.
type EntityID uint64

// Sample is one entity's state in the current snapshot.
type Sample struct {
	ID    EntityID
	Pos   mgl32.Vec2
	Color mgl32.Vec4
}

// Segment connects an entity's previous and current sampled positions.
type Segment struct {
	From, To mgl32.Vec2
	Color    mgl32.Vec4
}

// Tracker remembers the last position of every entity it has seen.
// Entries are only removed through Forget.
type Tracker struct {
	last map[EntityID]mgl32.Vec2
	segs []Segment // reused between updates
}

func NewTracker() *Tracker {
	return &Tracker{last: make(map[EntityID]mgl32.Vec2)}
}

// Update records the samples and returns one segment per entity that was
// already known, in sample order. First sightings only seed the cache.
// The returned slice is reused by the next call.
func (t *Tracker) Update(samples []Sample) []Segment {
	t.segs = t.segs[:0]
	for _, s := range samples {
		prev, ok := t.last[s.ID]
		t.last[s.ID] = s.Pos
		if !ok {
			continue
		}
		t.segs = append(t.segs, Segment{From: prev, To: s.Pos, Color: s.Color})
	}
	return t.segs
}

// Forget drops the cached position so a returning handle starts a fresh trail.
func (t *Tracker) Forget(id EntityID) {
	delete(t.last, id)
}

// Len reports how many entities have a cached position.
func (t *Tracker) Len() int { return len(t.last) }

// Last returns the cached position for id.
func (t *Tracker) Last(id EntityID) (mgl32.Vec2, bool) {
	p, ok := t.last[id]
	return p, ok
}
