package trail

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeEntity struct {
	id    EntityID
	pos   mgl32.Vec2
	color mgl32.Vec4
}

type fakeSnapshot struct {
	ents     []fakeEntity
	departed []EntityID
}

func (s *fakeSnapshot) Entities() []EntityID {
	ids := make([]EntityID, len(s.ents))
	for i, e := range s.ents {
		ids[i] = e.id
	}
	return ids
}

func (s *fakeSnapshot) find(id EntityID) fakeEntity {
	for _, e := range s.ents {
		if e.id == id {
			return e
		}
	}
	panic("unknown entity")
}

func (s *fakeSnapshot) Position(id EntityID) mgl32.Vec2 { return s.find(id).pos }
func (s *fakeSnapshot) Color(id EntityID) mgl32.Vec4    { return s.find(id).color }

type departingSnapshot struct{ *fakeSnapshot }

func (s departingSnapshot) Departed() []EntityID { return s.departed }

func newTestRenderer(t *testing.T, capacity int) (*Renderer, *fakeGraphics) {
	t.Helper()
	f := newFakeGraphics()
	r, err := NewRenderer(f, Options{Capacity: capacity, LineWidth: 1})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, f
}

func TestNewRendererErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		opts    Options
		setup   func(*fakeGraphics)
		wantErr error
		deleted int
	}{
		{name: "odd capacity", opts: Options{Capacity: 5}, wantErr: ErrBadCapacity},
		{name: "zero capacity", opts: Options{}, wantErr: ErrBadCapacity},
		{name: "link", opts: DefaultOptions(), setup: func(f *fakeGraphics) { f.linkErr = boom }, wantErr: boom},
		{name: "uniform", opts: DefaultOptions(), setup: func(f *fakeGraphics) { f.uniformErr = boom }, wantErr: boom, deleted: 1},
		{name: "buffer", opts: DefaultOptions(), setup: func(f *fakeGraphics) { f.bufferErr = boom }, wantErr: boom, deleted: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeGraphics()
			if tt.setup != nil {
				tt.setup(f)
			}
			r, err := NewRenderer(f, tt.opts)
			if r != nil || !errors.Is(err, tt.wantErr) {
				t.Fatalf("got (%v, %v), want error %v", r, err, tt.wantErr)
			}
			if len(f.deletedPrograms) != tt.deleted {
				t.Fatalf("deleted %d programs, want %d", len(f.deletedPrograms), tt.deleted)
			}
		})
	}
}

func TestRendererUpdateWritesOnlyNewSegments(t *testing.T) {
	r, f := newTestRenderer(t, 8)
	snap := &fakeSnapshot{ents: []fakeEntity{
		{id: 1, pos: mgl32.Vec2{0, 0}, color: red},
		{id: 2, pos: mgl32.Vec2{10, 0}, color: blue},
	}}

	r.Update(snap)
	if r.Cursor() != 0 || len(f.writes) != 0 {
		t.Fatalf("first frame wrote %v", f.writes)
	}

	snap.ents[0].pos = mgl32.Vec2{1, 0}
	snap.ents[1].pos = mgl32.Vec2{11, 0}
	r.Update(snap)
	if r.Cursor() != 4 {
		t.Fatalf("cursor = %d, want 4", r.Cursor())
	}
	want := []Vertex{
		{Pos: mgl32.Vec2{0, 0}, Color: red},
		{Pos: mgl32.Vec2{1, 0}, Color: red},
		{Pos: mgl32.Vec2{10, 0}, Color: blue},
		{Pos: mgl32.Vec2{11, 0}, Color: blue},
	}
	for i := range want {
		if f.mem[i] != want[i] {
			t.Fatalf("slot %d = %v, want %v", i, f.mem[i], want[i])
		}
	}
}

func TestRendererDropsOverflowingFrame(t *testing.T) {
	r, f := newTestRenderer(t, 4)
	snap := &fakeSnapshot{}
	for i := 0; i < 3; i++ {
		snap.ents = append(snap.ents, fakeEntity{id: EntityID(i), color: red})
	}
	r.Update(snap)
	r.Update(snap) // 3 segments = 6 vertices > 4

	if r.Dropped() != 1 || r.Cursor() != 0 || len(f.writes) != 0 {
		t.Fatalf("dropped=%d cursor=%d writes=%v", r.Dropped(), r.Cursor(), f.writes)
	}
	// The cache still advanced, so the next smaller frame draws from here.
	snap.ents = snap.ents[:1]
	snap.ents[0].pos = mgl32.Vec2{2, 2}
	r.Update(snap)
	if r.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", r.Cursor())
	}
}

func TestRendererPrunesDepartedEntities(t *testing.T) {
	r, _ := newTestRenderer(t, 8)
	base := &fakeSnapshot{ents: []fakeEntity{{id: 1}, {id: 2}}}
	r.Update(base)
	if r.Tracked() != 2 {
		t.Fatalf("tracked = %d, want 2", r.Tracked())
	}

	base.ents = base.ents[:1]
	base.departed = []EntityID{2}
	r.Update(departingSnapshot{base})
	if r.Tracked() != 1 {
		t.Fatalf("tracked = %d, want 1", r.Tracked())
	}
}

func TestRendererKeepsStaleWithoutDepartures(t *testing.T) {
	r, f := newTestRenderer(t, 8)
	snap := &fakeSnapshot{ents: []fakeEntity{{id: 1}, {id: 2}}}
	r.Update(snap)
	snap.ents = []fakeEntity{{id: 1, pos: mgl32.Vec2{3, 3}}}
	r.Update(snap)
	if r.Tracked() != 2 {
		t.Fatalf("tracked = %d, want 2", r.Tracked())
	}
	if len(f.writes) != 1 || f.writes[0].n != 2 {
		t.Fatalf("writes = %v, want one 2-vertex segment", f.writes)
	}
}

func TestRendererDrawFullCapacity(t *testing.T) {
	r, f := newTestRenderer(t, 16)
	proj := mgl32.Ortho2D(-10, 10, -10, 10)
	r.SetProjection(proj)
	r.Draw()

	if f.drawn != [2]int32{0, 16} {
		t.Fatalf("drew %v, want [0 16]", f.drawn)
	}
	if f.matrix != proj {
		t.Fatalf("transform = %v, want %v", f.matrix, proj)
	}
	if f.lineW != 1 {
		t.Fatalf("line width = %v", f.lineW)
	}
	if len(f.attribs) != 0 {
		t.Fatalf("attributes left enabled: %v", f.attribs)
	}
	want := []string{"use", "bind", "attrib", "attrib", "uniform", "draw", "disable", "disable"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", f.calls, want)
		}
	}
}

type attribRecorder struct {
	*fakeGraphics
	seen map[uint32][3]int
}

func (a *attribRecorder) VertexAttrib(index uint32, size, stride int32, offset int) {
	a.seen[index] = [3]int{int(size), int(stride), offset}
	a.fakeGraphics.VertexAttrib(index, size, stride, offset)
}

func TestRendererAttributeLayout(t *testing.T) {
	rec := &attribRecorder{fakeGraphics: newFakeGraphics(), seen: make(map[uint32][3]int)}
	r, err := NewRenderer(rec, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	r.Draw()
	if got := rec.seen[0]; got != [3]int{2, 24, 0} {
		t.Fatalf("position attrib = %v", got)
	}
	if got := rec.seen[1]; got != [3]int{4, 24, 8} {
		t.Fatalf("color attrib = %v", got)
	}
}

func TestRendererDestroy(t *testing.T) {
	r, f := newTestRenderer(t, 4)
	r.Destroy()
	r.Destroy()
	if len(f.deletedBuffers) != 1 || len(f.deletedPrograms) != 1 {
		t.Fatalf("buffers=%v programs=%v", f.deletedBuffers, f.deletedPrograms)
	}
}

func TestRendererUnwrittenSlotsAreZero(t *testing.T) {
	r, f := newTestRenderer(t, 8)
	snap := &fakeSnapshot{ents: []fakeEntity{{id: 1, pos: mgl32.Vec2{4, 4}, color: red}}}
	r.Update(snap)
	snap.ents[0].pos = mgl32.Vec2{5, 5}
	r.Update(snap)
	for i := 2; i < 8; i++ {
		if f.mem[i] != (Vertex{}) {
			t.Fatalf("slot %d = %v, want zero", i, f.mem[i])
		}
	}
}
