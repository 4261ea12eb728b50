package sm64

import (
	"slices"
	"testing"
)

// newTestMario spawns a Mario over a floor triangle.
func newTestMario(t *testing.T, fake *fakeBackend) *Mario {
	t.Helper()

	s := newTestLibrary(t, fake)
	s.LoadLevelGeometry([]LevelTriangle{floorTriangle()})

	m, err := s.CreateMario(0, 0, 0)
	if err != nil {
		t.Fatalf("CreateMario failed: %v", err)
	}
	return m
}

// TestTick_CapacityInCountOut verifies the triangle-count field carries
// the full scratch capacity into every tick, not the previous count.
func TestTick_CapacityInCountOut(t *testing.T) {
	fake := &fakeBackend{tickTriangles: 7}
	m := newTestMario(t, fake)

	m.Tick(MarioInput{})
	fake.tickTriangles = 3
	m.Tick(MarioInput{})

	want := []uint16{MaxTriangles, MaxTriangles}
	if !slices.Equal(fake.tickCapacityIn, want) {
		t.Errorf("capacity in = %v, want %v", fake.tickCapacityIn, want)
	}
	if got := len(m.Geometry().Positions()); got != 3*3 {
		t.Errorf("positions after second tick = %d, want %d", got, 3*3)
	}
}

// TestTick_State verifies the native state record converts by field.
func TestTick_State(t *testing.T) {
	fake := &fakeBackend{
		tickTriangles: 1,
		tickState: marioState{
			position:  [3]float32{1, 2, 3},
			velocity:  [3]float32{4, 5, 6},
			faceAngle: 1.5,
			health:    0x0880,
		},
	}
	m := newTestMario(t, fake)

	state := m.Tick(MarioInput{StickX: 0.5, ButtonA: true})

	if state.Position != (Point3[float32]{1, 2, 3}) {
		t.Errorf("position = %v, want {1 2 3}", state.Position)
	}
	if state.Velocity != (Point3[float32]{4, 5, 6}) {
		t.Errorf("velocity = %v, want {4 5 6}", state.Velocity)
	}
	if state.FaceAngle != 1.5 {
		t.Errorf("face angle = %v, want 1.5", state.FaceAngle)
	}
	if state.Health != 0x0880 {
		t.Errorf("health = %#04x, want 0x0880", state.Health)
	}
}

// TestGeometry_ViewLengths verifies every channel exposes exactly the
// live prefix, triangle count times three.
func TestGeometry_ViewLengths(t *testing.T) {
	fake := &fakeBackend{tickTriangles: 5}
	m := newTestMario(t, fake)

	geo := m.Geometry()
	if got := len(geo.Positions()); got != 0 {
		t.Errorf("positions before first tick = %d, want 0", got)
	}

	m.Tick(MarioInput{})

	wantVerts := 5 * 3
	if got := len(geo.Positions()); got != wantVerts {
		t.Errorf("positions = %d, want %d", got, wantVerts)
	}
	if got := len(geo.Normals()); got != wantVerts {
		t.Errorf("normals = %d, want %d", got, wantVerts)
	}
	if got := len(geo.Colors()); got != wantVerts {
		t.Errorf("colors = %d, want %d", got, wantVerts)
	}
	if got := len(geo.UVs()); got != wantVerts {
		t.Errorf("uvs = %d, want %d", got, wantVerts)
	}
}

// TestGeometry_ChannelValues verifies the typed views read the exact
// floats the native side wrote into each channel.
func TestGeometry_ChannelValues(t *testing.T) {
	fake := &fakeBackend{tickTriangles: 2}
	m := newTestMario(t, fake)
	m.Tick(MarioInput{})

	geo := m.Geometry()

	// The fake writes position[i] = i over the flat float array.
	if got := geo.Positions()[1]; got != (Point3[float32]{3, 4, 5}) {
		t.Errorf("second position = %v, want {3 4 5}", got)
	}
	if got := geo.Colors()[0]; got != (Color{0, 0.25, 0.5}) {
		t.Errorf("first color = %v, want {0 0.25 0.5}", got)
	}
	if got := geo.UVs()[1]; got != (Point2[float32]{0.25, 0.375}) {
		t.Errorf("second uv = %v, want {0.25 0.375}", got)
	}
}

// TestGeometry_VerticesRestartable verifies the vertex sequence is
// finite, matches the slice views, and can be iterated twice.
func TestGeometry_VerticesRestartable(t *testing.T) {
	fake := &fakeBackend{tickTriangles: 4}
	m := newTestMario(t, fake)
	m.Tick(MarioInput{})

	geo := m.Geometry()

	collect := func() []MarioVertex {
		var out []MarioVertex
		for v := range geo.Vertices() {
			out = append(out, v)
		}
		return out
	}

	first := collect()
	second := collect()

	if len(first) != 4*3 {
		t.Fatalf("vertex count = %d, want %d", len(first), 4*3)
	}
	if !slices.Equal(first, second) {
		t.Error("second iteration differs from the first")
	}
	if first[0].Position != geo.Positions()[0] {
		t.Errorf("vertex position = %v, want %v", first[0].Position, geo.Positions()[0])
	}
}

// TestGeometry_Triangles verifies triangle grouping follows vertex
// emission order, three consecutive vertices per triangle.
func TestGeometry_Triangles(t *testing.T) {
	fake := &fakeBackend{tickTriangles: 3}
	m := newTestMario(t, fake)
	m.Tick(MarioInput{})

	geo := m.Geometry()

	var tris []MarioTriangle
	for tri := range geo.Triangles() {
		tris = append(tris, tri)
	}

	if len(tris) != 3 {
		t.Fatalf("triangle count = %d, want 3", len(tris))
	}

	positions := geo.Positions()
	if tris[1].A.Position != positions[3] {
		t.Errorf("triangle 1 vertex A = %v, want %v", tris[1].A.Position, positions[3])
	}
	if tris[1].C.Position != positions[5] {
		t.Errorf("triangle 1 vertex C = %v, want %v", tris[1].C.Position, positions[5])
	}
}

// TestGeometry_EarlyBreak verifies a consumer can stop mid-sequence.
func TestGeometry_EarlyBreak(t *testing.T) {
	fake := &fakeBackend{tickTriangles: 8}
	m := newTestMario(t, fake)
	m.Tick(MarioInput{})

	count := 0
	for range m.Geometry().Triangles() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterated %d triangles, want 2", count)
	}
}
