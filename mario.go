package sm64

import (
	"iter"
	"unsafe"
)

// Mario is one simulated Mario instance. Create it with
// Sm64.CreateMario and drive it with Tick once per frame.
type Mario struct {
	ctx      *Sm64
	id       int32
	geometry *MarioGeometry
	closed   bool
}

// Tick advances the simulation by one frame, nominally 1/30th of a
// second, and returns Mario's updated state. The geometry view is
// rewritten in place; slices and iterators obtained before the call
// observe the new frame.
func (m *Mario) Tick(input MarioInput) MarioState {
	in := input.native()

	var state marioState
	buffers := geometryBuffers{
		position: &m.geometry.position[0],
		normal:   &m.geometry.normal[0],
		color:    &m.geometry.color[0],
		uv:       &m.geometry.uv[0],

		// Capacity in, written count out. Always the full capacity,
		// never the previous tick's count.
		numTrianglesUsed: MaxTriangles,
	}

	m.ctx.lib.marioTick(m.id, &in, &state, &buffers)
	m.geometry.numTriangles = int(buffers.numTrianglesUsed)

	return state.typed()
}

// Geometry returns Mario's model as of the most recent Tick. The view
// stays valid until the Mario is closed.
func (m *Mario) Geometry() *MarioGeometry {
	return m.geometry
}

// Close deletes the native Mario instance and releases its geometry
// buffers. It is idempotent; Sm64.Close closes any Mario still live.
func (m *Mario) Close() {
	if m.closed {
		return
	}
	delete(m.ctx.marios, m.id)
	m.release()
}

func (m *Mario) release() {
	m.closed = true
	m.ctx.lib.marioDelete(m.id)
	m.geometry.free(m.ctx.lib)
}

// MarioGeometry holds the vertex data the native library writes on each
// tick: four parallel arrays sized for MaxTriangles, of which only the
// prefix written by the most recent tick is exposed.
type MarioGeometry struct {
	position []float32 // 3 floats per vertex
	normal   []float32 // 3 floats per vertex
	color    []float32 // 3 floats per vertex
	uv       []float32 // 2 floats per vertex

	numTriangles int
}

func newMarioGeometry(lib backend) *MarioGeometry {
	const vertices = MaxTriangles * 3
	return &MarioGeometry{
		position: lib.allocScratch(vertices * 3),
		normal:   lib.allocScratch(vertices * 3),
		color:    lib.allocScratch(vertices * 3),
		uv:       lib.allocScratch(vertices * 2),
	}
}

func (g *MarioGeometry) free(lib backend) {
	lib.freeScratch(g.position)
	lib.freeScratch(g.normal)
	lib.freeScratch(g.color)
	lib.freeScratch(g.uv)
	g.position = nil
	g.normal = nil
	g.color = nil
	g.uv = nil
	g.numTriangles = 0
}

// vertexCount is the number of vertices written by the most recent
// tick, always a multiple of three.
func (g *MarioGeometry) vertexCount() int {
	return g.numTriangles * 3
}

// Positions returns the position of each live vertex.
func (g *MarioGeometry) Positions() []Point3[float32] {
	return view3(g.position, g.vertexCount())
}

// Normals returns the normal of each live vertex.
func (g *MarioGeometry) Normals() []Point3[float32] {
	return view3(g.normal, g.vertexCount())
}

// Colors returns the color of each live vertex.
func (g *MarioGeometry) Colors() []Color {
	n := g.vertexCount()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Color)(unsafe.Pointer(&g.color[0])), n)
}

// UVs returns the texture coordinate of each live vertex.
func (g *MarioGeometry) UVs() []Point2[float32] {
	n := g.vertexCount()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Point2[float32])(unsafe.Pointer(&g.uv[0])), n)
}

func view3(raw []float32, n int) []Point3[float32] {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Point3[float32])(unsafe.Pointer(&raw[0])), n)
}

// Vertices iterates over the live vertices in emission order, three
// consecutive vertices forming one triangle. The sequence is finite and
// restartable.
func (g *MarioGeometry) Vertices() iter.Seq[MarioVertex] {
	return func(yield func(MarioVertex) bool) {
		positions := g.Positions()
		normals := g.Normals()
		colors := g.Colors()
		uvs := g.UVs()

		for i := range positions {
			v := MarioVertex{
				Position: positions[i],
				Normal:   normals[i],
				Color:    colors[i],
				UV:       uvs[i],
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Triangles iterates over the live triangles in emission order, with
// the winding the native library produced. The sequence is finite and
// restartable.
func (g *MarioGeometry) Triangles() iter.Seq[MarioTriangle] {
	return func(yield func(MarioTriangle) bool) {
		positions := g.Positions()
		normals := g.Normals()
		colors := g.Colors()
		uvs := g.UVs()

		for t := 0; t < g.numTriangles; t++ {
			var tri [3]MarioVertex
			for c := range tri {
				i := t*3 + c
				tri[c] = MarioVertex{
					Position: positions[i],
					Normal:   normals[i],
					Color:    colors[i],
					UV:       uvs[i],
				}
			}
			if !yield(MarioTriangle{A: tri[0], B: tri[1], C: tri[2]}) {
				return
			}
		}
	}
}
