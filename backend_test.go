package sm64

import (
	"testing"
	"unsafe"
)

// recordedMove captures one surfaceObjectMove call.
type recordedMove struct {
	id        uint32
	transform objectTransform
}

// fakeBackend is an instrumented stand-in for the native library. It
// mimics the native contracts: mario creation fails without static
// geometry beneath, and each tick reports how many triangles it wrote.
type fakeBackend struct {
	initCalls      int
	terminateCalls int
	romLen         int

	staticLoads  int
	staticCount  int
	staticLoaded bool

	nextMarioID  int32
	marioDeletes []int32

	tickCalls      int
	tickCapacityIn []uint16
	tickTriangles  uint16
	tickState      marioState

	nextObjectID  uint32
	objectCreates []uint32
	objectCounts  []uint32
	objectDeletes []uint32
	objectMoves   []recordedMove

	scratchAllocs int
	scratchFrees  int
}

func (f *fakeBackend) globalInit(rom []byte) []byte {
	f.initCalls++
	f.romLen = len(rom)

	texture := make([]byte, textureBytes)
	for i := range texture {
		texture[i] = byte(i)
	}
	return texture
}

func (f *fakeBackend) globalTerminate() {
	f.terminateCalls++
	f.staticLoaded = false
}

func (f *fakeBackend) staticSurfacesLoad(surfaces []LevelTriangle) {
	f.staticLoads++
	f.staticCount = len(surfaces)
	f.staticLoaded = len(surfaces) > 0
}

func (f *fakeBackend) marioCreate(x, y, z int16) int32 {
	// The native library signals "no surface beneath" with a negative id.
	if !f.staticLoaded {
		return -1
	}
	id := f.nextMarioID
	f.nextMarioID++
	return id
}

func (f *fakeBackend) marioTick(id int32, inputs *marioInputs, outState *marioState, outBuffers *geometryBuffers) {
	f.tickCalls++
	f.tickCapacityIn = append(f.tickCapacityIn, outBuffers.numTrianglesUsed)

	n := int(f.tickTriangles) * 3
	positions := unsafe.Slice(outBuffers.position, n*3)
	normals := unsafe.Slice(outBuffers.normal, n*3)
	colors := unsafe.Slice(outBuffers.color, n*3)
	uvs := unsafe.Slice(outBuffers.uv, n*2)

	for i := 0; i < n*3; i++ {
		positions[i] = float32(i)
		normals[i] = float32(i) / 2
		colors[i] = float32(i) / 4
	}
	for i := 0; i < n*2; i++ {
		uvs[i] = float32(i) / 8
	}

	*outState = f.tickState
	outBuffers.numTrianglesUsed = f.tickTriangles
}

func (f *fakeBackend) marioDelete(id int32) {
	f.marioDeletes = append(f.marioDeletes, id)
}

func (f *fakeBackend) surfaceObjectCreate(obj *surfaceObject) uint32 {
	id := f.nextObjectID
	f.nextObjectID++
	f.objectCreates = append(f.objectCreates, id)
	f.objectCounts = append(f.objectCounts, obj.surfaceCount)
	return id
}

func (f *fakeBackend) surfaceObjectMove(id uint32, transform *objectTransform) {
	f.objectMoves = append(f.objectMoves, recordedMove{id: id, transform: *transform})
}

func (f *fakeBackend) surfaceObjectDelete(id uint32) {
	f.objectDeletes = append(f.objectDeletes, id)
}

func (f *fakeBackend) allocScratch(floats int) []float32 {
	f.scratchAllocs++
	return make([]float32, floats)
}

func (f *fakeBackend) freeScratch(scratch []float32) {
	f.scratchFrees++
}

// newTestLibrary brings up a live Sm64 over a fake backend, bypassing
// the ROM hash gate, and tears it down when the test finishes.
func newTestLibrary(t *testing.T, fake *fakeBackend) *Sm64 {
	t.Helper()

	s, err := initLibrary(fake, []byte("rom"))
	if err != nil {
		t.Fatalf("initLibrary failed: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

// floorTriangle is a large triangle at y=-1 covering the x/z origin.
func floorTriangle() LevelTriangle {
	return LevelTriangle{
		Kind:    SurfaceDefault,
		Terrain: TerrainGrass,
		Vertices: [3]Point3[int16]{
			{X: 1000, Y: -1, Z: 1000},
			{X: 1000, Y: -1, Z: -1000},
			{X: -1000, Y: -1, Z: -1000},
		},
	}
}
