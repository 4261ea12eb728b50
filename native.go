package sm64

// Mirror records for the native structs that are converted by field
// assignment rather than passed as raw slices. Layouts are byte-for-byte
// identical to the corresponding C structs; native_cgo.go carries
// compile-time size assertions for each.

// marioInputs mirrors struct SM64MarioInputs.
type marioInputs struct {
	camLookX, camLookZ float32
	stickX, stickY     float32
	buttonA            uint8
	buttonB            uint8
	buttonZ            uint8
}

// marioState mirrors struct SM64MarioState.
type marioState struct {
	position  [3]float32
	velocity  [3]float32
	faceAngle float32
	health    int16
}

// geometryBuffers mirrors struct SM64MarioGeometryBuffers. Before a tick
// numTrianglesUsed carries the capacity the caller accepts; after the
// call it holds the number of triangles written.
type geometryBuffers struct {
	position *float32
	normal   *float32
	color    *float32
	uv       *float32

	numTrianglesUsed uint16
}

// objectTransform mirrors struct SM64ObjectTransform.
type objectTransform struct {
	position      [3]float32
	eulerRotation [3]float32
}

// surfaceObject mirrors struct SM64SurfaceObject. The surfaces pointer
// is only read for the duration of the create call; the native side
// copies the triangles.
type surfaceObject struct {
	transform    objectTransform
	surfaceCount uint32
	surfaces     *LevelTriangle
}

// backend is the single path from the wrapper to the native library.
// The default implementation calls through cgo; tests install an
// instrumented fake so lifecycle and buffer contracts can be verified
// without the ROM.
type backend interface {
	// globalInit hands the ROM to the native side and returns a view of
	// the RGBA texture atlas the init filled in. Both buffers stay
	// valid until globalTerminate.
	globalInit(rom []byte) (texture []byte)
	globalTerminate()

	staticSurfacesLoad(surfaces []LevelTriangle)

	marioCreate(x, y, z int16) int32
	marioTick(id int32, inputs *marioInputs, outState *marioState, outBuffers *geometryBuffers)
	marioDelete(id int32)

	surfaceObjectCreate(obj *surfaceObject) uint32
	surfaceObjectMove(id uint32, transform *objectTransform)
	surfaceObjectDelete(id uint32)

	// allocScratch and freeScratch manage the per-Mario geometry
	// buffers. The cgo backend allocates them in C memory because the
	// native tick writes into them through raw pointers.
	allocScratch(floats int) []float32
	freeScratch(scratch []float32)
}

func (in MarioInput) native() marioInputs {
	n := marioInputs{
		camLookX: in.CamLookX,
		camLookZ: in.CamLookZ,
		stickX:   in.StickX,
		stickY:   in.StickY,
	}
	if in.ButtonA {
		n.buttonA = 1
	}
	if in.ButtonB {
		n.buttonB = 1
	}
	if in.ButtonZ {
		n.buttonZ = 1
	}
	return n
}

func (s *marioState) typed() MarioState {
	return MarioState{
		Position:  Point3[float32]{s.position[0], s.position[1], s.position[2]},
		Velocity:  Point3[float32]{s.velocity[0], s.velocity[1], s.velocity[2]},
		FaceAngle: s.faceAngle,
		Health:    s.health,
	}
}

func (t SurfaceTransform) native() objectTransform {
	return objectTransform{
		position:      [3]float32{t.Position.X, t.Position.Y, t.Position.Z},
		eulerRotation: [3]float32{t.EulerRotation.X, t.EulerRotation.Y, t.EulerRotation.Z},
	}
}
