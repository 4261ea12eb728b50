package sm64

/*
#cgo CFLAGS: -I${SRCDIR}/include
#cgo LDFLAGS: -lsm64 -lm

#include <stdlib.h>
#include <string.h>
#include "libsm64.h"
*/
import "C"

import "unsafe"

// Limits advertised by the native library.
const (
	// TextureWidth and TextureHeight are the dimensions of the RGBA
	// texture atlas filled during init.
	TextureWidth  = C.SM64_TEXTURE_WIDTH
	TextureHeight = C.SM64_TEXTURE_HEIGHT

	// MaxTriangles is the most triangles a single tick can write into
	// the geometry scratch buffers.
	MaxTriangles = C.SM64_GEO_MAX_TRIANGLES
)

const textureBytes = TextureWidth * TextureHeight * 4

// Compile-time layout parity between the Go records and the C structs
// they are reinterpreted as. A mismatch in either direction underflows
// the unsigned constant and fails the build.
const (
	_ = unsafe.Sizeof(LevelTriangle{}) - C.sizeof_struct_SM64Surface
	_ = C.sizeof_struct_SM64Surface - unsafe.Sizeof(LevelTriangle{})
	_ = unsafe.Sizeof(marioInputs{}) - C.sizeof_struct_SM64MarioInputs
	_ = C.sizeof_struct_SM64MarioInputs - unsafe.Sizeof(marioInputs{})
	_ = unsafe.Sizeof(marioState{}) - C.sizeof_struct_SM64MarioState
	_ = C.sizeof_struct_SM64MarioState - unsafe.Sizeof(marioState{})
	_ = unsafe.Sizeof(geometryBuffers{}) - C.sizeof_struct_SM64MarioGeometryBuffers
	_ = C.sizeof_struct_SM64MarioGeometryBuffers - unsafe.Sizeof(geometryBuffers{})
	_ = unsafe.Sizeof(objectTransform{}) - C.sizeof_struct_SM64ObjectTransform
	_ = C.sizeof_struct_SM64ObjectTransform - unsafe.Sizeof(objectTransform{})
	_ = unsafe.Sizeof(surfaceObject{}) - C.sizeof_struct_SM64SurfaceObject
	_ = C.sizeof_struct_SM64SurfaceObject - unsafe.Sizeof(surfaceObject{})
)

// defaultBackend is the cgo-backed native library used by New.
var defaultBackend backend = &cgoBackend{}

// cgoBackend calls libsm64 through cgo. The ROM and texture atlas are
// kept in C memory because sm64_global_init retains both pointers past
// the call, which cgo pointer rules forbid for Go memory.
type cgoBackend struct {
	rom     unsafe.Pointer
	texture unsafe.Pointer
}

func (b *cgoBackend) globalInit(rom []byte) []byte {
	b.rom = C.CBytes(rom)
	b.texture = C.malloc(textureBytes)
	C.memset(b.texture, 0, textureBytes)

	C.sm64_global_init((*C.uint8_t)(b.rom), (*C.uint8_t)(b.texture), nil)

	return unsafe.Slice((*byte)(b.texture), textureBytes)
}

func (b *cgoBackend) globalTerminate() {
	C.sm64_global_terminate()

	if b.rom != nil {
		C.free(b.rom)
		b.rom = nil
	}
	if b.texture != nil {
		C.free(b.texture)
		b.texture = nil
	}
}

func (b *cgoBackend) staticSurfacesLoad(surfaces []LevelTriangle) {
	if len(surfaces) == 0 {
		C.sm64_static_surfaces_load(nil, 0)
		return
	}
	// The native side copies the surfaces before returning, so passing
	// the slice directly is within the cgo pointer rules.
	C.sm64_static_surfaces_load(
		(*C.struct_SM64Surface)(unsafe.Pointer(&surfaces[0])),
		C.uint32_t(len(surfaces)),
	)
}

func (b *cgoBackend) marioCreate(x, y, z int16) int32 {
	return int32(C.sm64_mario_create(C.int16_t(x), C.int16_t(y), C.int16_t(z)))
}

func (b *cgoBackend) marioTick(id int32, inputs *marioInputs, outState *marioState, outBuffers *geometryBuffers) {
	C.sm64_mario_tick(
		C.int32_t(id),
		(*C.struct_SM64MarioInputs)(unsafe.Pointer(inputs)),
		(*C.struct_SM64MarioState)(unsafe.Pointer(outState)),
		(*C.struct_SM64MarioGeometryBuffers)(unsafe.Pointer(outBuffers)),
	)
}

func (b *cgoBackend) marioDelete(id int32) {
	C.sm64_mario_delete(C.int32_t(id))
}

func (b *cgoBackend) surfaceObjectCreate(obj *surfaceObject) uint32 {
	// The surfaces field points at Go memory, and a struct containing a
	// Go pointer may not cross the boundary. Stage the triangles in C
	// memory for the duration of the call; the native side copies them.
	var cSurfaces unsafe.Pointer
	if obj.surfaceCount > 0 {
		size := C.size_t(obj.surfaceCount) * C.sizeof_struct_SM64Surface
		cSurfaces = C.malloc(size)
		defer C.free(cSurfaces)
		C.memcpy(cSurfaces, unsafe.Pointer(obj.surfaces), size)
	}

	cObj := C.struct_SM64SurfaceObject{
		transform:    *(*C.struct_SM64ObjectTransform)(unsafe.Pointer(&obj.transform)),
		surfaceCount: C.uint32_t(obj.surfaceCount),
		surfaces:     (*C.struct_SM64Surface)(cSurfaces),
	}
	return uint32(C.sm64_surface_object_create(&cObj))
}

func (b *cgoBackend) surfaceObjectMove(id uint32, transform *objectTransform) {
	C.sm64_surface_object_move(
		C.uint32_t(id),
		(*C.struct_SM64ObjectTransform)(unsafe.Pointer(transform)),
	)
}

func (b *cgoBackend) surfaceObjectDelete(id uint32) {
	C.sm64_surface_object_delete(C.uint32_t(id))
}

func (b *cgoBackend) allocScratch(floats int) []float32 {
	p := C.malloc(C.size_t(floats) * C.sizeof_float)
	C.memset(p, 0, C.size_t(floats)*C.sizeof_float)
	return unsafe.Slice((*float32)(p), floats)
}

func (b *cgoBackend) freeScratch(scratch []float32) {
	if len(scratch) == 0 {
		return
	}
	C.free(unsafe.Pointer(&scratch[0]))
}
