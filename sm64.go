package sm64

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"sync/atomic"
)

// libInUse guards the process-wide native state. Only one Sm64 may be
// live at a time.
var libInUse atomic.Bool

// Sm64 is the core interface to libsm64. Constructing one initializes
// the native library with the supplied ROM; Close tears it down again.
type Sm64 struct {
	lib     backend
	texture []byte
	marios  map[int32]*Mario
	objects map[uint32]*DynamicSurface
	closed  bool
}

// New initializes the native library from a Super Mario 64 (USA) ROM.
// The reader is consumed in full and its contents verified against
// ValidROMHash before the native side is touched.
//
// New fails with *InvalidROMError for any other ROM, and with
// ErrLibraryInUse while a previous Sm64 has not been closed.
func New(rom io.Reader) (*Sm64, error) {
	return newSm64(defaultBackend, rom)
}

func newSm64(lib backend, rom io.Reader) (*Sm64, error) {
	data, err := io.ReadAll(rom)
	if err != nil {
		return nil, fmt.Errorf("failed to read rom: %w", err)
	}

	sum := sha1.Sum(data)
	if hash := hex.EncodeToString(sum[:]); hash != ValidROMHash {
		return nil, &InvalidROMError{Hash: hash}
	}

	return initLibrary(lib, data)
}

// initLibrary brings the native library up with already-validated ROM
// bytes. Split from newSm64 so tests can reach the live state through
// an instrumented backend.
func initLibrary(lib backend, rom []byte) (*Sm64, error) {
	if !libInUse.CompareAndSwap(false, true) {
		return nil, ErrLibraryInUse
	}

	return &Sm64{
		lib:     lib,
		texture: lib.globalInit(rom),
		marios:  make(map[int32]*Mario),
		objects: make(map[uint32]*DynamicSurface),
	}, nil
}

// Texture returns the atlas that maps onto Mario's geometry. The view
// stays valid until Close.
func (s *Sm64) Texture() Texture {
	return Texture{
		Data:   s.texture,
		Width:  TextureWidth,
		Height: TextureHeight,
	}
}

// LoadLevelGeometry loads the static collision geometry used for
// surface queries. Calling it again replaces the previous set.
func (s *Sm64) LoadLevelGeometry(geometry []LevelTriangle) {
	s.lib.staticSurfacesLoad(geometry)
}

// CreateMario spawns a new Mario at the given coordinates. The spawn
// point must be above a surface or ErrInvalidMarioPosition is returned;
// the caller may retry with different coordinates.
func (s *Sm64) CreateMario(x, y, z int16) (*Mario, error) {
	id := s.lib.marioCreate(x, y, z)
	if id < 0 {
		return nil, ErrInvalidMarioPosition
	}

	m := &Mario{
		ctx:      s,
		id:       id,
		geometry: newMarioGeometry(s.lib),
	}
	s.marios[id] = m
	return m, nil
}

// CreateDynamicSurface creates a movable collision object, good for
// moving platforms. The triangles are copied by the native side during
// the call; the caller keeps ownership of the slice.
func (s *Sm64) CreateDynamicSurface(geometry []LevelTriangle, transform SurfaceTransform) *DynamicSurface {
	obj := surfaceObject{
		transform:    transform.native(),
		surfaceCount: uint32(len(geometry)),
	}
	if len(geometry) > 0 {
		obj.surfaces = &geometry[0]
	}

	d := &DynamicSurface{
		ctx: s,
		id:  s.lib.surfaceObjectCreate(&obj),
	}
	s.objects[d.id] = d
	return d
}

// Close releases every Mario and dynamic surface still live, then tears
// the native library down. It is idempotent. All views obtained from
// this Sm64 are invalid afterwards.
func (s *Sm64) Close() {
	if s.closed {
		return
	}
	s.closed = true

	for _, m := range s.marios {
		m.release()
	}
	clear(s.marios)

	for _, d := range s.objects {
		d.release()
	}
	clear(s.objects)

	s.lib.globalTerminate()
	s.texture = nil
	libInUse.Store(false)
}
