package sm64

import "image"

// Scalar constrains the component types that cross the native boundary
// inside Point3 and Point2 values.
type Scalar interface {
	~int16 | ~float32
}

// Point3 is a point in 3D space. Its memory layout matches the native
// representation so slices of Point3 can be handed to libsm64 directly.
type Point3[T Scalar] struct {
	X, Y, Z T
}

// Point2 is a point in 2D space, used for texture coordinates.
type Point2[T Scalar] struct {
	X, Y T
}

// Color is an RGB color with float components in 0.0-1.0.
type Color struct {
	R, G, B float32
}

// LevelTriangle is the building block of collision geometry. Its memory
// layout is identical to the native SM64Surface record, so a
// []LevelTriangle is passed across the boundary without copying or
// per-element translation.
//
// Super Mario 64 uses integer math for collision detection; scale your
// engine's vertices appropriately before converting them. The vertex
// order matters: Mario only collides with the front face of a triangle.
type LevelTriangle struct {
	// Kind is the surface behavior of the triangle.
	Kind Surface
	// Force applies to a few surface kinds, such as flowing water.
	Force int16
	// Terrain selects the terrain sound and particle set.
	Terrain Terrain
	// Vertices are the triangle corners in winding order.
	Vertices [3]Point3[int16]
}

// SurfaceTransform positions and orients a dynamic surface.
type SurfaceTransform struct {
	// Position is the world-space location of the surface object.
	Position Point3[float32]
	// EulerRotation is the rotation around each axis, in degrees.
	EulerRotation Point3[float32]
}

// MarioInput is the controller state for one frame of Mario's logic.
// The zero value is a neutral pad.
type MarioInput struct {
	// CamLookX and CamLookZ give the camera's look direction, used to
	// make stick input camera-relative.
	CamLookX float32
	CamLookZ float32
	// StickX and StickY are the analog stick axes in -1.0 to 1.0.
	StickX float32
	StickY float32
	// ButtonA, ButtonB, and ButtonZ report whether each button is held.
	ButtonA bool
	ButtonB bool
	ButtonZ bool
}

// MarioState is Mario's world state after a tick of logic.
type MarioState struct {
	// Position is Mario's location in 3D space.
	Position Point3[float32]
	// Velocity is Mario's velocity on each axis.
	Velocity Point3[float32]
	// FaceAngle is the direction Mario is facing, in radians.
	FaceAngle float32
	// Health is Mario's health. Full health is 0x0880.
	Health int16
}

// MarioVertex is one vertex of Mario's rendered model.
type MarioVertex struct {
	Position Point3[float32]
	Normal   Point3[float32]
	Color    Color
	UV       Point2[float32]
}

// MarioTriangle is one triangle of Mario's rendered model.
type MarioTriangle struct {
	A, B, C MarioVertex
}

// Texture is a view of the RGBA texture atlas that maps onto Mario's
// geometry via the UV channel. Data remains valid until the Sm64 it was
// obtained from is closed.
type Texture struct {
	// Data holds 8-bit RGBA pixels, Width*Height*4 bytes.
	Data []byte
	// Width and Height are the atlas dimensions in pixels.
	Width  int
	Height int
}

// Image copies the atlas into a standard library RGBA image.
func (t Texture) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	copy(img.Pix, t.Data)
	return img
}
