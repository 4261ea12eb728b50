// Package sm64 is a Go wrapper around libsm64, the native library that
// extracts Mario's movement, physics, animation, and rendering geometry
// from the Super Mario 64 (USA) ROM. It lets you drop a fully simulated
// Mario into your own 3D engine: you supply the ROM and per-frame
// controller input, the wrapper returns Mario's updated state and a
// triangle mesh ready for rendering along with a texture atlas.
//
// A copy of the Super Mario 64 (USA) ROM must be provided by the caller.
// Only the ROM with a SHA-1 hash of
// '9bef1128717f958171a4afac3ed78ee2bb4e86ce' is accepted.
//
// Typical use:
//
//	f, err := os.Open("baserom.us.z64")
//	if err != nil {
//		// ...
//	}
//	defer f.Close()
//
//	lib, err := sm64.New(f)
//	if err != nil {
//		// ...
//	}
//	defer lib.Close()
//
//	// Convert your level's collision mesh into LevelTriangles and load
//	// it for surface queries.
//	lib.LoadLevelGeometry(levelTriangles)
//
//	mario, err := lib.CreateMario(0, 0, 0)
//	if err != nil {
//		// ...
//	}
//	defer mario.Close()
//
//	// Once per frame, nominally at 30Hz:
//	state := mario.Tick(sm64.MarioInput{StickX: 0.5, ButtonA: true})
//
//	for tri := range mario.Geometry().Triangles() {
//		drawTriangle(tri, lib.Texture())
//	}
//
// The native library holds process-wide global state. At most one Sm64
// may be live per process, and no wrapper call is safe for concurrent
// entry from multiple goroutines; callers that share a Sm64 across
// goroutines must serialize access themselves.
package sm64
