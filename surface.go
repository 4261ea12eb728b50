package sm64

// Surface is the behavior tag of a collision triangle. Values are the
// 16-bit constants the native library expects, so the field crosses the
// boundary by reinterpretation.
type Surface uint16

// Surface kinds understood by the collision engine.
const (
	SurfaceDefault                Surface = 0x0000
	SurfaceBurning                Surface = 0x0001
	Surface0004                   Surface = 0x0004
	SurfaceHangable               Surface = 0x0005
	SurfaceSlow                   Surface = 0x0009
	SurfaceDeathPlane             Surface = 0x000A
	SurfaceCloseCamera            Surface = 0x000B
	SurfaceWater                  Surface = 0x000D
	SurfaceFlowingWater           Surface = 0x000E
	SurfaceIntangible             Surface = 0x0012
	SurfaceVerySlippery           Surface = 0x0013
	SurfaceSlippery               Surface = 0x0014
	SurfaceNotSlippery            Surface = 0x0015
	SurfaceTtmVines               Surface = 0x0016
	SurfaceMgrMusic               Surface = 0x001A
	SurfaceInstantWarp1B          Surface = 0x001B
	SurfaceInstantWarp1C          Surface = 0x001C
	SurfaceInstantWarp1D          Surface = 0x001D
	SurfaceInstantWarp1E          Surface = 0x001E
	SurfaceShallowQuicksand       Surface = 0x0021
	SurfaceDeepQuicksand          Surface = 0x0022
	SurfaceInstantQuicksand       Surface = 0x0023
	SurfaceDeepMovingQuicksand    Surface = 0x0024
	SurfaceShallowMovingQuicksand Surface = 0x0025
	SurfaceQuicksand              Surface = 0x0026
	SurfaceMovingQuicksand        Surface = 0x0027
	SurfaceWallMisc               Surface = 0x0028
	SurfaceNoiseDefault           Surface = 0x0029
	SurfaceNoiseSlippery          Surface = 0x002A
	SurfaceHorizontalWind         Surface = 0x002C
	SurfaceInstantMovingQuicksand Surface = 0x002D
	SurfaceIce                    Surface = 0x002E
	SurfaceLookUpWarp             Surface = 0x002F
	SurfaceHard                   Surface = 0x0030
	SurfaceWarp                   Surface = 0x0032
	SurfaceTimerStart             Surface = 0x0033
	SurfaceTimerEnd               Surface = 0x0034
	SurfaceHardSlippery           Surface = 0x0035
	SurfaceHardVerySlippery       Surface = 0x0036
	SurfaceHardNotSlippery        Surface = 0x0037
	SurfaceVerticalWind           Surface = 0x0038
	SurfaceBossFightCamera        Surface = 0x0065
	SurfaceCameraFreeRoam         Surface = 0x0066
	SurfaceThi3Wallkick           Surface = 0x0068
	SurfaceCameraPlatform         Surface = 0x0069
	SurfaceCameraMiddle           Surface = 0x006E
	SurfaceCameraRotateRight      Surface = 0x006F
	SurfaceCameraRotateLeft       Surface = 0x0070
	SurfaceCameraBoundary         Surface = 0x0072
	SurfaceNoiseVerySlippery73    Surface = 0x0073
	SurfaceNoiseVerySlippery74    Surface = 0x0074
	SurfaceNoiseVerySlippery      Surface = 0x0075
	SurfaceNoCamCollision         Surface = 0x0076
	SurfaceNoCamCollision77       Surface = 0x0077
	SurfaceNoCamColVerySlippery   Surface = 0x0078
	SurfaceNoCamColSlippery       Surface = 0x0079
	SurfaceSwitch                 Surface = 0x007A
	SurfaceVanishCapWalls         Surface = 0x007B
	SurfacePaintingWobbleA6       Surface = 0x00A6
	SurfacePaintingWobbleA7       Surface = 0x00A7
	SurfacePaintingWobbleA8       Surface = 0x00A8
	SurfacePaintingWobbleA9       Surface = 0x00A9
	SurfacePaintingWobbleAA       Surface = 0x00AA
	SurfacePaintingWobbleAB       Surface = 0x00AB
	SurfacePaintingWobbleAC       Surface = 0x00AC
	SurfacePaintingWobbleAD       Surface = 0x00AD
	SurfacePaintingWobbleAE       Surface = 0x00AE
	SurfacePaintingWobbleAF       Surface = 0x00AF
	SurfacePaintingWobbleB0       Surface = 0x00B0
	SurfacePaintingWobbleB1       Surface = 0x00B1
	SurfacePaintingWobbleB2       Surface = 0x00B2
	SurfacePaintingWobbleB3       Surface = 0x00B3
	SurfacePaintingWobbleB4       Surface = 0x00B4
	SurfacePaintingWobbleB5       Surface = 0x00B5
	SurfacePaintingWobbleB6       Surface = 0x00B6
	SurfacePaintingWobbleB7       Surface = 0x00B7
	SurfacePaintingWobbleB8       Surface = 0x00B8
	SurfacePaintingWobbleB9       Surface = 0x00B9
	SurfacePaintingWobbleBA       Surface = 0x00BA
	SurfacePaintingWobbleBB       Surface = 0x00BB
	SurfacePaintingWobbleBC       Surface = 0x00BC
	SurfacePaintingWobbleBD       Surface = 0x00BD
	SurfacePaintingWobbleBE       Surface = 0x00BE
	SurfacePaintingWobbleBF       Surface = 0x00BF
	SurfacePaintingWobbleC0       Surface = 0x00C0
	SurfacePaintingWobbleC1       Surface = 0x00C1
	SurfacePaintingWobbleC2       Surface = 0x00C2
	SurfacePaintingWobbleC3       Surface = 0x00C3
	SurfacePaintingWobbleC4       Surface = 0x00C4
	SurfacePaintingWobbleC5       Surface = 0x00C5
	SurfacePaintingWobbleC6       Surface = 0x00C6
	SurfacePaintingWobbleC7       Surface = 0x00C7
	SurfacePaintingWobbleC8       Surface = 0x00C8
	SurfacePaintingWobbleC9       Surface = 0x00C9
	SurfacePaintingWobbleCA       Surface = 0x00CA
	SurfacePaintingWobbleCB       Surface = 0x00CB
	SurfacePaintingWobbleCC       Surface = 0x00CC
	SurfacePaintingWobbleCD       Surface = 0x00CD
	SurfacePaintingWobbleCE       Surface = 0x00CE
	SurfacePaintingWobbleCF       Surface = 0x00CF
	SurfacePaintingWobbleD0       Surface = 0x00D0
	SurfacePaintingWobbleD1       Surface = 0x00D1
	SurfacePaintingWobbleD2       Surface = 0x00D2
	SurfacePaintingWarpD3         Surface = 0x00D3
	SurfacePaintingWarpD4         Surface = 0x00D4
	SurfacePaintingWarpD5         Surface = 0x00D5
	SurfacePaintingWarpD6         Surface = 0x00D6
	SurfacePaintingWarpD7         Surface = 0x00D7
	SurfacePaintingWarpD8         Surface = 0x00D8
	SurfacePaintingWarpD9         Surface = 0x00D9
	SurfacePaintingWarpDA         Surface = 0x00DA
	SurfacePaintingWarpDB         Surface = 0x00DB
	SurfacePaintingWarpDC         Surface = 0x00DC
	SurfacePaintingWarpDD         Surface = 0x00DD
	SurfacePaintingWarpDE         Surface = 0x00DE
	SurfacePaintingWarpDF         Surface = 0x00DF
	SurfacePaintingWarpE0         Surface = 0x00E0
	SurfacePaintingWarpE1         Surface = 0x00E1
	SurfacePaintingWarpE2         Surface = 0x00E2
	SurfacePaintingWarpE3         Surface = 0x00E3
	SurfacePaintingWarpE4         Surface = 0x00E4
	SurfacePaintingWarpE5         Surface = 0x00E5
	SurfacePaintingWarpE6         Surface = 0x00E6
	SurfacePaintingWarpE7         Surface = 0x00E7
	SurfacePaintingWarpE8         Surface = 0x00E8
	SurfacePaintingWarpE9         Surface = 0x00E9
	SurfacePaintingWarpEA         Surface = 0x00EA
	SurfacePaintingWarpEB         Surface = 0x00EB
	SurfacePaintingWarpEC         Surface = 0x00EC
	SurfacePaintingWarpED         Surface = 0x00ED
	SurfacePaintingWarpEE         Surface = 0x00EE
	SurfacePaintingWarpEF         Surface = 0x00EF
	SurfacePaintingWarpF0         Surface = 0x00F0
	SurfacePaintingWarpF1         Surface = 0x00F1
	SurfacePaintingWarpF2         Surface = 0x00F2
	SurfacePaintingWarpF3         Surface = 0x00F3
	SurfaceTtcPainting1           Surface = 0x00F4
	SurfaceTtcPainting2           Surface = 0x00F5
	SurfaceTtcPainting3           Surface = 0x00F6
	SurfacePaintingWarpF7         Surface = 0x00F7
	SurfacePaintingWarpF8         Surface = 0x00F8
	SurfacePaintingWarpF9         Surface = 0x00F9
	SurfacePaintingWarpFA         Surface = 0x00FA
	SurfacePaintingWarpFB         Surface = 0x00FB
	SurfacePaintingWarpFC         Surface = 0x00FC
	SurfaceWobblingWarp           Surface = 0x00FD
	SurfaceTrapdoor               Surface = 0x00FF
)

// Terrain is the terrain tag of a collision triangle, selecting step
// sounds and particles. Values match the native 16-bit constants.
type Terrain uint16

// Terrain kinds.
const (
	TerrainGrass  Terrain = 0x0000
	TerrainStone  Terrain = 0x0001
	TerrainSnow   Terrain = 0x0002
	TerrainSand   Terrain = 0x0003
	TerrainSpooky Terrain = 0x0004
	TerrainWater  Terrain = 0x0005
	TerrainSlide  Terrain = 0x0006
	TerrainMask   Terrain = 0x0007
)
