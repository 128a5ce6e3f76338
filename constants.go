package mire

// Default world configuration. The coordinate mapper and the movement helpers
// read these directly; the terrain mesh builder takes them through
// [TerrainConfig] so alternative grids can be built and validated explicitly.
const (
	// TilesWide and TilesHigh are the terrain grid dimensions in tiles.
	TilesWide = 100
	TilesHigh = 100

	// TileSize is the edge length of one tile in world units.
	TileSize = 60.0

	// IsoAspect is the divisor applied to the summed axis of the isometric
	// shear when generating the terrain mesh. Derived from the screen
	// aspect ratio.
	IsoAspect = 16.0 / 9.0

	// TileDivisor is the summed-axis divisor used for tile-center
	// placement. Distinct from IsoAspect on purpose: the mesh shear and
	// the placement shear are separate contracts.
	TileDivisor = 4.0

	// ViewDistance is the default camera distance from the world plane.
	ViewDistance = 300.0

	// AspectRatio of the projection frustum.
	AspectRatio = 16.0 / 9.0
)

// gridAnchorY is half the projected height of the default grid. TileToCoords
// subtracts it so tile (0,0) sits at the known anchor (0, -gridAnchorY).
const gridAnchorY = (TilesWide + TilesHigh) * TileSize / TileDivisor / 2
