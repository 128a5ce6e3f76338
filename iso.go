package mire

import "math"

// CartesianToIsometric applies the 2:1-style isometric shear used by the
// terrain mesh: the difference of the axes spreads horizontally and their sum
// is compressed vertically by [IsoAspect].
func CartesianToIsometric(x, y float64) (isoX, isoY float64) {
	return x - y, (x + y) / IsoAspect
}

// TileToCoords returns the world-space center of a tile. The placement shear
// uses [TileDivisor] and anchors the grid so tile (0,0) sits at
// (0, -gridAnchorY) — (0, -1500) under the default configuration.
//
// Exact and deterministic: the same tile always yields the same point. No
// bounds checking is performed; addresses outside the grid extrapolate.
func TileToCoords(t Tile) Vec2 {
	return Vec2{
		X: float64(t.Col-t.Row) * TileSize,
		Y: float64(t.Col+t.Row)*TileSize/TileDivisor - gridAnchorY,
	}
}

// CoordsToTile returns the tile containing a world position, rounding to the
// nearest tile center. Inverse of [TileToCoords] on canonical centers:
// CoordsToTile(TileToCoords(t)) == t for every t.
//
// The general mapping is lossy by design — every position within a tile maps
// to the same address. No bounds checking is performed.
func CoordsToTile(p Vec2) Tile {
	sum := (p.Y + gridAnchorY) * TileDivisor / TileSize
	diff := p.X / TileSize
	return Tile{
		Col: int(math.Round((sum + diff) / 2)),
		Row: int(math.Round((sum - diff) / 2)),
	}
}

// CanMoveToTile reports whether a world position resolves to a tile inside
// the default grid. Movement and collision logic calls this before
// committing a position; the mapper itself never rejects input.
func CanMoveToTile(p Vec2) bool {
	t := CoordsToTile(p)
	return t.Col >= 0 && t.Col < TilesWide &&
		t.Row >= 0 && t.Row < TilesHigh
}
