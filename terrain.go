package mire

import (
	"fmt"
	"log"
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vertex position scale divisors. Together with the tile counts they stretch
// the unit plane to the projected size of the full grid.
const (
	meshScaleX = 1.5
	meshScaleY = 1.666
)

// Atlas UV shear divisors. A second isometric-style shear maps the planar
// position into [0,1]² atlas space before scaling by the tile counts.
const (
	uvShearX = 4.0
	uvShearY = 2.25
)

// TerrainConfig holds the grid subdivision parameters for a terrain mesh.
type TerrainConfig struct {
	TilesWide int     // grid width in tiles
	TilesHigh int     // grid height in tiles
	TileSize  float64 // tile edge length in world units
	// TilesheetSize is the atlas tile dimension in pixels, uploaded to the
	// fragment stage through TerrainSettings.
	TilesheetSize float64
}

// DefaultTerrainConfig returns the reference grid configuration.
func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		TilesWide:     TilesWide,
		TilesHigh:     TilesHigh,
		TileSize:      TileSize,
		TilesheetSize: 32,
	}
}

func (c TerrainConfig) validate() error {
	if c.TilesWide <= 0 || c.TilesHigh <= 0 {
		return fmt.Errorf("mire: terrain grid %dx%d: tile counts must be positive", c.TilesWide, c.TilesHigh)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("mire: terrain tile size %v must be positive", c.TileSize)
	}
	// One shared vertex per grid intersection, indexed by uint16.
	if (c.TilesWide+1)*(c.TilesHigh+1) > math.MaxUint16+1 {
		return fmt.Errorf("mire: terrain grid %dx%d exceeds the uint16 index range", c.TilesWide, c.TilesHigh)
	}
	return nil
}

// TerrainMesh is the projected grid geometry, built once at load time and
// read-only afterward. Vertices carry the projected position in DstX/DstY and
// the atlas UV in SrcX/SrcY; indices triangulate each quad into two triangles.
type TerrainMesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16

	config TerrainConfig
}

// BuildTerrainMesh generates the subdivided planar grid for the given
// configuration: one shared vertex per grid intersection, each projected
// through [CartesianToIsometric] and scaled to world size, with an
// independent shear producing the tile-atlas UV.
//
// Output is a pure function of the configuration — rebuilding with identical
// parameters yields identical geometry. Invalid (zero or negative) grid
// parameters are a configuration error reported here, never at runtime.
func BuildTerrainMesh(cfg TerrainConfig) (*TerrainMesh, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cols := cfg.TilesWide + 1
	rows := cfg.TilesHigh + 1
	tw := float64(cfg.TilesWide)
	th := float64(cfg.TilesHigh)

	scaleX := cfg.TileSize * tw / meshScaleX
	scaleY := cfg.TileSize * th / meshScaleY

	verts := make([]ebiten.Vertex, 0, cols*rows)
	for row := 0; row < rows; row++ {
		// Planar positions span [-1, 1] on both axes.
		py := -1 + 2*float64(row)/th
		for col := 0; col < cols; col++ {
			px := -1 + 2*float64(col)/tw

			rawX, rawY := CartesianToIsometric(px, py)

			u := rawX/uvShearX - rawY/uvShearY + 0.5
			v := rawX/uvShearX + rawY/uvShearY + 0.5

			verts = append(verts, ebiten.Vertex{
				DstX:   float32(scaleX * rawX),
				DstY:   float32(scaleY * rawY),
				SrcX:   float32(u * tw),
				SrcY:   float32(v * th),
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			})
		}
	}

	inds := make([]uint16, 0, cfg.TilesWide*cfg.TilesHigh*6)
	for row := 0; row < cfg.TilesHigh; row++ {
		for col := 0; col < cfg.TilesWide; col++ {
			i0 := uint16(row*cols + col)
			i1 := i0 + 1
			i2 := i0 + uint16(cols)
			i3 := i2 + 1
			inds = append(inds, i0, i1, i2, i2, i1, i3)
		}
	}

	return &TerrainMesh{Vertices: verts, Indices: inds, config: cfg}, nil
}

// Config returns the configuration the mesh was built from.
func (m *TerrainMesh) Config() TerrainConfig {
	return m.config
}

// Bounds returns the axis-aligned bounding box of the projected mesh.
func (m *TerrainMesh) Bounds() Rect {
	if len(m.Vertices) == 0 {
		return Rect{}
	}
	minX := float64(m.Vertices[0].DstX)
	minY := float64(m.Vertices[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(m.Vertices); i++ {
		x := float64(m.Vertices[i].DstX)
		y := float64(m.Vertices[i].DstY)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// TileData is the per-tile metadata record uploaded alongside the mesh:
// four floats consumed by the fragment stage (atlas cell x, atlas cell y,
// and two spare channels).
type TileData [4]float32

// TerrainSettings is the small settings block paired with the tile buffer.
type TerrainSettings struct {
	WorldSize     [2]float32
	TilesheetSize [2]float32
}

// TileMap is the flat per-tile metadata buffer. It is uploaded once and
// re-uploaded only when marked dirty; the flag covers the whole buffer, not
// individual tiles.
type TileMap struct {
	Tiles []TileData

	width  int
	height int
	config TerrainConfig
	dirty  atomic.Bool
}

// NewTileMap creates a tile buffer for the configured grid, initially dirty
// so the first frame uploads it.
func NewTileMap(cfg TerrainConfig) (*TileMap, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	m := &TileMap{
		Tiles:  make([]TileData, cfg.TilesWide*cfg.TilesHigh),
		width:  cfg.TilesWide,
		height: cfg.TilesHigh,
		config: cfg,
	}
	m.dirty.Store(true)
	return m, nil
}

// SetTile stores the metadata for one tile and marks the buffer dirty.
// Addresses outside the grid are ignored (logged in debug mode).
func (m *TileMap) SetTile(t Tile, data TileData) {
	if t.Col < 0 || t.Col >= m.width || t.Row < 0 || t.Row >= m.height {
		if globalDebug {
			log.Printf("mire: SetTile %v outside the %dx%d grid, ignored", t, m.width, m.height)
		}
		return
	}
	m.Tiles[t.Row*m.width+t.Col] = data
	m.dirty.Store(true)
}

// Settings returns the settings block to upload with the tile buffer.
func (m *TileMap) Settings() TerrainSettings {
	return TerrainSettings{
		WorldSize:     [2]float32{float32(m.width), float32(m.height)},
		TilesheetSize: [2]float32{float32(m.config.TilesheetSize), float32(m.config.TilesheetSize)},
	}
}

// TakeDirty atomically checks and clears the dirty flag, returning true when
// the caller should re-upload the buffer. The check-and-clear is a single
// compare-and-swap so a marker on another goroutine is never lost between
// the check and the clear.
func (m *TileMap) TakeDirty() bool {
	return m.dirty.CompareAndSwap(true, false)
}

// TerrainDrawable is the terrain's per-frame logical state: the active
// projection, the committed world position, and the tile it occupies.
type TerrainDrawable struct {
	Projection   Projection
	Position     Vec2
	TilePosition Tile
}

// NewTerrainDrawable creates terrain state anchored at the world origin.
func NewTerrainDrawable() *TerrainDrawable {
	return &TerrainDrawable{
		Projection:   WorldToProjection(NewCamera()),
		TilePosition: CoordsToTile(Vec2{}),
	}
}

// Update refreshes the projection and commits the input movement if the
// target position stays on the grid, resolving the occupied tile. Off-grid
// movement is rejected and flagged back to the input state as a collision.
func (t *TerrainDrawable) Update(worldToClip *Projection, in *InputState) {
	t.Projection = *worldToClip
	if CanMoveToTile(in.Movement) {
		in.IsColliding = false
		t.Position = in.Movement
		t.TilePosition = CoordsToTile(t.Position)
	} else {
		in.IsColliding = true
	}
}
