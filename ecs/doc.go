// Package ecs provides [Donburi] components and pre-draw systems for mire.
//
// The per-frame world of an isometric game has one camera, one input state,
// and a projectile list shared by every actor; each actor and the terrain own
// their drawable state exclusively. The systems here wire those together:
// [UpdateTerrain] and [UpdateActors] run once per frame before rendering and
// feed every drawable the current world-to-projection transform.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.NewFrameState(world)
//	ecs.NewActor(world, mire.TileToCoords(mire.Tile{Col: 50, Row: 50}), layout)
//
//	// each frame:
//	ecs.UpdateTerrain(world)
//	ecs.UpdateActors(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
