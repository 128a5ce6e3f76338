// Package mire is the world-space core of a tile-based isometric game for
// [Ebitengine].
//
// Mire owns the math that everything else hangs off: conversion between
// continuous world coordinates, discrete tile addresses, and
// isometric-projected mesh geometry, plus the orientation/stance state
// machine that turns a movement vector and game events into a sprite atlas
// frame. Rendering, input devices, audio, and scheduling stay outside — mire
// consumes a per-frame camera transform and movement delta and produces the
// projection/position/frame triple the renderer uploads.
//
// # Coordinates
//
// World space is a flat cartesian plane. [TileToCoords] and [CoordsToTile]
// convert between tile addresses and world positions; [BuildTerrainMesh]
// projects the whole grid into the diamond-shaped isometric layout once at
// load time. The two isometric constants ([IsoAspect] for the mesh shear,
// [TileDivisor] for tile placement) are deliberately distinct.
//
// # Actors
//
// An [ActorDrawable] is updated once per frame:
//
//	actor := mire.NewActorDrawable(mire.TileToCoords(mire.Tile{Col: 50, Row: 50}))
//	actor.Update(&proj, &input, projectiles, mire.RandomCoin)
//	frame := actor.NextFrame(&layout, &sprite)
//
// The resulting [SpriteFrame] selects one region of a packed sprite sheet;
// its layout (column divisor, row divisor, row index, flat frame index)
// matches the constant-buffer contract the shaders expect.
//
// Per-actor updates read only their own state plus the per-frame inputs, so a
// parallel for-each-actor scheduler needs no locking. See the mire/ecs
// subpackage for a [Donburi] integration.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package mire
