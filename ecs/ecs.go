package ecs

import (
	"github.com/phanxgames/mire"

	"github.com/yohamta/donburi"
)

// Actor bundles an actor's drawable state with its animation counters and
// the random source feeding its death-stance selection.
type Actor struct {
	Drawable mire.ActorDrawable
	Sprite   mire.ActorSprite
	Layout   *mire.SheetLayout
	Coin     mire.CoinFlip
}

// Projectiles is the frame's list of active projectile positions.
type Projectiles struct {
	Positions []mire.Vec2
}

// FrameState is the singleton per-frame input shared by every drawable:
// camera, character input, and projectiles.
type FrameState struct {
	Camera      *mire.Camera
	Input       mire.InputState
	Projectiles Projectiles
}

// Component types.
var (
	ActorComponent   = donburi.NewComponentType[Actor]()
	TerrainComponent = donburi.NewComponentType[mire.TerrainDrawable]()
	FrameComponent   = donburi.NewComponentType[FrameState]()
)

// NewFrameState creates the singleton frame-state entity and returns its
// state for the game loop to feed each frame.
func NewFrameState(w donburi.World) *FrameState {
	entry := w.Entry(w.Create(FrameComponent))
	FrameComponent.SetValue(entry, FrameState{Camera: mire.NewCamera()})
	return FrameComponent.Get(entry)
}

// NewTerrain creates the terrain drawable entity.
func NewTerrain(w donburi.World) *mire.TerrainDrawable {
	entry := w.Entry(w.Create(TerrainComponent))
	TerrainComponent.SetValue(entry, *mire.NewTerrainDrawable())
	return TerrainComponent.Get(entry)
}

// NewActor creates an actor entity at the given world position using the
// production random source.
func NewActor(w donburi.World, position mire.Vec2, layout *mire.SheetLayout) *Actor {
	entry := w.Entry(w.Create(ActorComponent))
	ActorComponent.SetValue(entry, Actor{
		Drawable: *mire.NewActorDrawable(position),
		Layout:   layout,
		Coin:     mire.RandomCoin,
	})
	return ActorComponent.Get(entry)
}

// frameState fetches the singleton frame state, or nil if none exists.
func frameState(w donburi.World) *FrameState {
	entry, ok := FrameComponent.First(w)
	if !ok {
		return nil
	}
	return FrameComponent.Get(entry)
}

// UpdateTerrain is the terrain pre-draw system: it refreshes the terrain
// drawable from the camera transform and the accumulated input movement.
func UpdateTerrain(w donburi.World) {
	fs := frameState(w)
	if fs == nil {
		return
	}
	worldToClip := mire.WorldToProjection(fs.Camera)
	TerrainComponent.Each(w, func(entry *donburi.Entry) {
		TerrainComponent.Get(entry).Update(&worldToClip, &fs.Input)
	})
}

// UpdateActors is the actor pre-draw system: it steps every actor's state
// machine with the frame's camera transform, input, and projectile list.
// Actors only mutate their own state, so the iteration order is irrelevant.
func UpdateActors(w donburi.World) {
	fs := frameState(w)
	if fs == nil {
		return
	}
	worldToClip := mire.WorldToProjection(fs.Camera)
	ActorComponent.Each(w, func(entry *donburi.Entry) {
		a := ActorComponent.Get(entry)
		a.Drawable.Update(&worldToClip, &fs.Input, fs.Projectiles.Positions, a.Coin)
	})
}

// AdvanceSprites steps every actor's animation counters. Call at the
// animation tick rate, not necessarily every frame.
func AdvanceSprites(w donburi.World) {
	ActorComponent.Each(w, func(entry *donburi.Entry) {
		a := ActorComponent.Get(entry)
		a.Sprite.Advance(&a.Drawable, a.Layout)
	})
}
