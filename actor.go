package mire

import "math/rand"

// Projectile hit tolerance in world units, matching the reference tuning.
const (
	hitToleranceWidth  = 80.0
	hitToleranceHeight = 80.0
)

// CoinFlip supplies the random boolean that picks between the two death
// stances. Injected so tests can substitute a deterministic source.
type CoinFlip func() bool

// RandomCoin is the production CoinFlip, backed by math/rand.
func RandomCoin() bool {
	return rand.Intn(2) == 0
}

// SpriteFrame identifies one rectangular region of a packed sprite sheet for
// a single draw call. The four fields (column divisor, row divisor, row
// index, flat frame index) are the constant-buffer layout the character
// shader expects; the divisors slice the sheet and Index selects the cell.
type SpriteFrame struct {
	XDiv   float32
	YDiv   float32
	RowIdx uint32
	Index  float32
}

// SheetLayout is the static per-variant sprite sheet geometry: the frame
// rectangles, the sheet width, and the span/offset arithmetic that turns a
// (facing, stance, animation counter) triple into a flat frame index.
//
// Spans are frames per facing; offsets shift past earlier blocks of the
// sheet. The dead rows of the atlas are selected by the row divisor, so the
// critical death block starts back at index zero while the normal death
// block sits behind NormalDeathOffset.
type SheetLayout struct {
	Frames       []FrameData // frame rectangles in atlas order
	SheetWidth   float32     // total sheet width in pixels
	FramePadding float32     // horizontal padding between packed frames

	IdleSpan          int // idle frames per facing
	WalkSpan          int // walk frames per facing
	NormalDeathSpan   int // normal death frames per facing
	CriticalDeathSpan int // critical death frames per facing

	WalkOffset        int // start of the walk block within the living rows
	NormalDeathOffset int // start of the normal death block within the dead rows
}

// ZombieLayout returns the layout of the bundled zombie sheet.
func ZombieLayout(frames []FrameData) SheetLayout {
	return SheetLayout{
		Frames:            frames,
		SheetWidth:        9248,
		FramePadding:      2,
		IdleSpan:          4,
		WalkSpan:          8,
		NormalDeathSpan:   6,
		CriticalDeathSpan: 8,
		WalkOffset:        32,
		NormalDeathOffset: 64,
	}
}

// ActorSprite holds an actor's advancing animation counters: Idx runs within
// the living spans, DeathIdx within the death spans. The counters must stay
// inside the span for the active stance; Advance maintains that.
type ActorSprite struct {
	Idx      int
	DeathIdx int
}

// Advance steps the animation counter appropriate for the actor's stance.
// Living animations wrap; death animations advance to the last frame and
// hold (removal of finished corpses is the caller's policy).
func (s *ActorSprite) Advance(a *ActorDrawable, layout *SheetLayout) {
	switch a.Stance {
	case StanceStill:
		s.Idx = (s.Idx + 1) % layout.IdleSpan
	case StanceWalking:
		s.Idx = (s.Idx + 1) % layout.WalkSpan
	case StanceNormalDeath:
		if s.DeathIdx < layout.NormalDeathSpan-1 {
			s.DeathIdx++
		}
	case StanceCriticalDeath:
		if s.DeathIdx < layout.CriticalDeathSpan-1 {
			s.DeathIdx++
		}
	}
}

// DeathFinished reports whether a death animation has reached its last frame.
func (s *ActorSprite) DeathFinished(a *ActorDrawable, layout *SheetLayout) bool {
	switch a.Stance {
	case StanceNormalDeath:
		return s.DeathIdx >= layout.NormalDeathSpan-1
	case StanceCriticalDeath:
		return s.DeathIdx >= layout.CriticalDeathSpan-1
	default:
		return false
	}
}

// ActorDrawable is the per-actor mutable state the per-frame update owns:
// current and previous positions, the instantaneous orientation, the
// committed facing, and the stance.
//
// Orientation reflects the direction of input movement this frame
// (OrientationStill when there was none). The committed facing is updated
// only while the actor is moving, so the rendered sprite never snaps to an
// arbitrary direction when movement stops.
type ActorDrawable struct {
	Projection Projection
	Position   Vec2

	previousPosition Vec2
	offsetDelta      Vec2

	Orientation Orientation
	Stance      Stance
	direction   Orientation // committed facing, never OrientationStill

	// MovementDirection is the quantized unit vector of travel, applied as
	// a directional nudge on top of the raw input delta.
	MovementDirection Vec2
}

// NewActorDrawable creates an actor at the given world position, idle and
// facing left.
func NewActorDrawable(position Vec2) *ActorDrawable {
	return &ActorDrawable{
		Projection:  DefaultProjection(),
		Position:    position,
		Orientation: OrientationLeft,
		Stance:      StanceStill,
		direction:   OrientationLeft,
	}
}

// Facing returns the committed facing direction.
func (a *ActorDrawable) Facing() Orientation {
	return a.direction
}

// OffsetDelta returns the input displacement computed by the last Update.
func (a *ActorDrawable) OffsetDelta() Vec2 {
	return a.offsetDelta
}

// Update runs one frame of the actor state machine:
//
//  1. The input displacement since the last committed input position becomes
//     the offset delta.
//  2. The instantaneous orientation is derived from that delta; while the
//     actor is moving the committed facing tracks it, and a Walking stance
//     replaces Still. Death stances are never overwritten by movement.
//  3. The position advances by the offset delta plus the quantized
//     directional nudge (y inverted: screen y grows downward).
//  4. A projectile within the hit tolerance flips the actor into one of the
//     two death stances, chosen by the injected coin. Death is terminal —
//     later overlaps change nothing.
func (a *ActorDrawable) Update(worldToClip *Projection, in *InputState, projectiles []Vec2, coin CoinFlip) {
	a.Projection = *worldToClip

	a.offsetDelta = in.Movement.Sub(a.previousPosition)
	a.previousPosition = in.Movement

	if a.offsetDelta.IsZero() {
		a.Orientation = OrientationStill
		a.MovementDirection = Vec2{}
	} else {
		deg := Direction(Vec2{}, a.offsetDelta)
		a.Orientation = OrientationFromDirection(deg)
		a.MovementDirection = DirectionMovement(deg)
		a.direction = a.Orientation
		if a.Stance == StanceStill {
			a.Stance = StanceWalking
		}
	}

	a.Position = Vec2{
		X: a.Position.X + a.offsetDelta.X + a.MovementDirection.X,
		Y: a.Position.Y + a.offsetDelta.Y - a.MovementDirection.Y,
	}

	for _, p := range projectiles {
		if Overlaps(a.Position, p, hitToleranceWidth, hitToleranceHeight) && !a.Stance.Terminal() {
			if coin() {
				a.Stance = StanceNormalDeath
			} else {
				a.Stance = StanceCriticalDeath
			}
		}
	}
}

// NextFrame resolves the sprite sheet frame for the actor's current state.
// The rules are ordered and the first match wins:
//
//  1. Still stance: idle pose for the committed facing.
//  2. Moving and walking: walk block for the committed facing.
//  3. Moving and dying normally: normal death block, behind its offset.
//  4. Moving and dying critically: critical death block, no offset.
//  5. Otherwise the actor stopped while not idle: the committed facing
//     holds and its idle pose is served.
//
// The caller keeps the sprite counters within the span for the active
// stance; an index outside the frame table is a caller bug, not checked
// here. The idle branches re-span the living counter themselves: a walker
// that stops may hold a counter anywhere in the walk span, and serving it
// modulo the idle span keeps the index inside the committed facing's idle
// block.
func (a *ActorDrawable) NextFrame(layout *SheetLayout, sprite *ActorSprite) SpriteFrame {
	var idx int
	switch {
	case a.Stance == StanceStill:
		idx = int(a.direction)*layout.IdleSpan + sprite.Idx%layout.IdleSpan
	case a.Orientation != OrientationStill && a.Stance == StanceWalking:
		idx = int(a.direction)*layout.WalkSpan + sprite.Idx + layout.WalkOffset
	case a.Orientation != OrientationStill && a.Stance == StanceNormalDeath:
		idx = int(a.direction)*layout.NormalDeathSpan + sprite.DeathIdx + layout.NormalDeathOffset
	case a.Orientation != OrientationStill && a.Stance == StanceCriticalDeath:
		idx = int(a.direction)*layout.CriticalDeathSpan + sprite.DeathIdx
	default:
		idx = int(a.direction)*layout.IdleSpan + sprite.Idx%layout.IdleSpan
	}

	yDiv := float32(1)
	if a.Stance.Terminal() {
		yDiv = 0
	}

	frame := layout.Frames[idx]
	return SpriteFrame{
		XDiv:   layout.SheetWidth / (frame.Width + layout.FramePadding),
		YDiv:   yDiv,
		RowIdx: 2,
		Index:  float32(idx),
	}
}
