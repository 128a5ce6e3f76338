package mire

import "testing"

// testLayout builds a SheetLayout with one synthetic frame rectangle per
// index, wide enough to cover every block of the reference arithmetic.
func testLayout() SheetLayout {
	frames := make([]FrameData, 256)
	for i := range frames {
		frames[i] = FrameData{X: float32(i), Width: 94, Height: 118}
	}
	layout := ZombieLayout(frames)
	return layout
}

func stepInput(a *ActorDrawable, proj *Projection, in *InputState, delta Vec2) {
	in.Apply(delta)
	a.Update(proj, in, nil, RandomCoin)
}

func TestActorIdleFrameUsesCommittedFacing(t *testing.T) {
	layout := testLayout()
	a := NewActorDrawable(Vec2{})
	sprite := &ActorSprite{}

	// Freshly spawned: stance Still, committed facing Left, orientation
	// reads as whatever it last was — the idle frame must key off the
	// committed facing alone.
	a.Orientation = OrientationStill
	frame := a.NextFrame(&layout, sprite)
	wantIdx := int(OrientationLeft) * layout.IdleSpan
	if frame.Index != float32(wantIdx) {
		t.Errorf("idle frame index = %v, want %d", frame.Index, wantIdx)
	}
	if frame.YDiv != 1 || frame.RowIdx != 2 {
		t.Errorf("idle frame divisors = (%v,%d), want (1,2)", frame.YDiv, frame.RowIdx)
	}
}

func TestActorWalkingFrame(t *testing.T) {
	layout := testLayout()
	a := NewActorDrawable(Vec2{})
	sprite := &ActorSprite{Idx: 3}
	proj := DefaultProjection()
	in := InputState{}

	stepInput(a, &proj, &in, Vec2{10, 0}) // moving right
	if a.Stance != StanceWalking {
		t.Fatalf("stance = %v, want Walking", a.Stance)
	}
	if a.Facing() != OrientationRight {
		t.Fatalf("facing = %v, want Right", a.Facing())
	}

	frame := a.NextFrame(&layout, sprite)
	wantIdx := int(OrientationRight)*layout.WalkSpan + 3 + layout.WalkOffset
	if frame.Index != float32(wantIdx) {
		t.Errorf("walk frame index = %v, want %d", frame.Index, wantIdx)
	}
	wantXDiv := layout.SheetWidth / (94 + layout.FramePadding)
	if frame.XDiv != wantXDiv {
		t.Errorf("XDiv = %v, want %v", frame.XDiv, wantXDiv)
	}
}

func TestActorCommitsFacingOnceOnStop(t *testing.T) {
	layout := testLayout()
	a := NewActorDrawable(Vec2{})
	// A counter partway through the walk span, as a real walker would hold.
	sprite := &ActorSprite{Idx: 5}
	proj := DefaultProjection()
	in := InputState{}

	// Walk up, then release input.
	stepInput(a, &proj, &in, Vec2{0, 10})
	if a.Facing() != OrientationUp {
		t.Fatalf("facing = %v, want Up", a.Facing())
	}

	for i := 0; i < 3; i++ {
		stepInput(a, &proj, &in, Vec2{})
		if a.Orientation != OrientationStill {
			t.Fatalf("step %d: orientation = %v, want Still", i, a.Orientation)
		}
		// The committed facing holds its last non-Still value.
		if a.Facing() != OrientationUp {
			t.Fatalf("step %d: facing drifted to %v", i, a.Facing())
		}
		frame := a.NextFrame(&layout, sprite)
		wantIdx := int(OrientationUp)*layout.IdleSpan + sprite.Idx%layout.IdleSpan
		if frame.Index != float32(wantIdx) {
			t.Fatalf("step %d: frame index = %v, want idle-Up %d", i, frame.Index, wantIdx)
		}
	}
}

func TestActorStoppedWalkerStaysInIdleBlock(t *testing.T) {
	layout := testLayout()
	a := NewActorDrawable(Vec2{})
	sprite := &ActorSprite{}
	proj := DefaultProjection()
	in := InputState{}

	// Walk up long enough for the counter to pass the idle span.
	for i := 0; i < 6; i++ {
		stepInput(a, &proj, &in, Vec2{0, 10})
		sprite.Advance(a, &layout)
	}
	if sprite.Idx < layout.IdleSpan {
		t.Fatalf("walk counter = %d, want >= idle span %d", sprite.Idx, layout.IdleSpan)
	}

	// Release input: the idle frame must stay inside the committed
	// facing's idle block, not bleed into the next facing's frames.
	stepInput(a, &proj, &in, Vec2{})
	frame := a.NextFrame(&layout, sprite)
	lo := int(OrientationUp) * layout.IdleSpan
	hi := lo + layout.IdleSpan
	if int(frame.Index) < lo || int(frame.Index) >= hi {
		t.Errorf("stopped walker frame index = %v, outside idle-Up block [%d,%d)", frame.Index, lo, hi)
	}
	if want := lo + sprite.Idx%layout.IdleSpan; frame.Index != float32(want) {
		t.Errorf("stopped walker frame index = %v, want %d", frame.Index, want)
	}

	// The Still stance takes the same re-spanned index for a facing with a
	// non-zero ordinal.
	b := NewActorDrawable(Vec2{})
	b.Stance = StanceStill
	still := &ActorSprite{Idx: 6}
	frame = b.NextFrame(&layout, still)
	want := int(OrientationLeft)*layout.IdleSpan + 6%layout.IdleSpan
	if frame.Index != float32(want) {
		t.Errorf("still frame index = %v, want %d", frame.Index, want)
	}
}

func TestActorPositionBlendsDeltaAndNudge(t *testing.T) {
	a := NewActorDrawable(Vec2{})
	proj := DefaultProjection()
	in := InputState{}

	stepInput(a, &proj, &in, Vec2{10, 0})
	// Raw delta (10,0) plus the quantized unit nudge (1,0), y inverted.
	if a.Position != (Vec2{11, 0}) {
		t.Errorf("position = %v, want (11,0)", a.Position)
	}
	if a.OffsetDelta() != (Vec2{10, 0}) {
		t.Errorf("offset delta = %v, want (10,0)", a.OffsetDelta())
	}

	stepInput(a, &proj, &in, Vec2{0, 10})
	// Delta (0,10), nudge (0,1) with y inverted: position y gains 10-1.
	if a.Position != (Vec2{11, 9}) {
		t.Errorf("position = %v, want (11,9)", a.Position)
	}
}

func TestActorDeathStanceFromProjectile(t *testing.T) {
	proj := DefaultProjection()

	heads := func() bool { return true }
	tails := func() bool { return false }

	a := NewActorDrawable(Vec2{100, 100})
	in := InputState{}
	a.Update(&proj, &in, []Vec2{{130, 80}}, heads)
	if a.Stance != StanceNormalDeath {
		t.Errorf("heads: stance = %v, want NormalDeath", a.Stance)
	}

	b := NewActorDrawable(Vec2{100, 100})
	in = InputState{}
	b.Update(&proj, &in, []Vec2{{130, 80}}, tails)
	if b.Stance != StanceCriticalDeath {
		t.Errorf("tails: stance = %v, want CriticalDeath", b.Stance)
	}
}

func TestActorDeathIsTerminal(t *testing.T) {
	proj := DefaultProjection()
	in := InputState{}
	a := NewActorDrawable(Vec2{})

	flips := 0
	coin := func() bool { flips++; return true }

	a.Update(&proj, &in, []Vec2{{0, 0}}, coin)
	if a.Stance != StanceNormalDeath {
		t.Fatalf("stance = %v, want NormalDeath", a.Stance)
	}
	if flips != 1 {
		t.Fatalf("coin flipped %d times, want 1", flips)
	}

	// Further overlaps never change a terminal stance or consult the coin.
	for i := 0; i < 5; i++ {
		a.Update(&proj, &in, []Vec2{{0, 0}, {1, 1}}, coin)
	}
	if a.Stance != StanceNormalDeath {
		t.Errorf("stance = %v after repeat overlaps, want NormalDeath", a.Stance)
	}
	if flips != 1 {
		t.Errorf("coin flipped %d times after death, want 1", flips)
	}
}

func TestActorHitTolerance(t *testing.T) {
	proj := DefaultProjection()
	coin := func() bool { return true }

	// Just inside the 80x80 tolerance.
	a := NewActorDrawable(Vec2{})
	in := InputState{}
	a.Update(&proj, &in, []Vec2{{79, 79}}, coin)
	if !a.Stance.Terminal() {
		t.Error("projectile at (79,79) should hit")
	}

	// On and past the threshold.
	b := NewActorDrawable(Vec2{})
	in = InputState{}
	b.Update(&proj, &in, []Vec2{{80, 0}}, coin)
	if b.Stance.Terminal() {
		t.Error("projectile at (80,0) should miss")
	}

	c := NewActorDrawable(Vec2{})
	in = InputState{}
	c.Update(&proj, &in, []Vec2{{0, 200}}, coin)
	if c.Stance.Terminal() {
		t.Error("projectile at (0,200) should miss")
	}
}

func TestActorDeathFrames(t *testing.T) {
	layout := testLayout()
	proj := DefaultProjection()
	in := InputState{}
	sprite := &ActorSprite{DeathIdx: 2}

	a := NewActorDrawable(Vec2{})
	stepInput(a, &proj, &in, Vec2{-10, 0}) // walking left
	a.Update(&proj, &in, []Vec2{in.Movement.Sub(Vec2{1, 0})}, func() bool { return true })
	// Keep moving so the orientation stays non-Still for the death rules.
	stepInput(a, &proj, &in, Vec2{-10, 0})

	frame := a.NextFrame(&layout, sprite)
	wantIdx := int(OrientationLeft)*layout.NormalDeathSpan + 2 + layout.NormalDeathOffset
	if frame.Index != float32(wantIdx) {
		t.Errorf("normal death index = %v, want %d", frame.Index, wantIdx)
	}
	if frame.YDiv != 0 || frame.RowIdx != 2 {
		t.Errorf("death divisors = (%v,%d), want (0,2)", frame.YDiv, frame.RowIdx)
	}

	// Critical death uses the wider span and no offset.
	a.Stance = StanceCriticalDeath
	frame = a.NextFrame(&layout, sprite)
	wantIdx = int(OrientationLeft)*layout.CriticalDeathSpan + 2
	if frame.Index != float32(wantIdx) {
		t.Errorf("critical death index = %v, want %d", frame.Index, wantIdx)
	}
}

func TestActorSpriteAdvance(t *testing.T) {
	layout := testLayout()
	a := NewActorDrawable(Vec2{})
	s := &ActorSprite{}

	// Idle wraps within the idle span.
	for i := 0; i < layout.IdleSpan*2; i++ {
		s.Advance(a, &layout)
		if s.Idx < 0 || s.Idx >= layout.IdleSpan {
			t.Fatalf("idle counter %d outside span %d", s.Idx, layout.IdleSpan)
		}
	}

	// Death advances to the last frame and holds.
	a.Stance = StanceNormalDeath
	for i := 0; i < layout.NormalDeathSpan*2; i++ {
		s.Advance(a, &layout)
	}
	if s.DeathIdx != layout.NormalDeathSpan-1 {
		t.Errorf("death counter = %d, want %d", s.DeathIdx, layout.NormalDeathSpan-1)
	}
	if !s.DeathFinished(a, &layout) {
		t.Error("death animation should report finished")
	}
}
