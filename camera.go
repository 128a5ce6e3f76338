package mire

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the pan/zoom state the per-frame world-to-projection transform is
// derived from. X and Y are the world-space position the camera centers on;
// Distance is the height above the world plane (larger shows more terrain).
type Camera struct {
	X, Y     float64
	Distance float64

	// BoundsEnabled clamps the camera position to Bounds after every move,
	// scroll step, and follow step.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera position is clamped to
	// when BoundsEnabled is true.
	Bounds Rect

	scrollTween *scrollAnim
}

// NewCamera creates a camera at the world origin at the default distance.
func NewCamera() *Camera {
	return &Camera{Distance: ViewDistance}
}

// MoveTo jumps the camera to a world position immediately, cancelling any
// scroll in progress.
func (c *Camera) MoveTo(x, y float64) {
	c.X = x
	c.Y = y
	c.scrollTween = nil
	c.clampToBounds()
}

// SetBounds enables camera bounds clamping and clamps the current position.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.clampToBounds()
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ScrollTo starts a smooth scroll to the given world position over duration
// seconds. A scroll already in progress is replaced.
func (c *Camera) ScrollTo(x, y float64, duration float32, fn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, fn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, fn),
	}
}

// Scrolling reports whether a smooth scroll is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances an active scroll by dt seconds.
func (c *Camera) Update(dt float32) {
	anim := c.scrollTween
	if anim == nil {
		return
	}
	if !anim.doneX {
		x, done := anim.tweenX.Update(dt)
		c.X = float64(x)
		anim.doneX = done
	}
	if !anim.doneY {
		y, done := anim.tweenY.Update(dt)
		c.Y = float64(y)
		anim.doneY = done
	}
	if anim.doneX && anim.doneY {
		c.scrollTween = nil
	}
	c.clampToBounds()
}

// Follow recenters the camera on a target position, lerping by the given
// factor in [0, 1]. A factor of 1 snaps immediately.
func (c *Camera) Follow(target Vec2, lerp float64) {
	if lerp <= 0 {
		return
	}
	if lerp > 1 {
		lerp = 1
	}
	c.X += (target.X - c.X) * lerp
	c.Y += (target.Y - c.Y) * lerp
	c.clampToBounds()
}

// clampToBounds restricts the camera position to Bounds. No-op when
// BoundsEnabled is false or the position is already inside.
func (c *Camera) clampToBounds() {
	if !c.BoundsEnabled || c.Bounds.Contains(c.X, c.Y) {
		return
	}
	c.X = min(max(c.X, c.Bounds.X), c.Bounds.X+c.Bounds.Width)
	c.Y = min(max(c.Y, c.Bounds.Y), c.Bounds.Y+c.Bounds.Height)
}
