package mire

// InputState is the per-frame movement input an external input collaborator
// accumulates and the core consumes. Movement is the running world-space
// offset of the controlled character; IsColliding is written back by the
// terrain update when a movement target falls off the grid.
type InputState struct {
	Movement    Vec2
	IsColliding bool
}

// Apply accumulates a frame's movement delta. Collision handling happens in
// the terrain update, which rejects off-grid positions after the fact.
func (s *InputState) Apply(delta Vec2) {
	s.Movement = s.Movement.Add(delta)
}

// Reset clears the accumulated movement and collision flag.
func (s *InputState) Reset() {
	s.Movement = Vec2{}
	s.IsColliding = false
}
