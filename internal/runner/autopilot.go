package runner

// Autopilot presses jump when a cactus is about to reach the player.
// Used by headless runs; birds are left alone since they fly over a
// standing runner.
type Autopilot struct {
	session *Session
	press   func() bool
	leadMs  float64
}

// NewAutopilot creates an autopilot for s that jumps via press when a cactus
// is leadMs away from the player's front edge.
func NewAutopilot(s *Session, press func() bool, leadMs float64) *Autopilot {
	return &Autopilot{session: s, press: press, leadMs: leadMs}
}

// Step looks at the field once and presses jump if needed.
// Returns whether it pressed.
func (a *Autopilot) Step() bool {
	p := a.session.Player()
	if p == nil || !p.Grounded() || p.Dead() {
		return false
	}
	front := p.Box().Right()
	reach := a.session.Floor().Speed * a.leadMs
	for _, o := range a.session.Obstacles().Active() {
		if o.Kind() != KindCactus {
			continue
		}
		gap := o.Box().X - front
		if gap >= 0 && gap <= reach {
			return a.press()
		}
	}
	return false
}
