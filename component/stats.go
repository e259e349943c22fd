package component

// StatsComponent holds combat-facing entity stats.
// Behaviors other than the owner only ever read these, with one
// exception: enemy attacks damage the player's Health.
type StatsComponent struct {
	Health    float64
	MaxHealth float64
}

// Damage reduces health, flooring at zero
func (s *StatsComponent) Damage(amount float64) {
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
}
