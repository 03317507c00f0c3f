package domain

// BecomeHostile переводит NPC в режим атаки
func (a *AIComponent) BecomeHostile() {
	a.IsHostile = true
}

// CalmDown успокаивает NPC
func (a *AIComponent) CalmDown() {
	a.IsHostile = false
}

// Notices - заметит ли NPC цель на расстоянии dist (в клетках).
func (a *AIComponent) Notices(dist float64) bool {
	if !a.IsHostile {
		return false
	}
	return a.AggroRadius <= 0 || dist <= float64(a.AggroRadius)
}
