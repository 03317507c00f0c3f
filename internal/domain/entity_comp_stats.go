package domain

// TakeDamage наносит урон. Возвращает true, если цель погибла от этого удара.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// Heal лечит сущность
func (s *StatsComponent) Heal(amount int) {
	if s.IsDead {
		return // Не лечим трупы! Нет некромантии!
	}
	s.HP = min(s.HP+amount, s.MaxHP)
}
