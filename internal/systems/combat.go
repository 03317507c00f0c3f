package systems

import (
	"fmt"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Weapon - параметры удара: из активного оружия или голыми руками.
type Weapon struct {
	Name   string
	Damage int
	Range  int
	Spread int
}

// WeaponOf возвращает оружие в активном слоте или кулаки.
func WeaponOf(w *domain.World, id types.EntityID) Weapon {
	if active, _ := w.Tools(id); active != nil && active.IsWeapon() {
		return Weapon{Name: active.Name, Damage: active.Damage, Range: max(active.Range, 1), Spread: active.Spread}
	}
	return Weapon{Damage: domain.UnarmedDamage, Range: domain.UnarmedRange}
}

// AttackArea - клетки, которые накроет удар в сторону toward (для подсветки и расчёта).
func AttackArea(level *domain.Level, attacker types.EntityID, from, toward geometry.Pos, wp Weapon) []geometry.Pos {
	if wp.Spread > 0 {
		return ConeCells(level, attacker, from, toward, wp.Range, wp.Spread)
	}
	return CastRay(level, attacker, from, toward, wp.Range).Cells
}

// Hit - попадание по одной цели.
type Hit struct {
	Target types.EntityID
	Damage int
	Died   bool
}

// AttackResult - итог атаки.
type AttackResult struct {
	Weapon Weapon
	Cells  []geometry.Pos
	Hits   []Hit
}

// ResolveAttack бьёт из клетки атакующего в сторону toward.
// Урон наносится всем живым персонажам в накрытых клетках. Убитые обрабатываются ApplyDeath.
func ResolveAttack(w *domain.World, attackerID types.EntityID, toward geometry.Pos, tick uint64) (AttackResult, []domain.GameEvent, error) {
	var res AttackResult
	level, ok := w.LevelOf(attackerID)
	if !ok {
		return res, nil, fmt.Errorf("attack %v: %w", attackerID, domain.ErrUnknownActor)
	}
	from, _, _ := w.CellOf(attackerID)

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": attackerID,
		"toward":      toward,
	})

	res.Weapon = WeaponOf(w, attackerID)
	res.Cells = AttackArea(level, attackerID, from, toward, res.Weapon)

	var events []domain.GameEvent
	for _, cell := range res.Cells {
		target, ok := w.ActorAt(level.ID, cell)
		if !ok || target.ID == attackerID || target.Stats == nil {
			continue
		}
		hpBefore := target.Stats.HP
		died := target.Stats.TakeDamage(res.Weapon.Damage)
		res.Hits = append(res.Hits, Hit{Target: target.ID, Damage: res.Weapon.Damage, Died: died})
		events = append(events, domain.GameEvent{
			Type: domain.EventDidDamage, Tick: tick, Actor: attackerID, Target: target.ID, Amount: res.Weapon.Damage,
		})

		combatLogger.WithFields(logrus.Fields{
			"target_id":   target.ID,
			"target_name": target.Name,
			"damage":      res.Weapon.Damage,
			"hp_before":   hpBefore,
			"hp_after":    target.Stats.HP,
			"target_died": died,
		}).Info("Attack resolved.")

		if target.AI != nil && !died {
			target.AI.BecomeHostile()
		}
		if died {
			ApplyDeath(w, target.ID)
			events = append(events, domain.GameEvent{Type: domain.EventDied, Tick: tick, Actor: target.ID, Target: attackerID})
		}
	}

	if len(res.Hits) == 0 {
		combatLogger.WithField("cells", len(res.Cells)).Debug("Attack hit nothing.")
	}
	return res, events, nil
}

// ApplyDeath убирает труп из индекса персонажей и высыпает его инвентарь на пол.
// Запись актора остаётся (для отрисовки трупа) до сброса мира.
func ApplyDeath(w *domain.World, id types.EntityID) {
	a, ok := w.Actors[id]
	if !ok {
		return
	}
	pos, ok := w.Positions[id]
	if !ok {
		return
	}
	level, ok := w.Tower.Get(pos.Level)
	if !ok {
		return
	}
	cell := pos.Cell()
	level.Remove(domain.IndexCharacter, id, cell)
	delete(w.Paths, id)

	if a.AI != nil {
		a.AI.CalmDown()
	}
	a.Glyph = a.Glyph.WithColor(types.ColorCorpse)

	dropped := 0
	if inv, ok := w.Inventories[id]; ok {
		for _, itemID := range inv.Items {
			it, ok := w.Items[itemID]
			if !ok {
				continue
			}
			level.Push(domain.IndexItem, it.Occupant(), cell)
			w.Positions[itemID] = pos
			dropped++
		}
		inv.Items = nil
	}
	if eq, ok := w.Equipment[id]; ok {
		*eq = domain.EquipmentComponent{}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": id,
		"name":      a.Name,
		"dropped":   dropped,
	}).Info("Entity died.")
}
