package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionMoveTo
	ActionInteract
	ActionAttack
	ActionPickup
	ActionDrop
	ActionToggleMode
	ActionEndTurn
	ActionCycleActive
	ActionHover
	ActionReset
	ActionEquip

	// Отладочные действия, доступны только с включёнными читами
	ActionTeleport
	ActionHeal
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":         ActionInit,
	"MOVE":         ActionMove,
	"MOVE_TO":      ActionMoveTo,
	"INTERACT":     ActionInteract,
	"ATTACK":       ActionAttack,
	"PICKUP":       ActionPickup,
	"DROP":         ActionDrop,
	"TOGGLE_MODE":  ActionToggleMode,
	"END_TURN":     ActionEndTurn,
	"CYCLE_ACTIVE": ActionCycleActive,
	"HOVER":        ActionHover,
	"RESET":        ActionReset,
	"EQUIP":        ActionEquip,
	"TELEPORT":     ActionTeleport,
	"HEAL":         ActionHeal,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:        "INIT",
	ActionMove:        "MOVE",
	ActionMoveTo:      "MOVE_TO",
	ActionInteract:    "INTERACT",
	ActionAttack:      "ATTACK",
	ActionPickup:      "PICKUP",
	ActionDrop:        "DROP",
	ActionToggleMode:  "TOGGLE_MODE",
	ActionEndTurn:     "END_TURN",
	ActionCycleActive: "CYCLE_ACTIVE",
	ActionHover:       "HOVER",
	ActionReset:       "RESET",
	ActionEquip:       "EQUIP",
	ActionTeleport:    "TELEPORT",
	ActionHeal:        "HEAL",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsGated - действие тратит ход и разрешено только тому, кто может действовать.
func (a ActionType) IsGated() bool {
	switch a {
	case ActionMove, ActionMoveTo, ActionInteract, ActionAttack, ActionPickup, ActionDrop, ActionEquip:
		return true
	}
	return false
}
