package domain

import (
	"strings"

	"tlb-server/internal/core/types"
)

// EventType - вид записи в журнале событий
type EventType uint8

const (
	EventUnknown EventType = iota
	EventFinishedTurn
	EventDidDamage
	EventDied
	EventDoorToggled
	EventLevelTransition
	EventModeChanged
	EventReset
)

var eventStringToType = map[string]EventType{
	"FINISHED_TURN":    EventFinishedTurn,
	"DID_DAMAGE":       EventDidDamage,
	"DIED":             EventDied,
	"DOOR_TOGGLED":     EventDoorToggled,
	"LEVEL_TRANSITION": EventLevelTransition,
	"MODE_CHANGED":     EventModeChanged,
	"RESET":            EventReset,
}

var eventTypeToString = map[EventType]string{
	EventFinishedTurn:    "FINISHED_TURN",
	EventDidDamage:       "DID_DAMAGE",
	EventDied:            "DIED",
	EventDoorToggled:     "DOOR_TOGGLED",
	EventLevelTransition: "LEVEL_TRANSITION",
	EventModeChanged:     "MODE_CHANGED",
	EventReset:           "RESET",
}

// ParseEvent конвертирует строку в EventType
func ParseEvent(s string) EventType {
	if val, ok := eventStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// GameEvent - факт, произошедший в симуляции.
type GameEvent struct {
	Type   EventType      `json:"type"`
	Tick   uint64         `json:"tick"`
	Actor  types.EntityID `json:"actor"`
	Target types.EntityID `json:"target,omitempty"`
	Amount int            `json:"amount,omitempty"`
}
