package domain

import "errors"

// Игровые отказы. Это не сбои: хендлер превращает их в сообщение "ERROR" для клиента.
var (
	ErrNoPath       = errors.New("no path to target")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrOutOfRange   = errors.New("target out of range")
	ErrNothingHere  = errors.New("nothing here")
	ErrTooFar       = errors.New("walk too long")
	ErrInventory    = errors.New("inventory is full")
	ErrDoorLocked   = errors.New("door stays locked")
	ErrUnknownActor = errors.New("unknown actor")
	ErrBlocked      = errors.New("way is blocked")
)
