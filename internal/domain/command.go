package domain

import (
	"encoding/json"

	"tlb-server/internal/core/types"
)

// InternalCommand - команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Token   types.EntityID  // Кто действует. Nil - текущий активный персонаж.
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
