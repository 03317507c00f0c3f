package api

import (
	"github.com/invopop/jsonschema"
)

// Schemas описывает протокол для внешних клиентов: снимок и команду.
func Schemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	snapshot := reflector.Reflect(&Snapshot{})
	snapshot.Title = "Tower Snapshot"
	snapshot.Description = "Read-only view of the floor the active character stands on."

	command := reflector.Reflect(&ClientCommand{})
	command.Title = "Tower Client Command"
	command.Description = "Discrete intent sent by an observer."

	direction := reflector.Reflect(&DirectionPayload{})
	direction.Title = "Direction Payload"

	cell := reflector.Reflect(&CellPayload{})
	cell.Title = "Cell Payload"

	return map[string]*jsonschema.Schema{
		"snapshot":  snapshot,
		"command":   command,
		"direction": direction,
		"cell":      cell,
	}
}
