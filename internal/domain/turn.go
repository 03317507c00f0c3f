package domain

// TurnState - что сейчас делает участник пошагового режима.
type TurnState uint8

const (
	TurnIdle TurnState = iota
	TurnWalking
	TurnFighting
)

func (s TurnState) String() string {
	switch s {
	case TurnWalking:
		return "WALKING"
	case TurnFighting:
		return "FIGHTING"
	}
	return "IDLE"
}

// InTurn - состояние участника, которому сейчас принадлежит ход.
// Ход закончен, только когда участник в Idle и очки действия исчерпаны.
type InTurn struct {
	State        TurnState `json:"state"`
	HasWalked    bool      `json:"hasWalked"`
	ActionPoints int       `json:"actionPoints"`
}

func NewInTurn(actionPoints int) *InTurn {
	return &InTurn{State: TurnIdle, ActionPoints: actionPoints}
}

// Walk начинает перемещение стоимостью cost очков.
func (t *InTurn) Walk(cost int) {
	t.State = TurnWalking
	t.HasWalked = true
	t.ActionPoints -= cost
}

// Fight тратит все оставшиеся очки.
func (t *InTurn) Fight() {
	t.State = TurnFighting
	t.ActionPoints = 0
}

// ActionDone возвращает участника в Idle после завершения действия.
func (t *InTurn) ActionDone() {
	t.State = TurnIdle
}

// EndTurn - добровольное завершение хода.
func (t *InTurn) EndTurn() {
	t.State = TurnIdle
	t.ActionPoints = 0
}

func (t *InTurn) IsDone() bool {
	return t.State == TurnIdle && t.ActionPoints <= 0
}
