package dungeon

import (
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

// Ключевые клетки нулевого этажа. Всё лежит внутри внешнего зала.
var (
	OuterHall = geometry.NewRect(20, 20, 15, 15)
	InnerRoom = geometry.NewRect(25, 25, 5, 5)

	// InnerDoorway - проём, который коридор прорубает в нижней стене внутренней комнаты.
	InnerDoorway = geometry.P(27, 29)

	Pillar        = geometry.NewRect(21, 29, 3, 3)
	PartitionFrom = geometry.P(31, 21)
	PartitionTo   = geometry.P(31, 23)

	TowerStart = geometry.P(22, 22)
	TowerExit  = geometry.P(33, 33)
)

// TowerFloor - фиксированная планировка нулевого этажа.
type TowerFloor struct{}

// BuildTowerFloor вырезает планировку на карте.
func BuildTowerFloor(m *domain.TileMap) Layout {
	m.CreateRoom(OuterHall)
	m.CreateRoom(InnerRoom)
	m.CreateCorridor(geometry.NewLine(geometry.P(27, 27), geometry.P(27, 31)))
	m.CreateAntiRoom(Pillar)
	m.DrawWall(geometry.NewLine(PartitionFrom, PartitionTo))

	return Layout{
		Start: TowerStart,
		Exit:  TowerExit,
		Rooms: []geometry.Rect{OuterHall, InnerRoom},
	}
}

func (TowerFloor) Carve(m *domain.TileMap) Layout {
	return BuildTowerFloor(m)
}
