package engine

import (
	"slices"

	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/internal/systems"
	"tlb-server/pkg/api"
)

// Snapshot создает "снимок" этажа, на котором стоит камера.
// Вызывается на горутине симуляции; результат можно отдавать куда угодно.
func (s *Simulation) Snapshot() *api.Snapshot {
	snap := &api.Snapshot{
		Type:       "UPDATE",
		Tick:       s.tick,
		Generation: s.World.Generation,
		Mode:       s.Turns.Mode(),
		TimeLeftMs: s.TimeLeft().Milliseconds(),
		Level:      int(s.Viewport.Level),
		Viewport: api.ViewportView{
			X: s.Viewport.X, Y: s.Viewport.Y, W: s.Viewport.W, H: s.Viewport.H,
		},
		Map:      []api.TileView{},
		Entities: []api.EntityView{},
		Logs:     s.Logs(),
	}

	active := s.Turns.Active()
	if !active.IsNil() {
		snap.ActiveEntityID = active.Token()
	}
	current, inTurn := s.Turns.InTurn()
	if !current.IsNil() && inTurn != nil {
		snap.InTurnEntityID = current.Token()
		snap.ActionPoints = inTurn.ActionPoints
		snap.TurnState = inTurn.State.String()
	}

	level, ok := s.World.Tower.Get(s.Viewport.Level)
	if !ok {
		return snap
	}
	snap.Grid = api.GridMeta{Width: level.Width(), Height: level.Height()}

	// 1. Поле зрения всех игроков на этаже
	visible, _ := systems.VisibilityOf(s.World, level, s.Config.VisionRadius)

	// 2. Тайлы окна камеры
	view := s.Viewport.Rect()
	for p := range view.Clip(level.Map.Bounds()).Cells() {
		tile, ok := level.Map.Tile(p)
		if !ok || !tile.Discovered {
			continue
		}
		snap.Map = append(snap.Map, tileView(p, tile, visible(p)))
	}

	// 3. Сущности этажа
	for _, id := range s.entitiesOn(level.ID) {
		cell := s.World.Positions[id].Cell()
		if !view.Contains(cell) {
			continue
		}
		if ev, ok := s.entityView(id, cell, level, visible(cell), current); ok {
			snap.Entities = append(snap.Entities, ev)
		}
	}

	// 4. Подсветка
	snap.Highlight = s.highlight(level, visible)
	return snap
}

func tileView(p geometry.Pos, tile domain.Tile, lit bool) api.TileView {
	glyph := types.MakeGlyph(types.ColorGroundDark, '.')
	switch {
	case tile.Wall && lit:
		glyph = types.MakeGlyph(types.ColorWallLit, '#')
	case tile.Wall:
		glyph = types.MakeGlyph(types.ColorWallDark, '#')
	case lit:
		glyph = types.MakeGlyph(types.ColorGroundLit, '.')
	}
	return api.TileView{
		X:          p.X,
		Y:          p.Y,
		Symbol:     string(glyph.Char()),
		Color:      glyph.HexColor(),
		IsWall:     tile.Wall,
		IsVisible:  lit,
		IsExplored: true,
	}
}

// entitiesOn - ID всех размещённых сущностей этажа по возрастанию.
func (s *Simulation) entitiesOn(id domain.LevelID) []types.EntityID {
	var ids []types.EntityID
	for eid, pos := range s.World.Positions {
		if pos.Level == id {
			ids = append(ids, eid)
		}
	}
	slices.Sort(ids)
	return ids
}

// entityView конвертирует сущность в DTO, если её можно показать.
// Предметы и персонажи видны в поле зрения; двери и лестницы - на открытых клетках.
// Персонажей игрока видно всегда.
func (s *Simulation) entityView(id types.EntityID, cell geometry.Pos, level *domain.Level, lit bool, current types.EntityID) (api.EntityView, bool) {
	view := api.EntityView{
		ID:  id.Token(),
		Pos: api.PosView{X: cell.X, Y: cell.Y},
	}

	var glyph types.Glyph
	switch {
	case s.World.Actors[id] != nil:
		a := s.World.Actors[id]
		if !lit && !a.PlayerControlled {
			return view, false
		}
		view.Type = a.Kind.String()
		view.Name = a.Name
		glyph = a.Glyph
		if id == s.Turns.Active() && a.IsAlive() {
			glyph = glyph.WithColor(types.ColorActive)
			view.IsActive = true
		}
		view.InTurn = id == current
		if a.Stats != nil {
			view.Stats = &api.StatsView{HP: a.Stats.HP, MaxHP: a.Stats.MaxHP, IsDead: a.Stats.IsDead}
		}
		if a.PlayerControlled {
			view.Inventory, view.Equipment = s.gearOf(id)
		}

	case s.World.Items[id] != nil:
		if !lit {
			return view, false
		}
		it := s.World.Items[id]
		view.Type = enums.EntityTypeItem.String()
		view.Name = it.Name
		glyph = it.Glyph()

	case s.World.Interactables[id] != nil:
		if !level.Map.IsDiscovered(cell) {
			return view, false
		}
		obj := s.World.Interactables[id]
		view.Type = enums.EntityTypeInteractable.String()
		view.Name = obj.Name
		glyph = obj.Glyph()

	default:
		return view, false
	}

	if !lit {
		glyph = glyph.Dim()
	}
	view.Render.Symbol = string(glyph.Char())
	view.Render.Color = glyph.HexColor()
	return view, true
}

func itemView(it *domain.Item) api.ItemView {
	g := it.Glyph()
	return api.ItemView{
		ID:          it.ID.Token(),
		Name:        it.Name,
		Description: it.Description,
		Symbol:      string(g.Char()),
		Color:       g.HexColor(),
		Category:    it.Category.String(),
		Rarity:      it.Rarity.String(),
		Damage:      it.Damage,
		Range:       it.Range,
		Spread:      it.Spread,
		KeyLevel:    it.KeyLevel,
	}
}

// gearOf - инвентарь и слоты персонажа игрока.
func (s *Simulation) gearOf(id types.EntityID) (*api.InventoryView, *api.EquipmentView) {
	var inv *api.InventoryView
	if c, ok := s.World.Inventories[id]; ok {
		inv = &api.InventoryView{Items: make([]api.ItemView, 0, len(c.Items)), MaxSlots: c.MaxSlots}
		for _, itemID := range c.Items {
			if it, ok := s.World.Items[itemID]; ok {
				inv.Items = append(inv.Items, itemView(it))
			}
		}
	}

	var eq *api.EquipmentView
	if _, ok := s.World.Equipment[id]; ok {
		eq = &api.EquipmentView{}
		active, passive := s.World.Tools(id)
		if active != nil {
			v := itemView(active)
			eq.Active = &v
		}
		if passive != nil {
			v := itemView(passive)
			eq.Passive = &v
		}
	}
	return inv, eq
}

// highlight - предпросмотр под курсором: линия удара по персонажу, путь до клетки
// или остаток пути, по которому активный уже идёт. Невидимых персонажей курсор не выдаёт.
func (s *Simulation) highlight(level *domain.Level, visible domain.VisibilityFunc) *api.Highlight {
	active := s.Turns.Active()
	from, lvl, ok := s.World.CellOf(active)
	if !ok || lvl != level.ID {
		return nil
	}

	if s.Cursor != nil && *s.Cursor != from {
		cursor := *s.Cursor
		if target, ok := s.World.ActorAt(level.ID, cursor); ok && target.ID != active && visible(cursor) {
			return s.attackPreview(level, active, from, cursor)
		}
		if path := systems.FindPath(level, active, from, cursor, systems.PathOptions{MaxNodes: s.Config.MaxPathNodes}); len(path) > 0 {
			band := s.Turns.Band(active, len(path))
			return &api.Highlight{
				Kind:  api.HighlightPath,
				Cells: posViews(systems.PathCells(path)),
				Band:  band,
				Color: types.HexColor(bandColor(band)),
			}
		}
	}

	if p := s.World.Paths[active]; !p.Empty() {
		return &api.Highlight{
			Kind:  api.HighlightPath,
			Cells: posViews(p.Cells()),
			Color: types.HexColor(types.ColorBandSight),
		}
	}
	return nil
}

func (s *Simulation) attackPreview(level *domain.Level, active types.EntityID, from, cursor geometry.Pos) *api.Highlight {
	wp := systems.WeaponOf(s.World, active)
	kind := api.HighlightRay
	if wp.Spread > 0 {
		kind = api.HighlightCone
	}
	band := api.BandNear
	if from.ChebyshevTo(cursor) > wp.Range {
		band = api.BandOutOfRange
	}
	return &api.Highlight{
		Kind:  kind,
		Cells: posViews(systems.AttackArea(level, active, from, cursor, wp)),
		Band:  band,
		Color: types.HexColor(bandColor(band)),
	}
}

func bandColor(b api.Band) uint32 {
	switch b {
	case api.BandNear:
		return types.ColorBandNear
	case api.BandFar:
		return types.ColorBandFar
	case api.BandOutOfRange:
		return types.ColorBandOut
	}
	return types.ColorBandSight
}

func posViews(cells []geometry.Pos) []api.PosView {
	out := make([]api.PosView, len(cells))
	for i, c := range cells {
		out[i] = api.PosView{X: c.X, Y: c.Y}
	}
	return out
}
