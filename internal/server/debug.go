package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tlb-server/internal/domain"
	"tlb-server/internal/engine"
	"tlb-server/internal/geometry"
)

const inspectTimeout = 2 * time.Second

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
// Все чтения идут через Service.Inspect на горутине симуляции.
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/levels", h.handleListLevels)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
	mux.HandleFunc("/debug/occupants", h.handleOccupants)
}

func (h *DebugHandler) inspect(w http.ResponseWriter, r *http.Request, fn func(*engine.Simulation)) bool {
	ctx, cancel := context.WithTimeout(r.Context(), inspectTimeout)
	defer cancel()
	if err := h.Service.Inspect(ctx, fn); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return false
	}
	return true
}

// LevelSummary - сводка по этажу для /debug/levels.
type LevelSummary struct {
	LevelID     int `json:"level_id"`
	Width       int `json:"width"`
	Height      int `json:"height"`
	Rooms       int `json:"rooms"`
	Discovered  int `json:"discovered"`
	Characters  int `json:"characters"`
	ItemsOnDeck int `json:"items"`
}

// /debug/levels - список этажей башни
func (h *DebugHandler) handleListLevels(w http.ResponseWriter, r *http.Request) {
	var summary []LevelSummary
	ok := h.inspect(w, r, func(sim *engine.Simulation) {
		for _, id := range sim.World.Tower.IDs() {
			l := sim.World.Tower.MustGet(id)
			discovered := 0
			for p := range l.Map.Bounds().Cells() {
				if l.Map.IsDiscovered(p) {
					discovered++
				}
			}
			summary = append(summary, LevelSummary{
				LevelID:     int(id),
				Width:       l.Width(),
				Height:      l.Height(),
				Rooms:       l.Map.Rooms(),
				Discovered:  discovered,
				Characters:  l.Index(domain.IndexCharacter).Len(),
				ItemsOnDeck: l.Index(domain.IndexItem).Len(),
			})
		}
	})
	if ok {
		writeJSON(w, summary)
	}
}

// /debug/queue - состояние планировщика ходов
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	var dump engine.QueueSnapshot
	ok := h.inspect(w, r, func(sim *engine.Simulation) {
		dump = sim.Turns.Snapshot()
	})
	if ok {
		writeJSON(w, dump)
	}
}

// OccupantView - запись индекса вместе с клеткой.
type OccupantView struct {
	Index         string       `json:"index"`
	Cell          geometry.Pos `json:"cell"`
	ID            string       `json:"id"`
	Blocking      bool         `json:"blocking"`
	SightBlocking bool         `json:"sightBlocking"`
}

// /debug/occupants?level=1 - дамп обоих индексов этажа
func (h *DebugHandler) handleOccupants(w http.ResponseWriter, r *http.Request) {
	levelID, err := strconv.Atoi(r.URL.Query().Get("level"))
	if err != nil {
		levelID = 0
	}

	var (
		dump  []OccupantView
		found bool
	)
	ok := h.inspect(w, r, func(sim *engine.Simulation) {
		l, exists := sim.World.Tower.Get(domain.LevelID(levelID))
		if !exists {
			return
		}
		found = true
		for _, kind := range []domain.IndexKind{domain.IndexCharacter, domain.IndexItem} {
			l.Index(kind).Each(func(p geometry.Pos, occ domain.Occupant) {
				dump = append(dump, OccupantView{
					Index:         kind.String(),
					Cell:          p,
					ID:            occ.ID.String(),
					Blocking:      occ.Blocking,
					SightBlocking: occ.SightBlocking,
				})
			})
		}
	})
	if !ok {
		return
	}
	if !found {
		http.Error(w, "Level not found", http.StatusNotFound)
		return
	}
	writeJSON(w, dump)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустая очередь), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
