// Command terminal - встроенный наблюдатель башни на tcell.
// Симуляция крутится в том же процессе; экран - только отрисовка снимков и ввод.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"tlb-server/internal/engine"
	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"
	"tlb-server/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const sessionID = "terminal"

func main() {
	cfg := engine.NewConfig()

	var seed, logPath string
	flag.StringVar(&seed, "seed", "", "Master seed: number or word (empty for random)")
	flag.DurationVar(&cfg.TimeLimit, "time-limit", cfg.TimeLimit, "Reset the tower after this long (0 disables)")
	flag.StringVar(&cfg.LocaleDir, "locales", "", "Directory with message translations")
	flag.BoolVar(&cfg.Cheats, "cheats", false, "Enable TELEPORT and HEAL debug actions")
	flag.StringVar(&logPath, "log", "tower.log", "Log file (the screen is busy)")
	flag.Parse()

	if err := run(cfg, seed, logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg engine.Config, seed, logPath string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger.Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), logFile)

	if seed != "" {
		cfg.Seed = utils.StringToSeed(seed)
	}
	if locale := os.Getenv("TOWER_LOCALE"); locale != "" {
		cfg.Locale = locale
	}
	engine.SetupLocale(cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Окно камеры - весь экран без строки статуса и журнала
	w, h := screen.Size()
	cfg.ViewportW = max(w, 20)
	cfg.ViewportH = max(h-logLines-1, 10)

	svc, err := engine.NewService(cfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	// Снимки будят цикл событий экрана
	updates := svc.Subscribe(sessionID)
	go func() {
		for snap := range updates {
			screen.PostEvent(tcell.NewEventInterrupt(snap))
		}
	}()

	v := &viewer{screen: screen, svc: svc}
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventInterrupt:
			if snap, ok := ev.Data().(*api.Snapshot); ok {
				v.draw(snap)
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !v.onKey(ev) {
				svc.Unsubscribe(sessionID)
				return nil
			}
		case *tcell.EventMouse:
			v.onMouse(ev)
		case nil:
			return nil
		}
	}
}

const logLines = 5

type viewer struct {
	screen tcell.Screen
	svc    *engine.Service
	last   *api.Snapshot

	// lastHover - чтобы не слать HOVER на каждое движение внутри клетки
	lastHover api.CellPayload
	buttons   tcell.ButtonMask
}

func (v *viewer) send(action string, payload any) {
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Log.WithError(err).Warn("marshal payload")
			return
		}
		cmd.Payload = raw
	}
	if err := v.svc.ProcessCommand(cmd); err != nil {
		logger.Log.WithError(err).Warn("command rejected")
	}
}

var moveKeys = map[rune][2]int{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
}

// onKey переводит клавишу в намерение. false - выход.
func (v *viewer) onKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.send("MOVE", api.DirectionPayload{Dy: -1})
	case tcell.KeyDown:
		v.send("MOVE", api.DirectionPayload{Dy: 1})
	case tcell.KeyLeft:
		v.send("MOVE", api.DirectionPayload{Dx: -1})
	case tcell.KeyRight:
		v.send("MOVE", api.DirectionPayload{Dx: 1})
	case tcell.KeyEnter:
		v.send("END_TURN", nil)
	case tcell.KeyTab:
		v.send("CYCLE_ACTIVE", nil)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.send("RESET", nil)
	case tcell.KeyRune:
		r := ev.Rune()
		if d, ok := moveKeys[r]; ok {
			v.send("MOVE", api.DirectionPayload{Dx: d[0], Dy: d[1]})
			break
		}
		switch r {
		case 'q':
			return false
		case 'e':
			v.send("INTERACT", nil)
		case 'p':
			v.send("PICKUP", nil)
		case 'd':
			v.send("DROP", nil)
		case 'w':
			v.send("EQUIP", nil)
		case ' ':
			v.send("TOGGLE_MODE", nil)
		}
	}
	return true
}

// onMouse: движение - HOVER, левая кнопка - MOVE_TO, правая - ATTACK.
func (v *viewer) onMouse(ev *tcell.EventMouse) {
	if v.last == nil {
		return
	}
	sx, sy := ev.Position()
	if sy >= v.last.Viewport.H {
		return
	}
	cell := api.CellPayload{X: v.last.Viewport.X + sx, Y: v.last.Viewport.Y + sy}
	if cell.X < 0 || cell.Y < 0 {
		return
	}

	pressed := ev.Buttons() &^ v.buttons
	v.buttons = ev.Buttons()
	switch {
	case pressed&tcell.Button1 != 0:
		v.send("MOVE_TO", cell)
	case pressed&tcell.Button2 != 0:
		v.send("ATTACK", cell)
	case cell != v.lastHover:
		v.lastHover = cell
		v.send("HOVER", cell)
	}
}

func style(hex string) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.GetColor(hex))
}

func (v *viewer) put(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (v *viewer) draw(snap *api.Snapshot) {
	v.last = snap
	v.screen.Clear()
	vp := snap.Viewport

	for _, t := range snap.Map {
		v.put(t.X-vp.X, t.Y-vp.Y, t.Symbol, style(t.Color))
	}
	if hl := snap.Highlight; hl != nil {
		st := tcell.StyleDefault.Background(tcell.GetColor(hl.Color)).Foreground(tcell.ColorBlack)
		for _, c := range hl.Cells {
			x, y := c.X-vp.X, c.Y-vp.Y
			mainc, _, _, _ := v.screen.GetContent(x, y)
			v.screen.SetContent(x, y, mainc, nil, st)
		}
	}
	for _, e := range snap.Entities {
		st := style(e.Render.Color)
		if e.InTurn {
			st = st.Underline(true)
		}
		v.put(e.Pos.X-vp.X, e.Pos.Y-vp.Y, e.Render.Symbol, st)
	}

	status := fmt.Sprintf(" %s  floor %d  tick %d  left %ds", snap.Mode, snap.Level, snap.Tick, snap.TimeLeftMs/1000)
	if snap.InTurnEntityID != "" {
		status += fmt.Sprintf("  turn %s AP %d %s", snap.InTurnEntityID, snap.ActionPoints, snap.TurnState)
	}
	for _, e := range snap.Entities {
		if e.IsActive && e.Stats != nil {
			status += fmt.Sprintf("  %s HP %d/%d", e.Name, e.Stats.HP, e.Stats.MaxHP)
		}
	}
	v.put(0, vp.H, status, tcell.StyleDefault.Reverse(true))

	logs := snap.Logs
	if len(logs) > logLines {
		logs = logs[len(logs)-logLines:]
	}
	for i, l := range logs {
		st := tcell.StyleDefault
		switch l.Type {
		case "COMBAT":
			st = st.Foreground(tcell.ColorRed)
		case "ERROR":
			st = st.Foreground(tcell.ColorYellow)
		}
		v.put(0, vp.H+1+i, l.Text, st)
	}
	v.screen.Show()
}
