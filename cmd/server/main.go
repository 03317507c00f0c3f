package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tlb-server/internal/agent"
	"tlb-server/internal/engine"
	"tlb-server/internal/server"
	"tlb-server/internal/version"
	"tlb-server/pkg/logger"
	"tlb-server/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	cfg := engine.NewConfig()

	// 1. Парсинг конфигурации
	var seed string
	var scout bool
	// Читаем флаг -seed. Пусто - случайное зерно; число или слово - фиксированное.
	flag.StringVar(&seed, "seed", "", "Master seed: number or word (empty for random)")
	flag.DurationVar(&cfg.TickRate, "tick", cfg.TickRate, "Simulation tick period")
	flag.DurationVar(&cfg.TimeLimit, "time-limit", cfg.TimeLimit, "Reset the tower after this long (0 disables)")
	flag.IntVar(&cfg.Floors, "floors", cfg.Floors, "Number of floors including the ground floor")
	flag.StringVar(&cfg.LocaleDir, "locales", "", "Directory with message translations")
	flag.BoolVar(&cfg.Cheats, "cheats", false, "Enable TELEPORT and HEAL debug actions")
	flag.BoolVar(&scout, "scout", false, "Run a scout bot that explores with the active character")
	flag.Parse()

	logger.Log.Info("Starting Tower...")
	logger.Log.Info(version.String())

	if seed != "" {
		cfg.Seed = utils.StringToSeed(seed)
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if locale := os.Getenv("TOWER_LOCALE"); locale != "" {
		cfg.Locale = locale
	}
	engine.SetupLocale(cfg)

	port := os.Getenv("CD_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to build the tower")
	}
	gameService.Start(ctx)

	if scout {
		go agent.NewBot("scout", gameService).Run(ctx)
	}

	// 3. Запуск сервера
	srv := server.New(gameService, port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown")
	}
	<-gameService.Done()

	logger.Log.Info("Done.")
}
