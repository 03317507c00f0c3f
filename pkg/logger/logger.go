package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте (main.go, TestMain).
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure задаёт уровень, формат и вывод явно.
// Терминальному клиенту нужен вывод в файл: stdout занят экраном tcell.
func Configure(level, format string, out io.Writer) {
	if Log == nil {
		Log = logrus.New()
	}

	// "info" по умолчанию; "debug" включает потиковые сообщения систем.
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// "json" - для сбора логов, иначе текст для разработки.
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   out == os.Stdout,
		})
	}

	Log.SetOutput(out)
}

// For возвращает запись с полем component.
func For(component string) *logrus.Entry {
	if Log == nil {
		Init()
	}
	return Log.WithField("component", component)
}
