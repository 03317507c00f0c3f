package engine

import (
	"tlb-server/pkg/logger"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
)

// LocaleDomain - имя .po/.mo файлов с переводами сообщений журнала.
const LocaleDomain = "tower"

// SetupLocale подключает каталог переводов. Без каталога gotext возвращает
// исходные русские строки, так что это необязательно.
func SetupLocale(cfg Config) {
	if cfg.LocaleDir == "" {
		return
	}
	gotext.Configure(cfg.LocaleDir, cfg.Locale, LocaleDomain)
	logger.Log.WithFields(logrus.Fields{
		"component": "locale",
		"dir":       cfg.LocaleDir,
		"locale":    cfg.Locale,
	}).Info("Locale configured")
}
