package i18n

import (
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Days": {
		"pt": "Dias",
		"es": "Días",
		"ru": "Дни",
	},
	"Hours": {
		"pt": "Horas",
		"es": "Horas",
		"ru": "Часы",
	},
	"Minutes": {
		"pt": "Minutos",
		"es": "Minutos",
		"ru": "Минуты",
	},
	"Seconds": {
		"pt": "Segundos",
		"es": "Segundos",
		"ru": "Секунды",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Resume": {
		"pt": "Retomar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"paused": {
		"pt": "pausado",
		"es": "pausado",
		"ru": "пауза",
	},
	"Preferences": {
		"pt": "Preferências",
		"es": "Preferencias",
		"ru": "Настройки",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Save": {
		"pt": "Salvar",
		"es": "Guardar",
		"ru": "Сохранить",
	},
	"Cancel": {
		"pt": "Cancelar",
		"es": "Cancelar",
		"ru": "Отмена",
	},
	"Time is up!": {
		"pt": "O tempo acabou!",
		"es": "¡Se acabó el tiempo!",
		"ru": "Время вышло!",
	},
	"Duration (seconds)": {
		"pt": "Duração (segundos)",
		"es": "Duración (segundos)",
		"ru": "Длительность (секунды)",
	},
	"Start automatically": {
		"pt": "Iniciar automaticamente",
		"es": "Iniciar automáticamente",
		"ru": "Запускать автоматически",
	},
	"Play chime when finished": {
		"pt": "Tocar alerta ao terminar",
		"es": "Reproducir alerta al terminar",
		"ru": "Звуковой сигнал по окончании",
	},
	"Show unit labels": {
		"pt": "Mostrar nomes das unidades",
		"es": "Mostrar nombres de unidades",
		"ru": "Показывать подписи единиц",
	},
}

func init() {
	if forcedLang := strings.TrimSpace(os.Getenv("TICKDOWN_LANG")); forcedLang != "" {
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		lang = "en"
		return
	}

	switch detected := userLocales[0]; {
	case strings.HasPrefix(detected, "pt"):
		lang = "pt"
	case strings.HasPrefix(detected, "es"):
		lang = "es"
	case strings.HasPrefix(detected, "ru"):
		lang = "ru"
	default:
		lang = "en"
	}
}

// T returns the translation for key in the active language, falling back
// to the key itself.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}
