package ui

import (
	"maps"
	"slices"

	"github.com/ytget/url-shortener/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySubtitle           = "subtitle"
	KeyShorten            = "shorten"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyEnterURL           = "enter_url"
	KeyCopy               = "copy"
	KeyCopied             = "copied"
	KeyHistoryTitle       = "history_title"
	KeyOriginal           = "original"
	KeyInvalidURL         = "invalid_url"
	KeyServiceFailed      = "service_failed"
	KeyBackendOffline     = "backend_offline"
	KeyCopyFailed         = "copy_failed"
	KeyBackendURL         = "backend_url"
	KeyRequestTimeout     = "request_timeout"
	KeyBackendOverridden  = "backend_overridden"
	KeyConnectionSettings = "connection_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// ErrorText returns the message to show for an error of the given kind.
// Messages reported by the backend are shown verbatim.
func (l *Localization) ErrorText(kind model.ErrorKind, message string) string {
	switch kind {
	case model.ErrorKindValidation:
		return l.GetText(KeyInvalidURL)
	case model.ErrorKindTransport:
		return l.GetText(KeyBackendOffline)
	case model.ErrorKindService:
		if message == "" || message == model.MessageServiceFailed {
			return l.GetText(KeyServiceFailed)
		}
	}
	return message
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// sortedKeys returns language codes in a stable order for menus and selects
func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "URL Shortener",
		KeySubtitle:           "Enter a long URL to get a short, shareable link.",
		KeyShorten:            "Shorten URL",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyEnterURL:           "Paste your long URL here...",
		KeyCopy:               "Copy",
		KeyCopied:             "Copied!",
		KeyHistoryTitle:       "Shortened URL History",
		KeyOriginal:           "Original",
		KeyInvalidURL:         model.MessageInvalidURL,
		KeyServiceFailed:      model.MessageServiceFailed,
		KeyBackendOffline:     model.MessageBackendOffline,
		KeyCopyFailed:         "Could not copy to clipboard",
		KeyBackendURL:         "Backend URL",
		KeyRequestTimeout:     "Request timeout (seconds)",
		KeyBackendOverridden:  "Set by SHORTENER_BACKEND_URL",
		KeyConnectionSettings: "Connection",
		KeyInterfaceSettings:  "Interface",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Сокращатель ссылок",
		KeySubtitle:           "Введите длинный URL, чтобы получить короткую ссылку.",
		KeyShorten:            "Сократить",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyEnterURL:           "Вставьте длинный URL...",
		KeyCopy:               "Копировать",
		KeyCopied:             "Скопировано!",
		KeyHistoryTitle:       "История сокращённых ссылок",
		KeyOriginal:           "Исходный",
		KeyInvalidURL:         "Пожалуйста, введите корректный URL.",
		KeyServiceFailed:      "Что-то пошло не так. Попробуйте ещё раз.",
		KeyBackendOffline:     "Не удалось подключиться к сервису. Убедитесь, что сервер запущен.",
		KeyCopyFailed:         "Не удалось скопировать в буфер обмена",
		KeyBackendURL:         "Адрес сервера",
		KeyRequestTimeout:     "Тайм-аут запроса (сек)",
		KeyBackendOverridden:  "Задано через SHORTENER_BACKEND_URL",
		KeyConnectionSettings: "Подключение",
		KeyInterfaceSettings:  "Интерфейс",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Encurtador de URL",
		KeySubtitle:           "Digite uma URL longa para obter um link curto e compartilhável.",
		KeyShorten:            "Encurtar URL",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyEnterURL:           "Cole sua URL longa aqui...",
		KeyCopy:               "Copiar",
		KeyCopied:             "Copiado!",
		KeyHistoryTitle:       "Histórico de URLs encurtadas",
		KeyOriginal:           "Original",
		KeyInvalidURL:         "Por favor, digite uma URL válida.",
		KeyServiceFailed:      "Algo deu errado. Tente novamente.",
		KeyBackendOffline:     "Falha ao conectar ao serviço. Verifique se o backend está em execução.",
		KeyCopyFailed:         "Não foi possível copiar para a área de transferência",
		KeyBackendURL:         "URL do backend",
		KeyRequestTimeout:     "Tempo limite da requisição (segundos)",
		KeyBackendOverridden:  "Definido por SHORTENER_BACKEND_URL",
		KeyConnectionSettings: "Conexão",
		KeyInterfaceSettings:  "Interface",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
