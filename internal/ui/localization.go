package ui

import (
	"github.com/ytget/profile-sample/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyName             = "name"
	KeyLastName         = "last_name"
	KeyLikes            = "likes"
	KeyPopularity       = "popularity"
	KeyLike             = "like"
	KeyEmail            = "email"
	KeyEnterEmail       = "enter_email"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyEmailCheckDelay  = "email_check_delay"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartToApply   = "restart_to_apply"
	KeyPopularityNormal = "popularity_normal"
	KeyPopularityHot    = "popularity_popular"
	KeyPopularityStar   = "popularity_star"
	KeyEmailVoid        = "email_void"
	KeyEmailInvalid     = "email_invalid"
	KeyEmailChecking    = "email_checking"
	KeyEmailTaken       = "email_taken"
	KeyEmailOK          = "email_ok"
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

// PopularityText returns the localized label of a popularity tier
func (l *Localization) PopularityText(p model.Popularity) string {
	switch p {
	case model.PopularityStar:
		return l.GetText(KeyPopularityStar)
	case model.PopularityPopular:
		return l.GetText(KeyPopularityHot)
	default:
		return l.GetText(KeyPopularityNormal)
	}
}

// EmailStateText returns the localized description of an email state
func (l *Localization) EmailStateText(s model.EmailState) string {
	switch s {
	case model.EmailStateInvalid:
		return l.GetText(KeyEmailInvalid)
	case model.EmailStateChecking:
		return l.GetText(KeyEmailChecking)
	case model.EmailStateTaken:
		return l.GetText(KeyEmailTaken)
	case model.EmailStateOK:
		return l.GetText(KeyEmailOK)
	default:
		return l.GetText(KeyEmailVoid)
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Profile",
		KeyName:             "Name",
		KeyLastName:         "Last name",
		KeyLikes:            "Likes",
		KeyPopularity:       "Popularity",
		KeyLike:             "Like",
		KeyEmail:            "Email",
		KeyEnterEmail:       "name@example.com",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyEmailCheckDelay:  "Email check delay (ms)",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartToApply:   "The new delay applies to the next session.",
		KeyPopularityNormal: "Normal",
		KeyPopularityHot:    "Popular",
		KeyPopularityStar:   "Star",
		KeyEmailVoid:        "Enter an email",
		KeyEmailInvalid:     "Invalid email",
		KeyEmailChecking:    "Checking...",
		KeyEmailTaken:       "Email already taken",
		KeyEmailOK:          "Email available",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Профиль",
		KeyName:             "Имя",
		KeyLastName:         "Фамилия",
		KeyLikes:            "Лайки",
		KeyPopularity:       "Популярность",
		KeyLike:             "Нравится",
		KeyEmail:            "Почта",
		KeyEnterEmail:       "name@example.com",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyEmailCheckDelay:  "Задержка проверки почты (мс)",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartToApply:   "Новая задержка применится в следующем сеансе.",
		KeyPopularityNormal: "Обычный",
		KeyPopularityHot:    "Популярный",
		KeyPopularityStar:   "Звезда",
		KeyEmailVoid:        "Введите почту",
		KeyEmailInvalid:     "Неверная почта",
		KeyEmailChecking:    "Проверка...",
		KeyEmailTaken:       "Почта уже занята",
		KeyEmailOK:          "Почта свободна",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Perfil",
		KeyName:             "Nome",
		KeyLastName:         "Sobrenome",
		KeyLikes:            "Curtidas",
		KeyPopularity:       "Popularidade",
		KeyLike:             "Curtir",
		KeyEmail:            "E-mail",
		KeyEnterEmail:       "nome@exemplo.com",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyEmailCheckDelay:  "Atraso da verificação de e-mail (ms)",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartToApply:   "O novo atraso vale a partir da próxima sessão.",
		KeyPopularityNormal: "Normal",
		KeyPopularityHot:    "Popular",
		KeyPopularityStar:   "Estrela",
		KeyEmailVoid:        "Digite um e-mail",
		KeyEmailInvalid:     "E-mail inválido",
		KeyEmailChecking:    "Verificando...",
		KeyEmailTaken:       "E-mail já em uso",
		KeyEmailOK:          "E-mail disponível",
	}
}
