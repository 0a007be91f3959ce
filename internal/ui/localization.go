package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyGenerate          = "generate"
	KeySaveTicket        = "save_ticket"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySaveDirectory     = "save_directory"
	KeyJPEGQuality       = "jpeg_quality"
	KeyFadeDuration      = "fade_duration"
	KeyAutoSave          = "auto_save"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeySaving            = "saving"
	KeySavedTitle        = "saved_title"
	KeySavedMessage      = "saved_message"
	KeyOpen              = "open"
	KeyClose             = "close"
	KeyPermissionTitle   = "permission_title"
	KeyPermissionMessage = "permission_message"
	KeyOpenSettings      = "open_settings"
	KeyErrorSaving       = "error_saving"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyNoTicketYet       = "no_ticket_yet"
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
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage returns the two letter language of the process locale, "en" if unknown
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(env)
		if len(value) >= 2 && value != "C" && !strings.HasPrefix(value, "POSIX") {
			return strings.ToLower(value[:2])
		}
	}
	return "en"
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
		"ko": "한국어",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Lotto 6/45",
		KeyGenerate:          "Generate Numbers",
		KeySaveTicket:        "Save Ticket",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySaveDirectory:     "Save Directory",
		KeyJPEGQuality:       "JPEG Quality",
		KeyFadeDuration:      "Fade Duration (ms)",
		KeyAutoSave:          "Save to photos after each draw",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySaving:            "Saving ticket...",
		KeySavedTitle:        "Capture saved",
		KeySavedMessage:      "Saved to %s",
		KeyOpen:              "Open",
		KeyClose:             "Close",
		KeyPermissionTitle:   "Storage Permission",
		KeyPermissionMessage: "Storage permission is needed to save photos. Please enable it in the app settings.",
		KeyOpenSettings:      "Open Settings",
		KeyErrorSaving:       "Failed to save image to camera roll",
		KeyErrorOpeningFile:  "Error opening file",
		KeyNoTicketYet:       "Press the button to draw your numbers",
	}

	// Korean texts
	l.texts["ko"] = map[string]string{
		KeyAppTitle:          "로또 6/45",
		KeyGenerate:          "로또번호생성",
		KeySaveTicket:        "용지 저장",
		KeySettings:          "설정",
		KeyFile:              "파일",
		KeyLanguage:          "언어",
		KeySaveDirectory:     "저장 위치",
		KeyJPEGQuality:       "JPEG 품질",
		KeyFadeDuration:      "페이드 시간 (ms)",
		KeyAutoSave:          "번호 생성 후 사진에 저장",
		KeySave:              "저장",
		KeyCancel:            "취소",
		KeyBrowse:            "찾아보기",
		KeySettingsSaved:     "설정이 저장되었습니다!",
		KeySaving:            "저장 중...",
		KeySavedTitle:        "캡쳐 성공",
		KeySavedMessage:      "%s 위치에 저장했습니다.",
		KeyOpen:              "열기",
		KeyClose:             "닫기",
		KeyPermissionTitle:   "저장소 권한",
		KeyPermissionMessage: "사진을 저장하려면 저장소 권한이 필요합니다. 앱 설정에서 권한을 허용해 주세요.",
		KeyOpenSettings:      "설정 열기",
		KeyErrorSaving:       "이미지를 저장하지 못했습니다",
		KeyErrorOpeningFile:  "파일을 열 수 없습니다",
		KeyNoTicketYet:       "버튼을 눌러 번호를 생성하세요",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Лото 6/45",
		KeyGenerate:          "Сгенерировать",
		KeySaveTicket:        "Сохранить билет",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySaveDirectory:     "Папка сохранения",
		KeyJPEGQuality:       "Качество JPEG",
		KeyFadeDuration:      "Длительность затухания (мс)",
		KeyAutoSave:          "Сохранять в фото после генерации",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySaving:            "Сохранение...",
		KeySavedTitle:        "Снимок сохранён",
		KeySavedMessage:      "Сохранено в %s",
		KeyOpen:              "Открыть",
		KeyClose:             "Закрыть",
		KeyPermissionTitle:   "Доступ к хранилищу",
		KeyPermissionMessage: "Для сохранения фото нужен доступ к хранилищу. Разрешите его в настройках приложения.",
		KeyOpenSettings:      "Открыть настройки",
		KeyErrorSaving:       "Не удалось сохранить изображение",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyNoTicketYet:       "Нажмите кнопку, чтобы получить номера",
	}
}
