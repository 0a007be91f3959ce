package ui

import (
	"maps"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lotto645/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	saveDirEntry   *widget.Entry
	qualityEntry   *widget.Entry
	fadeEntry      *widget.Entry
	autoSaveCheck  *widget.Check
	languageSelect *widget.Select
	languageCodes  []string // codes in the order of languageSelect.Options
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after the values are stored
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.saveDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	sd.qualityEntry = widget.NewEntry()
	sd.qualityEntry.SetPlaceHolder(strconv.Itoa(config.MinJPEGQuality) + "-" + strconv.Itoa(config.MaxJPEGQuality))
	sd.qualityEntry.Validator = validateInt

	sd.fadeEntry = widget.NewEntry()
	sd.fadeEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxFadeDurationMS))
	sd.fadeEntry.Validator = validateInt

	sd.autoSaveCheck = widget.NewCheck(text(KeyAutoSave), nil)

	languageNames := sd.settings.GetLanguageOptions()
	sd.languageCodes = slices.Sorted(maps.Keys(languageNames))
	languageOptions := make([]string, len(sd.languageCodes))
	for i, code := range sd.languageCodes {
		languageOptions[i] = languageNames[code]
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewLabel(text(KeyJPEGQuality)+":"),
		sd.qualityEntry,

		widget.NewLabel(text(KeyFadeDuration)+":"),
		sd.fadeEntry,

		sd.autoSaveCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(340, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.qualityEntry.SetText(strconv.Itoa(sd.settings.GetJPEGQuality()))
	sd.fadeEntry.SetText(strconv.Itoa(int(sd.settings.GetFadeDuration().Milliseconds())))
	sd.autoSaveCheck.SetChecked(sd.settings.GetAutoSaveOnGenerate())
	if i := slices.Index(sd.languageCodes, sd.settings.GetLanguage()); i >= 0 {
		sd.languageSelect.SetSelectedIndex(i)
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the entered values; invalid numbers leave the old value in place
func (sd *SettingsDialog) apply() {
	if dir := sd.saveDirEntry.Text; dir != "" {
		sd.settings.SetSaveDirectory(dir)
	}

	if quality, err := strconv.Atoi(sd.qualityEntry.Text); err == nil {
		sd.settings.SetJPEGQuality(quality)
	}

	if fade, err := strconv.Atoi(sd.fadeEntry.Text); err == nil {
		sd.settings.SetFadeDuration(fade)
	}

	sd.settings.SetAutoSaveOnGenerate(sd.autoSaveCheck.Checked)

	if i := sd.languageSelect.SelectedIndex(); i >= 0 {
		sd.settings.SetLanguage(sd.languageCodes[i])
	}
}

func validateInt(s string) error {
	if s == "" {
		return nil
	}
	_, err := strconv.Atoi(s)
	return err
}
