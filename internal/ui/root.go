package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/lotto645/internal/capture"
	"github.com/ytget/lotto645/internal/config"
	"github.com/ytget/lotto645/internal/lotto"
	"github.com/ytget/lotto645/internal/model"
	"github.com/ytget/lotto645/internal/platform"
	"github.com/ytget/lotto645/internal/ticket"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	appID        string
	picker       *lotto.Picker
	saver        capture.Saver
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	log          *zap.Logger

	view         *TicketView
	numbersLabel *widget.Label
	statusLabel  *widget.Label
	generateBtn  *widget.Button
	saveBtn      *widget.Button

	// most recent draw; replaced wholesale on every generate
	current model.Ticket
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, appID string, settings *config.Settings, picker *lotto.Picker, saver capture.Saver, logger *zap.Logger) (*RootUI, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	layout, err := ticket.DefaultLayout()
	if err != nil {
		return nil, err
	}
	if layout.Range != lotto.StandardRange {
		return nil, fmt.Errorf("ticket layout covers %v, expected %v", layout.Range, lotto.StandardRange)
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		appID:        appID,
		picker:       picker,
		saver:        saver,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		log:          logger.Named("ui"),
	}

	artwork, err := LoadTicketResource()
	if err != nil {
		ui.log.Debug("slip artwork not found, drawing plain slip", zap.Error(err))
		artwork = nil
	}
	ui.view = NewTicketView(layout, WindowWidth, artwork)

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for save status updates
	ui.saver.SetUpdateCallback(ui.onCaptureUpdate)

	ui.setupUI()
	return ui, nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.numbersLabel = widget.NewLabel(ui.localization.GetText(KeyNoTicketYet))
	ui.numbersLabel.Alignment = fyne.TextAlignCenter
	ui.numbersLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.generateBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyGenerate), ui.onGenerate)

	ui.saveBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeySaveTicket), theme.DocumentSaveIcon(), ui.onSave)
	ui.saveBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	controls := container.NewVBox(
		ui.numbersLabel,
		ui.mobile.WrapTouchTarget(ui.generateBtn),
		container.NewBorder(nil, nil, settingsBtn, nil, ui.saveBtn),
		ui.statusLabel,
	)

	slip := container.NewCenter(ui.view.Container())

	var content fyne.CanvasObject
	if ui.mobile.IsMobileDevice() && ui.mobile.IsLandscape() {
		content = container.NewBorder(nil, nil, nil, controls, slip)
	} else {
		content = container.NewBorder(nil, controls, nil, nil, slip)
	}

	ui.window.SetContent(content)
	ui.log.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(languages)) {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))
	ui.saveBtn.SetText(ui.localization.GetText(KeySaveTicket))
	if ui.current.Draw.IsEmpty() {
		ui.numbersLabel.SetText(ui.localization.GetText(KeyNoTicketYet))
	}
}

// onGenerate draws a new ticket, shows it and fades the slip.
// With auto-save enabled the ticket is saved once the slip is fully visible again.
func (ui *RootUI) onGenerate() {
	draw, err := ui.picker.Generate(lotto.StandardRange, lotto.StandardCount)
	if err != nil {
		ui.log.Error("failed to draw numbers", zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}

	ui.showTicket(model.NewTicket(draw, lotto.ToPresenceMask(draw, lotto.StandardRange)))

	autoSave := ui.settings.GetAutoSaveOnGenerate()
	ui.view.Fade(ui.settings.GetFadeDuration(), func() {
		if autoSave {
			ui.onSave()
		}
	})
}

// showTicket hands a ticket to the view and makes it the current one
func (ui *RootUI) showTicket(t model.Ticket) {
	ui.current = t
	ui.view.Show(t.Mask)
	ui.numbersLabel.SetText(t.NumbersString())
	ui.saveBtn.Enable()

	ui.log.Info("numbers drawn",
		zap.String("ticket", t.ID),
		zap.Ints("numbers", t.Draw.Numbers()))
}

// Current returns the ticket on screen
func (ui *RootUI) Current() model.Ticket {
	return ui.current
}

// onSave captures the window and saves it in the background
func (ui *RootUI) onSave() {
	if ui.current.Draw.IsEmpty() {
		return
	}

	img := ui.window.Canvas().Capture()
	ticketID := ui.current.ID

	ui.saveBtn.Disable()

	go func() {
		c, err := ui.saveImage(ticketID, img)
		fyne.Do(func() {
			ui.onSaveFinished(c, err)
		})
	}()
}

// saveImage runs the capture service with a bounded timeout
func (ui *RootUI) saveImage(ticketID string, img image.Image) (*model.Capture, error) {
	ctx, cancel := context.WithTimeout(context.Background(), SaveTimeout)
	defer cancel()
	return ui.saver.Save(ctx, ticketID, img)
}

// onCaptureUpdate follows a save through its statuses on the status line.
// The saver calls it from the save goroutine.
func (ui *RootUI) onCaptureUpdate(c *model.Capture) {
	ui.log.Debug("capture update",
		zap.String("id", c.ID),
		zap.String("ticket", c.TicketID),
		zap.String("summary", c.Summary()))

	fyne.Do(func() {
		ui.setStatus(ui.captureStatusText(c))
	})
}

// captureStatusText is the localized status line for a capture
func (ui *RootUI) captureStatusText(c *model.Capture) string {
	switch c.Status {
	case model.CaptureStatusSaved:
		return fmt.Sprintf(ui.localization.GetText(KeySavedMessage), c.FileName())
	case model.CaptureStatusDenied:
		return ui.localization.GetText(KeyPermissionTitle)
	case model.CaptureStatusError:
		return ui.localization.GetText(KeyErrorSaving)
	default:
		return ui.localization.GetText(KeySaving)
	}
}

// onSaveFinished reports the outcome of a save. Must run on the UI goroutine.
func (ui *RootUI) onSaveFinished(c *model.Capture, err error) {
	ui.saveBtn.Enable()

	switch {
	case errors.Is(err, platform.ErrStoragePermission):
		ui.showPermissionDialog()
	case err != nil:
		ui.log.Error("failed to save ticket", zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorSaving), err), ui.window)
	default:
		ui.showSavedDialog(fmt.Sprintf(ui.localization.GetText(KeySavedMessage), c.Path), c.Path)
	}
}

// showPermissionDialog explains the missing permission and offers the app settings
func (ui *RootUI) showPermissionDialog() {
	message := widget.NewLabel(ui.localization.GetText(KeyPermissionMessage))
	message.Wrapping = fyne.TextWrapWord

	dialog.ShowCustomConfirm(
		ui.localization.GetText(KeyPermissionTitle),
		ui.localization.GetText(KeyOpenSettings),
		ui.localization.GetText(KeyCancel),
		message,
		func(open bool) {
			if !open {
				return
			}
			if err := platform.OpenAppSettings(ui.appID); err != nil {
				ui.log.Warn("failed to open app settings", zap.Error(err))
			}
		},
		ui.window,
	)
}

// showSavedDialog confirms the save and offers to open the image
func (ui *RootUI) showSavedDialog(message, path string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	dialog.ShowCustomConfirm(
		ui.localization.GetText(KeySavedTitle),
		ui.localization.GetText(KeyOpen),
		ui.localization.GetText(KeyClose),
		label,
		func(open bool) {
			if !open {
				return
			}
			if err := platform.OpenFileWithDefaultApp(path); err != nil {
				dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
			}
		},
		ui.window,
	)
}

func (ui *RootUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved pushes changed settings to the services and refreshes texts
func (ui *RootUI) onSettingsSaved() {
	ui.saver.SetDirectory(ui.settings.GetSaveDirectory())
	ui.saver.SetQuality(ui.settings.GetJPEGQuality())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}
