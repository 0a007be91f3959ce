package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a primary button sized for touch on mobile devices
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.HighImportance
	return btn
}

// WrapTouchTarget stretches obj to the minimum touch height on mobile devices
func (m *MobileUI) WrapTouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return obj
	}
	pad := canvas.NewRectangle(color.Transparent)
	pad.SetMinSize(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
	return container.NewStack(pad, obj)
}

// GetDeviceOrientation returns the current device orientation
func (m *MobileUI) GetDeviceOrientation() fyne.DeviceOrientation {
	return fyne.CurrentDevice().Orientation()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.GetDeviceOrientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
