package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TicketTheme is a light theme in the colors of the paper slip
type TicketTheme struct{}

// NewTicketTheme creates a new ticket theme
func NewTicketTheme() fyne.Theme {
	return &TicketTheme{}
}

// Color returns theme colors
func (t *TicketTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return ColorButton // Generate button
	case theme.ColorNameForegroundOnPrimary:
		return color.White
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		return ColorPageBackdrop // Slip is always shown on white
	case theme.ColorNameForeground:
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// The slip artwork only exists in a light variant
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *TicketTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TicketTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *TicketTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16 // Button label on the slip
	case theme.SizeNameInputRadius:
		return 0 // Square, full width button
	}

	return theme.DefaultTheme().Size(name)
}
