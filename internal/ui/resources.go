package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon     = "lotto645.png"
	TicketImage = "ticket.png"
)

// LoadAppIcon loads the window icon from file path
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// LoadTicketResource loads the slip artwork from file path.
// The view draws a plain slip when it is missing.
func LoadTicketResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(TicketImage)
}
