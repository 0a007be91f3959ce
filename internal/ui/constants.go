package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Window sizing, in base points of the slip layout
const (
	WindowWidth  float32 = 375
	WindowHeight float32 = 760

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Slip colors
var (
	ColorCellFilled   = color.Black
	ColorCellEmpty    = color.Transparent
	ColorCellNumber   = color.NRGBA{R: 255, G: 90, B: 97, A: 160}
	ColorSlipFill     = color.NRGBA{R: 255, G: 248, B: 240, A: 255}
	ColorSlipBorder   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	ColorButton       = color.NRGBA{R: 255, G: 90, B: 97, A: 255}
	ColorFadeOverlay  = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	ColorPageBackdrop = color.White
)

// Text sizing
const (
	CellNumberTextSize float32 = 9
)

// Delays
const (
	SaveTimeout = 10 * time.Second
)
