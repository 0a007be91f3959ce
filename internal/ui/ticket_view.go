package ui

import (
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/lotto645/internal/lotto"
	"github.com/ytget/lotto645/internal/ticket"
)

// TicketView draws the slip and blacks out the cells of the current draw
type TicketView struct {
	layout  *ticket.Layout
	scale   float32
	cells   []*canvas.Rectangle
	overlay *canvas.Rectangle
	content *fyne.Container
	fade    *fyne.Animation
	fadeGen int
}

// NewTicketView lays the slip out for a screen of the given width.
// A nil artwork draws a plain slip with printed numbers.
func NewTicketView(l *ticket.Layout, width float32, artwork fyne.Resource) *TicketView {
	v := &TicketView{
		layout: l,
		scale:  l.Scale(width),
	}

	bg := l.BackgroundRect(v.scale)
	size := fyne.NewSize(l.BaseWidth*v.scale, bg.Height)

	// Without a layout the container takes its min size from its children
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(size)
	sizer.Resize(size)
	objects := []fyne.CanvasObject{sizer}

	if artwork != nil {
		img := canvas.NewImageFromResource(artwork)
		img.FillMode = canvas.ImageFillStretch
		place(img, bg)
		objects = append(objects, img)
	} else {
		objects = append(objects, v.plainSlip(bg)...)
	}

	for i := 0; i < l.CellCount(); i++ {
		r, _ := l.CellRect(i, v.scale)
		cell := canvas.NewRectangle(ColorCellEmpty)
		cell.CornerRadius = r.Radius
		place(cell, r)
		v.cells = append(v.cells, cell)
		objects = append(objects, cell)
	}

	v.overlay = canvas.NewRectangle(ColorFadeOverlay)
	v.overlay.Resize(size)
	objects = append(objects, v.overlay)

	v.content = container.NewWithoutLayout(objects...)
	return v
}

// plainSlip draws the paper, its border and the printed number of every cell
func (v *TicketView) plainSlip(bg ticket.Rect) []fyne.CanvasObject {
	paper := canvas.NewRectangle(ColorSlipFill)
	paper.StrokeColor = ColorSlipBorder
	paper.StrokeWidth = 1
	paper.CornerRadius = bg.Radius
	place(paper, bg)

	objects := []fyne.CanvasObject{paper}
	for i := 0; i < v.layout.CellCount(); i++ {
		r, _ := v.layout.CellRect(i, v.scale)
		label := canvas.NewText(strconv.Itoa(v.layout.Range.Min+i), ColorCellNumber)
		label.TextSize = CellNumberTextSize * v.scale
		label.Alignment = fyne.TextAlignCenter
		place(label, r)
		objects = append(objects, label)
	}
	return objects
}

// Container returns the canvas object to embed in a window
func (v *TicketView) Container() fyne.CanvasObject {
	return v.content
}

// Show marks the cells set in mask and clears every other cell
func (v *TicketView) Show(mask lotto.PresenceMask) {
	for i, cell := range v.cells {
		if mask.Filled(i) {
			cell.FillColor = ColorCellFilled
		} else {
			cell.FillColor = ColorCellEmpty
		}
		cell.Refresh()
	}
}

// IsFilled reports whether cell i is drawn as marked
func (v *TicketView) IsFilled(i int) bool {
	if i < 0 || i >= len(v.cells) {
		return false
	}
	return v.cells[i].FillColor == ColorCellFilled
}

// FilledCount returns the number of marked cells
func (v *TicketView) FilledCount() int {
	count := 0
	for i := range v.cells {
		if v.IsFilled(i) {
			count++
		}
	}
	return count
}

// Fade hides the slip over d and brings it back over another d, then calls onDone.
// A new fade cancels one still running; d <= 0 calls onDone immediately.
func (v *TicketView) Fade(d time.Duration, onDone func()) {
	v.stopFade()

	if d <= 0 {
		v.setOverlayAlpha(0)
		if onDone != nil {
			onDone()
		}
		return
	}

	v.fade = fyne.NewAnimation(2*d, v.fadeTick(onDone))
	v.fade.Curve = fyne.AnimationLinear
	v.fade.Start()
}

// stopFade halts the running fade; its ticks are ignored from now on
func (v *TicketView) stopFade() {
	v.fadeGen++
	if v.fade != nil {
		v.fade.Stop()
		v.fade = nil
	}
}

// fadeTick returns the animation callback of the current fade.
// onDone runs once, on the first tick at full progress.
func (v *TicketView) fadeTick(onDone func()) func(float32) {
	gen := v.fadeGen
	finished := false
	return func(progress float32) {
		if gen != v.fadeGen || finished {
			return
		}
		v.setOverlayAlpha(fadeLevel(progress))
		if progress >= 1 {
			finished = true
			if onDone != nil {
				onDone()
			}
		}
	}
}

// fadeLevel is the overlay opacity at progress: 0 -> 1 over the first half, 1 -> 0 over the second
func fadeLevel(progress float32) float32 {
	return 1 - abs32(2*progress-1)
}

// OverlayAlpha returns the current opacity of the fade overlay in [0, 255]
func (v *TicketView) OverlayAlpha() uint8 {
	return v.overlay.FillColor.(color.NRGBA).A
}

func (v *TicketView) setOverlayAlpha(level float32) {
	c := ColorFadeOverlay
	c.A = uint8(level * 255)
	v.overlay.FillColor = c
	v.overlay.Refresh()
}

func place(obj fyne.CanvasObject, r ticket.Rect) {
	obj.Move(fyne.NewPos(r.X, r.Y))
	obj.Resize(fyne.NewSize(r.Width, r.Height))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
