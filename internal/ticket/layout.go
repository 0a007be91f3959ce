package ticket

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/ytget/lotto645/internal/lotto"
)

//go:embed layout.yaml
var defaultLayoutYAML []byte

// Size is a width/height pair in base points.
type Size struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Radius float32 `yaml:"radius"`
}

// Grid positions the first row of cells.
type Grid struct {
	Left     float32 `yaml:"left"`
	Top      float32 `yaml:"top"`
	RowPitch float32 `yaml:"row_pitch"`
}

// Cell describes one marking box.
type Cell struct {
	Width   float32 `yaml:"width"`
	Height  float32 `yaml:"height"`
	MarginX float32 `yaml:"margin_x"`
	MarginY float32 `yaml:"margin_y"`
	Radius  float32 `yaml:"radius"`
}

// Rect is a positioned rectangle in screen points.
type Rect struct {
	X, Y          float32
	Width, Height float32
	Radius        float32
}

// Layout maps ticket numbers to boxes on the slip image.
type Layout struct {
	BaseWidth  float32     `yaml:"base_width"`
	Range      lotto.Range `yaml:"range"`
	Columns    int         `yaml:"columns"`
	Background Size        `yaml:"background"`
	Grid       Grid        `yaml:"grid"`
	Cell       Cell        `yaml:"cell"`
}

// DefaultLayout returns the layout of the standard 6/45 slip.
func DefaultLayout() (*Layout, error) {
	return ParseLayout(defaultLayoutYAML)
}

// ParseLayout decodes and validates a YAML layout description.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse ticket layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that the layout can place every number of its range.
func (l *Layout) Validate() error {
	if err := l.Range.Validate(); err != nil {
		return fmt.Errorf("ticket layout: %w", err)
	}
	if l.Columns < 1 {
		return fmt.Errorf("ticket layout: columns must be positive, got %d", l.Columns)
	}
	if l.BaseWidth <= 0 {
		return fmt.Errorf("ticket layout: base width must be positive")
	}
	if l.Cell.Width <= 0 || l.Cell.Height <= 0 {
		return fmt.Errorf("ticket layout: cell size must be positive")
	}
	if l.Background.Width <= 0 || l.Background.Height <= 0 {
		return fmt.Errorf("ticket layout: background size must be positive")
	}
	return nil
}

// CellCount returns the number of boxes on the slip.
func (l *Layout) CellCount() int {
	return l.Range.Size()
}

// Rows returns the number of grid rows; the last row may be partial.
func (l *Layout) Rows() int {
	return (l.CellCount() + l.Columns - 1) / l.Columns
}

// RowOf returns the grid row of cell index i.
func (l *Layout) RowOf(i int) int {
	return i / l.Columns
}

// ColumnOf returns the grid column of cell index i.
func (l *Layout) ColumnOf(i int) int {
	return i % l.Columns
}

// RowLength returns how many cells row holds.
func (l *Layout) RowLength(row int) int {
	if row < 0 || row >= l.Rows() {
		return 0
	}
	remaining := l.CellCount() - row*l.Columns
	if remaining > l.Columns {
		return l.Columns
	}
	return remaining
}

// Scale returns the factor mapping base points onto a screen of the given width.
func (l *Layout) Scale(screenWidth float32) float32 {
	if screenWidth <= 0 {
		return 1
	}
	return screenWidth / l.BaseWidth
}

// CellRect returns the on-screen box of cell index i at the given scale.
// Sizes are rounded to whole points like the slip artwork.
func (l *Layout) CellRect(i int, scale float32) (Rect, error) {
	if i < 0 || i >= l.CellCount() {
		return Rect{}, fmt.Errorf("cell index %d outside [0, %d)", i, l.CellCount())
	}
	row, col := l.RowOf(i), l.ColumnOf(i)

	pitchX := l.Cell.Width + 2*l.Cell.MarginX
	x := l.Grid.Left + float32(col)*pitchX + l.Cell.MarginX
	y := l.Grid.Top + float32(row)*l.Grid.RowPitch + l.Cell.MarginY

	return Rect{
		X:      round(x * scale),
		Y:      round(y * scale),
		Width:  round(l.Cell.Width * scale),
		Height: round(l.Cell.Height * scale),
		Radius: round(l.Cell.Radius * scale),
	}, nil
}

// BackgroundRect returns the slip image box, horizontally centred on screen.
func (l *Layout) BackgroundRect(scale float32) Rect {
	w := round(l.Background.Width * scale)
	return Rect{
		X:      round((l.BaseWidth*scale - w) / 2),
		Y:      0,
		Width:  w,
		Height: round(l.Background.Height * scale),
		Radius: round(l.Background.Radius * scale),
	}
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}
