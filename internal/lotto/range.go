package lotto

// Domain constants of the 6/45 format.
const (
	StandardMin   = 1
	StandardMax   = 45
	StandardCount = 6
)

// StandardRange is the universe every ticket is drawn from.
var StandardRange = Range{Min: StandardMin, Max: StandardMax}

// Range is an inclusive [Min, Max] interval of selectable numbers.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Validate reports an *InvalidRangeError when Min > Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return &InvalidRangeError{Min: r.Min, Max: r.Max}
	}
	return nil
}

// Size returns the number of integers in the range, or 0 for an invalid range.
func (r Range) Size() int {
	if r.Min > r.Max {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether n lies inside the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Index returns the zero-based mask index of n.
func (r Range) Index(n int) int {
	return n - r.Min
}
