package lotto

import (
	"slices"
)

// Picker draws numbers using an injected Source.
type Picker struct {
	src Source
}

// NewPicker creates a picker. A nil source falls back to DefaultSource.
func NewPicker(src Source) *Picker {
	if src == nil {
		src = DefaultSource()
	}
	return &Picker{src: src}
}

// Generate samples count distinct numbers from r without replacement and
// returns them sorted. Every subset of size count is equally likely when the
// source is uniform.
func (p *Picker) Generate(r Range, count int) (Draw, error) {
	if err := r.Validate(); err != nil {
		return Draw{}, err
	}
	size := r.Size()
	if count < 1 || count > size {
		return Draw{}, &InvalidCountError{Count: count, Size: size}
	}

	pool := make([]int, size)
	for i := range pool {
		pool[i] = r.Min + i
	}

	selected := make([]int, 0, count)
	for range count {
		idx := p.src.IntN(len(pool))
		selected = append(selected, pool[idx])
		// Order of the remaining pool is kept so a fixed index sequence
		// always yields the same draw.
		pool = slices.Delete(pool, idx, idx+1)
	}

	slices.Sort(selected)
	return Draw{numbers: selected}, nil
}

// GenerateStandard draws StandardCount numbers from StandardRange.
func (p *Picker) GenerateStandard() (Draw, error) {
	return p.Generate(StandardRange, StandardCount)
}

// ToPresenceMask marks every number of d inside r. Numbers outside r are
// ignored.
func ToPresenceMask(d Draw, r Range) PresenceMask {
	mask := EmptyMask(r)
	for _, n := range d.numbers {
		if r.Contains(n) {
			mask[r.Index(n)] = true
		}
	}
	return mask
}
