package lotto

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Draw is a sorted set of distinct numbers produced by one Generate call.
// The zero value is an empty draw.
type Draw struct {
	numbers []int
}

// NewDraw builds a draw from arbitrary numbers, sorting a private copy.
// It does not check distinctness; Generate is the only producer of valid draws.
func NewDraw(numbers ...int) Draw {
	n := slices.Clone(numbers)
	slices.Sort(n)
	return Draw{numbers: n}
}

// Numbers returns a copy of the drawn numbers in ascending order.
func (d Draw) Numbers() []int {
	return slices.Clone(d.numbers)
}

// Len returns the number of drawn numbers.
func (d Draw) Len() int {
	return len(d.numbers)
}

// IsEmpty reports whether nothing has been drawn.
func (d Draw) IsEmpty() bool {
	return len(d.numbers) == 0
}

// Contains reports whether n is part of the draw.
func (d Draw) Contains(n int) bool {
	_, found := slices.BinarySearch(d.numbers, n)
	return found
}

// String formats the draw as space separated, zero padded numbers ("03 11 27").
func (d Draw) String() string {
	parts := make([]string, len(d.numbers))
	for i, n := range d.numbers {
		if n < 10 && n >= 0 {
			parts[i] = "0" + strconv.Itoa(n)
		} else {
			parts[i] = strconv.Itoa(n)
		}
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the draw as a plain array of numbers.
func (d Draw) MarshalJSON() ([]byte, error) {
	if d.numbers == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.numbers)
}

// UnmarshalJSON decodes a plain array of numbers.
func (d *Draw) UnmarshalJSON(data []byte) error {
	var numbers []int
	if err := json.Unmarshal(data, &numbers); err != nil {
		return err
	}
	*d = NewDraw(numbers...)
	return nil
}

// PresenceMask marks which numbers of a range are part of a draw; index i
// stands for Range.Min+i.
type PresenceMask []bool

// EmptyMask returns an all-false mask for r, the state before any draw.
func EmptyMask(r Range) PresenceMask {
	return make(PresenceMask, r.Size())
}

// Count returns the number of marked cells.
func (m PresenceMask) Count() int {
	count := 0
	for _, filled := range m {
		if filled {
			count++
		}
	}
	return count
}

// Filled reports whether cell i is marked. Out of range indexes are unmarked.
func (m PresenceMask) Filled(i int) bool {
	return i >= 0 && i < len(m) && m[i]
}
