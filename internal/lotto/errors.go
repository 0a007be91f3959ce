package lotto

import "fmt"

// InvalidRangeError is returned when a range has Min greater than Max.
type InvalidRangeError struct {
	Min int
	Max int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: min %d is greater than max %d", e.Min, e.Max)
}

// InvalidCountError is returned when the requested draw size does not fit
// the range. Size is the number of integers in the range.
type InvalidCountError struct {
	Count int
	Size  int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("invalid count: %d is outside [1, %d]", e.Count, e.Size)
}
