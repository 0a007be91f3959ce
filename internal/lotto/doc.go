package lotto

// Package lotto draws lottery numbers: a uniform sample of distinct integers
// from an inclusive range, and the presence mask that marks those numbers on
// a ticket grid. The package holds no state; callers keep the current draw.
