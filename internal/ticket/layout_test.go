package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/lotto645/internal/lotto"
)

func TestDefaultLayout(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	assert.Equal(t, lotto.StandardRange, l.Range)
	assert.Equal(t, 45, l.CellCount())
	assert.Equal(t, 7, l.Columns)
	assert.Equal(t, 7, l.Rows())
}

func TestLayout_RowLength(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	tests := []struct {
		row      int
		expected int
	}{
		{0, 7},
		{5, 7},
		{6, 3},
		{7, 0},
		{-1, 0},
	}
	for _, test := range tests {
		if got := l.RowLength(test.row); got != test.expected {
			t.Errorf("RowLength(%d) = %d, expected %d", test.row, got, test.expected)
		}
	}
}

func TestLayout_CellRect(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	tests := []struct {
		index    int
		scale    float32
		expected Rect
	}{
		{0, 1, Rect{X: 164, Y: 75, Width: 18, Height: 27, Radius: 5}},
		{6, 1, Rect{X: 296, Y: 75, Width: 18, Height: 27, Radius: 5}},
		{7, 1, Rect{X: 164, Y: 119, Width: 18, Height: 27, Radius: 5}},
		{44, 1, Rect{X: 208, Y: 339, Width: 18, Height: 27, Radius: 5}},
		{0, 2, Rect{X: 328, Y: 150, Width: 36, Height: 54, Radius: 10}},
	}
	for _, test := range tests {
		got, err := l.CellRect(test.index, test.scale)
		require.NoError(t, err)
		assert.Equal(t, test.expected, got, "cell %d at scale %v", test.index, test.scale)
	}

	_, err = l.CellRect(45, 1)
	assert.Error(t, err)
	_, err = l.CellRect(-1, 1)
	assert.Error(t, err)
}

func TestLayout_BackgroundRect(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	assert.Equal(t, Rect{X: 40, Y: 0, Width: 295, Height: 600, Radius: 5}, l.BackgroundRect(1))
}

func TestLayout_Scale(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	assert.Equal(t, float32(1), l.Scale(375))
	assert.Equal(t, float32(2), l.Scale(750))
	assert.Equal(t, float32(1), l.Scale(0))
}

func TestParseLayout_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "columns: [1, 2"},
		{"inverted range", "base_width: 375\nrange: {min: 9, max: 1}\ncolumns: 7\nbackground: {width: 1, height: 1}\ncell: {width: 1, height: 1}\n"},
		{"zero columns", "base_width: 375\nrange: {min: 1, max: 45}\ncolumns: 0\nbackground: {width: 1, height: 1}\ncell: {width: 1, height: 1}\n"},
		{"no cell size", "base_width: 375\nrange: {min: 1, max: 45}\ncolumns: 7\nbackground: {width: 1, height: 1}\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(test.data))
			assert.Error(t, err)
		})
	}
}
