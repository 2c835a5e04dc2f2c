package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad2D(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	y, err := x.Pad2D(1, 0)
	require.NoError(t, err)

	assert.Equal(t, Shape{4, 2}, y.Shape())
	assert.Equal(t, []float64{
		0, 0,
		1, 2,
		3, 4,
		0, 0,
	}, y.Data())

	// Receiver untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, x.Data())
}

func TestPad2D_LeadingAxes(t *testing.T) {
	x := Arange(Shape{2, 3, 2, 2})
	y, err := x.Pad2D(1, 1)
	require.NoError(t, err)
	require.Equal(t, Shape{2, 3, 4, 4}, y.Shape())

	for n := 0; n < 2; n++ {
		for c := 0; c < 3; c++ {
			for h := 0; h < 4; h++ {
				for w := 0; w < 4; w++ {
					want := 0.0
					if h >= 1 && h <= 2 && w >= 1 && w <= 2 {
						want = x.At(n, c, h-1, w-1)
					}
					assert.Equal(t, want, y.At(n, c, h, w), "n=%d c=%d h=%d w=%d", n, c, h, w)
				}
			}
		}
	}
}

func TestPad2D_NoPaddingCopies(t *testing.T) {
	x := Arange(Shape{3, 3})
	y, err := x.Pad2D(0, 0)
	require.NoError(t, err)
	assert.True(t, x.Equal(y))

	y.Data()[0] = 99
	assert.Equal(t, 0.0, x.At(0, 0))
}

func TestPad2D_Errors(t *testing.T) {
	_, err := Arange(Shape{4}).Pad2D(1, 1)
	assert.Error(t, err)

	_, err = Arange(Shape{2, 2}).Pad2D(-1, 0)
	assert.Error(t, err)
}

func TestCrop2D_InvertsPad2D(t *testing.T) {
	x := Arange(Shape{2, 2, 3, 4})
	padded, err := x.Pad2D(2, 1)
	require.NoError(t, err)

	back, err := padded.Crop2D(2, 1)
	require.NoError(t, err)
	assert.True(t, x.Equal(back))

	_, err = x.Crop2D(2, 0)
	assert.Error(t, err, "cropping 2 rows on each side of a height-3 plane leaves nothing")
}

func TestTranspose2D(t *testing.T) {
	x := Arange(Shape{2, 3})
	y, err := x.Transpose2D()
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 2}, y.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, x.At(i, j), y.At(j, i))
		}
	}

	_, err = Arange(Shape{2, 2, 2}).Transpose2D()
	assert.Error(t, err)
}

func TestSlice(t *testing.T) {
	x := Arange(Shape{2, 3, 2, 2})
	plane, err := x.Slice(1, 2)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 2}, plane.Shape())
	assert.Equal(t, []float64{20, 21, 22, 23}, plane.Data())

	_, err = x.Slice(2, 0)
	assert.Error(t, err)
	_, err = x.Slice(0, 0, 0, 0)
	assert.Error(t, err)
}
