package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConv2DOutputSize_ShapeLaw(t *testing.T) {
	// 5x5 input, 3x3 kernel.
	tests := []struct {
		name    string
		padding Padding
		stride  Stride
		hOut    int
		wOut    int
	}{
		{"valid", NoPadding, UnitStride, 3, 3},
		{"same", Padding{1, 1}, UnitStride, 5, 5},
		{"stride2", NoPadding, Stride{2, 2}, 2, 2},
		{"stride2_pad1", Padding{1, 1}, Stride{2, 2}, 3, 3},
		{"stride2_pad_h_only", Padding{1, 0}, Stride{2, 2}, 3, 2},
		{"stride_h_only_pad1", Padding{1, 1}, Stride{2, 1}, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hOut, wOut, err := Conv2DOutputSize(5, 5, 3, 3, tt.padding, tt.stride)
			require.NoError(t, err)
			assert.Equal(t, tt.hOut, hOut)
			assert.Equal(t, tt.wOut, wOut)
		})
	}
}

func TestConv2DOutputSize_ValidReducesToClassic(t *testing.T) {
	for h := 1; h <= 9; h++ {
		for k := 1; k <= h; k++ {
			hOut, wOut, err := Conv2DOutputSize(h, h+1, k, k, NoPadding, UnitStride)
			require.NoError(t, err)
			assert.Equal(t, h-k+1, hOut)
			assert.Equal(t, h+1-k+1, wOut)
		}
	}
}

func TestConv2DOutputSize_InvalidStride(t *testing.T) {
	tests := []struct {
		name    string
		h, w    int
		kh, kw  int
		padding Padding
		stride  Stride
	}{
		{"height_remainder", 5, 5, 3, 3, NoPadding, Stride{3, 1}},
		{"width_remainder", 5, 6, 3, 3, NoPadding, Stride{1, 2}},
		{"padded_remainder", 5, 5, 2, 2, Padding{1, 1}, Stride{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Conv2DOutputSize(tt.h, tt.w, tt.kh, tt.kw, tt.padding, tt.stride)
			require.ErrorIs(t, err, ErrInvalidStride)
			assert.NotErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestConv2DOutputSize_InvalidParameter(t *testing.T) {
	tests := []struct {
		name    string
		kh, kw  int
		padding Padding
		stride  Stride
	}{
		{"zero_stride", 3, 3, NoPadding, Stride{0, 1}},
		{"negative_stride", 3, 3, NoPadding, Stride{1, -2}},
		{"negative_padding", 3, 3, Padding{-1, 0}, UnitStride},
		{"zero_kernel", 0, 3, NoPadding, UnitStride},
		{"kernel_larger_than_input", 6, 3, NoPadding, UnitStride},
		{"kernel_larger_than_padded_input", 3, 8, Padding{0, 1}, UnitStride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Conv2DOutputSize(5, 5, tt.kh, tt.kw, tt.padding, tt.stride)
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestConv2DOutputSize_PaddingMakesLargeKernelValid(t *testing.T) {
	// A 7x7 kernel fits a 5x5 plane once it is padded by 1.
	hOut, wOut, err := Conv2DOutputSize(5, 5, 7, 7, Padding{1, 1}, UnitStride)
	require.NoError(t, err)
	assert.Equal(t, 1, hOut)
	assert.Equal(t, 1, wOut)
}

func TestErrorMessages(t *testing.T) {
	_, _, err := Conv2DOutputSize(5, 5, 3, 3, NoPadding, Stride{3, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conv2d:")
	assert.Contains(t, err.Error(), "invalid stride")
}
