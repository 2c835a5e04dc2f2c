package tensor

import "fmt"

// Pad2D returns a new tensor with symmetric zero padding on the two
// trailing axes: padH rows above and below, padW columns left and right.
// Leading axes are carried over unchanged. The receiver is not modified.
//
// Example:
//
//	x := tensor.Ones(Shape{2, 3, 5, 5})
//	y, _ := x.Pad2D(1, 2) // Shape: (2, 3, 7, 9)
func (t *Tensor) Pad2D(padH, padW int) (*Tensor, error) {
	if len(t.shape) < 2 {
		return nil, fmt.Errorf("pad2d: need at least 2 dimensions, got %d", len(t.shape))
	}
	if padH < 0 || padW < 0 {
		return nil, fmt.Errorf("pad2d: negative padding (%d, %d)", padH, padW)
	}

	rank := len(t.shape)
	h, w := t.shape[rank-2], t.shape[rank-1]
	hp, wp := h+2*padH, w+2*padW

	outShape := t.shape.Clone()
	outShape[rank-2] = hp
	outShape[rank-1] = wp
	out, err := New(outShape)
	if err != nil {
		return nil, err
	}

	if padH == 0 && padW == 0 {
		copy(out.data, t.data)
		return out, nil
	}

	planes := len(t.data) / (h * w)
	for p := 0; p < planes; p++ {
		src := t.data[p*h*w : (p+1)*h*w]
		dst := out.data[p*hp*wp : (p+1)*hp*wp]
		for row := 0; row < h; row++ {
			start := (row+padH)*wp + padW
			copy(dst[start:start+w], src[row*w:(row+1)*w])
		}
	}
	return out, nil
}

// Crop2D is the inverse of Pad2D: it drops padH rows from the top and
// bottom and padW columns from the left and right of the two trailing axes.
func (t *Tensor) Crop2D(padH, padW int) (*Tensor, error) {
	if len(t.shape) < 2 {
		return nil, fmt.Errorf("crop2d: need at least 2 dimensions, got %d", len(t.shape))
	}
	if padH < 0 || padW < 0 {
		return nil, fmt.Errorf("crop2d: negative crop (%d, %d)", padH, padW)
	}

	rank := len(t.shape)
	hp, wp := t.shape[rank-2], t.shape[rank-1]
	h, w := hp-2*padH, wp-2*padW
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("crop2d: crop (%d, %d) leaves nothing of %v", padH, padW, t.shape)
	}

	outShape := t.shape.Clone()
	outShape[rank-2] = h
	outShape[rank-1] = w
	out, err := New(outShape)
	if err != nil {
		return nil, err
	}

	planes := len(t.data) / (hp * wp)
	for p := 0; p < planes; p++ {
		src := t.data[p*hp*wp : (p+1)*hp*wp]
		dst := out.data[p*h*w : (p+1)*h*w]
		for row := 0; row < h; row++ {
			start := (row+padH)*wp + padW
			copy(dst[row*w:(row+1)*w], src[start:start+w])
		}
	}
	return out, nil
}

// Transpose2D returns a new tensor holding the transpose of a 2D tensor.
func (t *Tensor) Transpose2D() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("transpose2d: expected 2D tensor, got shape %v", t.shape)
	}

	rows, cols := t.shape[0], t.shape[1]
	out, err := New(Shape{cols, rows})
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = t.data[i*cols+j]
		}
	}
	return out, nil
}

// Slice returns a copy of the sub-tensor at the given leading indices.
// For a (N, C, H, W) tensor, Slice(n, c) yields the (H, W) plane.
func (t *Tensor) Slice(indices ...int) (*Tensor, error) {
	if len(indices) >= len(t.shape) {
		return nil, fmt.Errorf("slice: %d indices for %dD tensor", len(indices), len(t.shape))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return nil, fmt.Errorf("slice: index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i])
		}
		offset += idx * t.stride[i]
	}

	subShape := t.shape[len(indices):]
	n := subShape.NumElements()
	return FromSlice(t.data[offset:offset+n], subShape)
}
