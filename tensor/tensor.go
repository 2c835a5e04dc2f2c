// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/kernels/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{8, 16, 5, 5} is a batch of 8 inputs with 16 channels of 5×5.
type Shape = tensor.Shape

// Tensor is a dense row-major float64 array with shape metadata.
type Tensor = tensor.Tensor

// New creates a zero-filled tensor, or returns an error for an invalid shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor from a Go slice. The data is copied.
//
// Example:
//
//	w, err := tensor.FromSlice([]float64{1, 0, 0, 1}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros. Panics on an invalid shape.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones. Panics on an invalid shape.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value. Panics on an invalid shape.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Randn creates a tensor with standard normal values drawn from rng.
//
// Example:
//
//	x := tensor.Randn(tensor.Shape{4, 3}, rand.New(rand.NewSource(1)))
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	return tensor.Randn(shape, rng)
}

// Rand creates a tensor with values uniform in [0, 1) drawn from rng.
func Rand(shape Shape, rng *rand.Rand) *Tensor {
	return tensor.Rand(shape, rng)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func Arange(shape Shape) *Tensor {
	return tensor.Arange(shape)
}
