// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/kernels/internal/backend/cpu"
	"github.com/born-ml/kernels/internal/tensor"
)

// Backend is implemented by every kernel provider.
type Backend interface {
	DenseForward(z, w, b *tensor.Tensor) (*tensor.Tensor, error)
	DenseBackward(nextDz, w, z *tensor.Tensor) (*DenseGrads, error)
	Conv2DSingle(plane, kernel *tensor.Tensor, bias float64, padding Padding, stride Stride) (*tensor.Tensor, error)
	Conv2D(z, kernel, bias *tensor.Tensor, padding Padding, stride Stride) (*tensor.Tensor, error)
	Conv2DBackward(nextDz, kernel, z *tensor.Tensor, padding Padding, stride Stride) (*Conv2DGrads, error)
}

// Padding is symmetric zero padding per spatial axis.
type Padding = cpu.Padding

// Stride is the sliding-window step per spatial axis.
type Stride = cpu.Stride

// DenseGrads holds dW, db and dz of a dense layer.
type DenseGrads = cpu.DenseGrads

// Conv2DGrads holds dK, db and dz of a convolution layer.
type Conv2DGrads = cpu.Conv2DGrads

// Common configurations.
var (
	NoPadding  = cpu.NoPadding
	UnitStride = cpu.UnitStride
)

// Errors returned by the kernels. Match with errors.Is.
var (
	ErrShapeMismatch    = cpu.ErrShapeMismatch
	ErrInvalidStride    = cpu.ErrInvalidStride
	ErrInvalidParameter = cpu.ErrInvalidParameter
)

// Dense layer

// DenseForward computes z @ W + b.
//
// Example:
//
//	backend := cpu.New()
//	y, err := nn.DenseForward(backend, z, w, b) // [N, in] -> [N, out]
func DenseForward(backend Backend, z, w, b *tensor.Tensor) (*tensor.Tensor, error) {
	return backend.DenseForward(z, w, b)
}

// DenseBackward computes the gradients of DenseForward given the upstream
// gradient nextDz, the weights and the forward input z.
func DenseBackward(backend Backend, nextDz, w, z *tensor.Tensor) (*DenseGrads, error) {
	return backend.DenseBackward(nextDz, w, z)
}

// Convolution layer

// Conv2DSingle cross-correlates one (H, W) plane with one (k1, k2) kernel
// and adds a scalar bias.
func Conv2DSingle(backend Backend, plane, kernel *tensor.Tensor, bias float64, padding Padding, stride Stride) (*tensor.Tensor, error) {
	return backend.Conv2DSingle(plane, kernel, bias, padding, stride)
}

// Conv2D runs the multi-channel, batched cross-correlation.
//
// Example:
//
//	backend := cpu.New()
//	out, err := nn.Conv2D(backend, z, k, b, nn.NoPadding, nn.UnitStride)
//	// z: [8, 16, 5, 5], k: [16, 32, 3, 3], b: [32] -> out: [8, 32, 3, 3]
func Conv2D(backend Backend, z, kernel, bias *tensor.Tensor, padding Padding, stride Stride) (*tensor.Tensor, error) {
	return backend.Conv2D(z, kernel, bias, padding, stride)
}

// Conv2DBackward computes the gradients of Conv2D.
func Conv2DBackward(backend Backend, nextDz, kernel, z *tensor.Tensor, padding Padding, stride Stride) (*Conv2DGrads, error) {
	return backend.Conv2DBackward(nextDz, kernel, z, padding, stride)
}

// Conv2DOutputSize returns the output spatial size of a convolution, or the
// error the kernels would report for the configuration.
func Conv2DOutputSize(h, w, kh, kw int, padding Padding, stride Stride) (hOut, wOut int, err error) {
	return cpu.Conv2DOutputSize(h, w, kh, kw, padding, stride)
}
