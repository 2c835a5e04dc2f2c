// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the forward and backward kernels of the dense and 2D
// convolution layers.
//
// # Overview
//
// This package contains:
//   - Dense: DenseForward, DenseBackward
//   - Convolution: Conv2DSingle, Conv2D, Conv2DBackward, Conv2DOutputSize
//   - Errors: ErrShapeMismatch, ErrInvalidStride, ErrInvalidParameter
//
// The kernels are pure functions. There is no layer object, no autograd
// graph and no optimizer; callers pass prepared tensors and receive fresh
// ones.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kernels/backend/cpu"
//	    "github.com/born-ml/kernels/nn"
//	    "github.com/born-ml/kernels/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    y, err := nn.DenseForward(backend, z, w, b)
//	    grads, err := nn.DenseBackward(backend, nextDz, w, z)
//
//	    out, err := nn.Conv2D(backend, x, k, bias, nn.Padding{H: 1, W: 1}, nn.Stride{H: 2, W: 2})
//	}
//
// # Convolution
//
// Convolution here is cross-correlation: the kernel is not flipped. The
// output size per spatial axis is
//
//	1 + (in + 2*pad - k) / stride
//
// and the division must be exact. Configurations that leave a remainder fail
// with ErrInvalidStride instead of dropping the last partial window.
//
// Each output element is summed in a fixed order (kernel window row-major,
// then input channels, then the bias), so results are reproducible bit for
// bit regardless of parallelism.
package nn
