// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 tensors consumed and produced by
// the layer kernels.
//
// # Overview
//
// A Tensor is a row-major []float64 with a Shape. Kernels treat tensors as
// immutable values: they never write into their arguments and always
// allocate their results.
//
// # Basic Usage
//
//	import "github.com/born-ml/kernels/tensor"
//
//	func main() {
//	    z, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    fmt.Println(z.Shape(), z.At(1, 2)) // (2, 3) 6
//
//	    padded, _ := z.Pad2D(1, 1) // (4, 5), zero border
//	    _ = padded
//	}
//
// # Layout
//
// Dense activations are (batch, features); convolution activations are
// (batch, channels, height, width); convolution kernels are
// (in_channels, out_channels, kernel_h, kernel_w).
package tensor
