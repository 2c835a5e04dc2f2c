// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for the layer kernels.
//
// # Overview
//
// This package implements:
//   - Dense forward and backward passes (gonum matrix products)
//   - Direct sliding-window 2D cross-correlation with padding and stride
//   - The analytic convolution backward pass
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kernels/backend/cpu"
//	    "github.com/born-ml/kernels/nn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    out, err := nn.Conv2D(backend, z, k, b, nn.Padding{H: 1, W: 1}, nn.UnitStride)
//	}
//
// # Parallelism
//
// Convolution sweeps fan out over (batch, out_channel) pairs. Every output
// element is reduced in a fixed order by a single goroutine, so parallel and
// sequential runs are bit-identical. Use cpu.New(cpu.WithParallel(cpu.Sequential()))
// to stay on the calling goroutine.
package cpu
