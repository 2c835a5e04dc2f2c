// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/kernels/internal/backend/cpu"
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/nn"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements nn.Backend.
var _ nn.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option = internalcpu.Option

// ParallelConfig controls how the convolution sweeps fan out.
type ParallelConfig = parallel.Config

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	y, err := nn.DenseForward(backend, z, w, b)
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithParallel sets the fan-out of the convolution sweeps.
func WithParallel(cfg ParallelConfig) Option {
	return internalcpu.WithParallel(cfg)
}

// DefaultParallel returns the fan-out New uses: one worker per CPU.
func DefaultParallel() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential returns a configuration that keeps every kernel on the
// calling goroutine.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}
