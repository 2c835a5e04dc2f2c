// Package cpu implements the dense and convolution layer kernels on the CPU.
//
// Every kernel is a pure function of its inputs: it validates shapes and
// parameters up front, allocates its outputs, and never writes into its
// arguments. The backend value only carries immutable execution settings.
package cpu

import (
	"fmt"

	"github.com/born-ml/kernels/internal/parallel"
)

// CPUBackend runs the layer kernels on the CPU.
type CPUBackend struct {
	parallel parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithParallel sets the fan-out used by the convolution sweeps.
// Use parallel.Sequential() to keep every kernel on the calling goroutine.
func WithParallel(cfg parallel.Config) Option {
	return func(cpu *CPUBackend) {
		cpu.parallel = cfg
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		parallel: parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Parallel returns the backend's parallel execution settings.
func (cpu *CPUBackend) Parallel() parallel.Config {
	return cpu.parallel
}

// String describes the backend and its fan-out.
func (cpu *CPUBackend) String() string {
	if !cpu.parallel.Enabled {
		return "CPU(sequential)"
	}
	return fmt.Sprintf("CPU(workers=%d)", cpu.parallel.NumWorkers)
}
