package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
)

// gradTolerance bounds the gap between analytic gradients and central
// finite differences. The losses checked are linear in each argument, so the
// gap is pure rounding.
const gradTolerance = 1e-6

func sequentialBackend() *CPUBackend {
	return New(WithParallel(parallel.Sequential()))
}

// parallelBackend forces fan-out even for tiny sweeps.
func parallelBackend() *CPUBackend {
	return New(WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}))
}

func fromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return x
}

func randn(seed int64, shape tensor.Shape) *tensor.Tensor {
	return tensor.Randn(shape, rand.New(rand.NewSource(seed)))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// numericGrad returns the central-difference gradient of loss with respect
// to x, where loss receives a tensor of x's shape.
func numericGrad(t *testing.T, x *tensor.Tensor, loss func(*tensor.Tensor) float64) []float64 {
	t.Helper()
	return fd.Gradient(nil, func(v []float64) float64 {
		return loss(fromSlice(t, v, x.Shape()))
	}, x.Data(), &fd.Settings{Formula: fd.Central, Step: 1e-5})
}
