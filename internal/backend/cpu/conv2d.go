package cpu

import (
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
)

// Conv2DSingle cross-correlates one 2D plane with one 2D kernel and adds a
// scalar bias. The kernel is not flipped.
//
// Shapes:
//   - plane:  [H, W]
//   - kernel: [K_h, K_w]
//   - output: [H_out, W_out], see Conv2DOutputSize
//
// The plane is zero padded symmetrically, then the window slides from the
// top-left corner in steps of stride. Window (h, w) lands at output
// (h/stride.H, w/stride.W).
func (cpu *CPUBackend) Conv2DSingle(plane, kernel *tensor.Tensor, bias float64, padding Padding, stride Stride) (*tensor.Tensor, error) {
	const op = "conv2d"

	if err := expectRank(op, "plane", plane, 2); err != nil {
		return nil, err
	}
	if err := expectRank(op, "kernel", kernel, 2); err != nil {
		return nil, err
	}

	H, W := plane.Shape()[0], plane.Shape()[1]
	KH, KW := kernel.Shape()[0], kernel.Shape()[1]

	HOut, WOut, err := Conv2DOutputSize(H, W, KH, KW, padding, stride)
	if err != nil {
		return nil, err
	}

	padded, err := plane.Pad2D(padding.H, padding.W)
	if err != nil {
		return nil, err
	}
	output, err := tensor.New(tensor.Shape{HOut, WOut})
	if err != nil {
		return nil, err
	}

	paddedData := padded.Data()
	kernelData := kernel.Data()
	outputData := output.Data()
	WP := W + 2*padding.W

	for outH := 0; outH < HOut; outH++ {
		for outW := 0; outW < WOut; outW++ {
			sum := windowSum(paddedData, WP, outH*stride.H, outW*stride.W, kernelData, KH, KW)
			outputData[outH*WOut+outW] = sum + bias
		}
	}

	return output, nil
}

// Conv2D performs a multi-channel, batched 2D cross-correlation.
//
// Input shape:  [batch, in_channels, height, width]
// Kernel shape: [in_channels, out_channels, kernel_h, kernel_w]
// Bias shape:   [out_channels]
// Output shape: [batch, out_channels, out_h, out_w]
//
// For each (n, d):
//
//	out[n, d] = sum_c correlate(z[n, c], K[c, d]) + b[d]
//
// Each output element is reduced in a fixed order: the kernel window
// row-major, then input channels ascending, then the bias once. The
// (batch, out_channel) pairs are independent and may run in parallel,
// which never changes the result.
//
// The whole batch is padded once before the sweep and the output is
// allocated up front.
func (cpu *CPUBackend) Conv2D(z, kernel, bias *tensor.Tensor, padding Padding, stride Stride) (*tensor.Tensor, error) {
	const op = "conv2d"

	if err := expectRank(op, "input", z, 4); err != nil {
		return nil, err
	}
	if err := expectRank(op, "kernel", kernel, 4); err != nil {
		return nil, err
	}
	if err := expectRank(op, "bias", bias, 1); err != nil {
		return nil, err
	}

	inputShape := z.Shape()
	kernelShape := kernel.Shape()

	N := inputShape[0]     // batch size
	CIn := inputShape[1]   // input channels
	H := inputShape[2]     // input height
	W := inputShape[3]     // input width
	CInK := kernelShape[0] // kernel input channels (must match CIn)
	COut := kernelShape[1] // output channels
	KH := kernelShape[2]   // kernel height
	KW := kernelShape[3]   // kernel width

	if CIn != CInK {
		return nil, shapeMismatch(op, "input channels %d != kernel input channels %d", CIn, CInK)
	}
	if bias.Shape()[0] != COut {
		return nil, shapeMismatch(op, "bias length %d != output channels %d", bias.Shape()[0], COut)
	}

	HOut, WOut, err := Conv2DOutputSize(H, W, KH, KW, padding, stride)
	if err != nil {
		return nil, err
	}

	padded, err := z.Pad2D(padding.H, padding.W)
	if err != nil {
		return nil, err
	}
	output, err := tensor.New(tensor.Shape{N, COut, HOut, WOut})
	if err != nil {
		return nil, err
	}

	paddedData := padded.Data()
	kernelData := kernel.Data()
	biasData := bias.Data()
	outputData := output.Data()

	HP, WP := H+2*padding.H, W+2*padding.W
	planeSize := HP * WP
	kernelSize := KH * KW
	outSize := HOut * WOut

	parallel.For2D(N, COut, func(n, d int) {
		// Output plane [n, d] is owned by this iteration only.
		dst := outputData[(n*COut+d)*outSize : (n*COut+d+1)*outSize]
		batch := paddedData[n*CIn*planeSize : (n+1)*CIn*planeSize]

		for outH := 0; outH < HOut; outH++ {
			for outW := 0; outW < WOut; outW++ {
				acc := 0.0
				for c := 0; c < CIn; c++ {
					src := batch[c*planeSize : (c+1)*planeSize]
					k := kernelData[(c*COut+d)*kernelSize : (c*COut+d+1)*kernelSize]
					acc += windowSum(src, WP, outH*stride.H, outW*stride.W, k, KH, KW)
				}
				dst[outH*WOut+outW] = acc + biasData[d]
			}
		}
	}, cpu.parallel)

	return output, nil
}

// windowSum returns the sum of products of the kh x kw window of src whose
// top-left corner is (h0, w0) with kernel k. src is a row-major plane of
// width srcW. Products are accumulated row-major starting from zero.
func windowSum(src []float64, srcW, h0, w0 int, k []float64, kh, kw int) float64 {
	sum := 0.0
	for i := 0; i < kh; i++ {
		start := (h0+i)*srcW + w0
		row := src[start : start+kw]
		kRow := k[i*kw : (i+1)*kw]
		for j, v := range kRow {
			sum += row[j] * v
		}
	}
	return sum
}
