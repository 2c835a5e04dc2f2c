package cpu

import (
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
)

// Conv2DGrads holds the gradients of a Conv2D call.
type Conv2DGrads struct {
	DK *tensor.Tensor // [in_channels, out_channels, kernel_h, kernel_w]
	DB *tensor.Tensor // [out_channels]
	DZ *tensor.Tensor // [batch, in_channels, height, width]
}

// Conv2DBackward computes the analytic gradients of Conv2D.
//
// nextDz is the gradient w.r.t. the Conv2D output and must have exactly the
// shape Conv2D produces for (z, kernel, padding, stride).
//
//	DK[c, d, i, j] = sum_{n,h,w} nextDz[n, d, h, w] * zpad[n, c, h*sH+i, w*sW+j]
//	DB[d]          = sum_{n,h,w} nextDz[n, d, h, w]
//	DZ             = crop(transposed correlation of nextDz with kernel)
//
// DK and DB reduce over the batch, so their sweep runs over (c, d) and d;
// DZ runs over (n, c). Each reduction is sequential inside its iteration.
func (cpu *CPUBackend) Conv2DBackward(nextDz, kernel, z *tensor.Tensor, padding Padding, stride Stride) (*Conv2DGrads, error) {
	const op = "conv2d backward"

	if err := expectRank(op, "upstream gradient", nextDz, 4); err != nil {
		return nil, err
	}
	if err := expectRank(op, "kernel", kernel, 4); err != nil {
		return nil, err
	}
	if err := expectRank(op, "input", z, 4); err != nil {
		return nil, err
	}

	N, CIn, H, W := z.Shape()[0], z.Shape()[1], z.Shape()[2], z.Shape()[3]
	CInK, COut, KH, KW := kernel.Shape()[0], kernel.Shape()[1], kernel.Shape()[2], kernel.Shape()[3]
	if CIn != CInK {
		return nil, shapeMismatch(op, "input channels %d != kernel input channels %d", CIn, CInK)
	}

	HOut, WOut, err := Conv2DOutputSize(H, W, KH, KW, padding, stride)
	if err != nil {
		return nil, err
	}
	if want := (tensor.Shape{N, COut, HOut, WOut}); !nextDz.Shape().Equal(want) {
		return nil, shapeMismatch(op, "upstream gradient shape %v != output shape %v", nextDz.Shape(), want)
	}

	padded, err := z.Pad2D(padding.H, padding.W)
	if err != nil {
		return nil, err
	}

	dk, err := tensor.New(tensor.Shape{CIn, COut, KH, KW})
	if err != nil {
		return nil, err
	}
	db, err := tensor.New(tensor.Shape{COut})
	if err != nil {
		return nil, err
	}
	dzPadded, err := tensor.New(padded.Shape())
	if err != nil {
		return nil, err
	}

	gradData := nextDz.Data()
	kernelData := kernel.Data()
	paddedData := padded.Data()

	HP, WP := H+2*padding.H, W+2*padding.W
	planeSize := HP * WP
	kernelSize := KH * KW
	outSize := HOut * WOut

	// Kernel gradient: one (c, d) slice per iteration.
	dkData := dk.Data()
	parallel.For2D(CIn, COut, func(c, d int) {
		dst := dkData[(c*COut+d)*kernelSize : (c*COut+d+1)*kernelSize]
		for i := 0; i < KH; i++ {
			for j := 0; j < KW; j++ {
				sum := 0.0
				for n := 0; n < N; n++ {
					src := paddedData[(n*CIn+c)*planeSize : (n*CIn+c+1)*planeSize]
					g := gradData[(n*COut+d)*outSize : (n*COut+d+1)*outSize]
					for outH := 0; outH < HOut; outH++ {
						rowStart := (outH*stride.H+i)*WP + j
						for outW := 0; outW < WOut; outW++ {
							sum += g[outH*WOut+outW] * src[rowStart+outW*stride.W]
						}
					}
				}
				dst[i*KW+j] = sum
			}
		}
	}, cpu.parallel)

	// Bias gradient.
	dbData := db.Data()
	parallel.For(COut, func(d int) {
		sum := 0.0
		for n := 0; n < N; n++ {
			for _, v := range gradData[(n*COut+d)*outSize : (n*COut+d+1)*outSize] {
				sum += v
			}
		}
		dbData[d] = sum
	}, cpu.parallel)

	// Input gradient: scatter into the padded plane owned by (n, c).
	dzData := dzPadded.Data()
	parallel.For2D(N, CIn, func(n, c int) {
		dst := dzData[(n*CIn+c)*planeSize : (n*CIn+c+1)*planeSize]
		for d := 0; d < COut; d++ {
			g := gradData[(n*COut+d)*outSize : (n*COut+d+1)*outSize]
			k := kernelData[(c*COut+d)*kernelSize : (c*COut+d+1)*kernelSize]
			for outH := 0; outH < HOut; outH++ {
				for outW := 0; outW < WOut; outW++ {
					gradVal := g[outH*WOut+outW]
					h0, w0 := outH*stride.H, outW*stride.W
					for i := 0; i < KH; i++ {
						row := dst[(h0+i)*WP+w0 : (h0+i)*WP+w0+KW]
						kRow := k[i*KW : (i+1)*KW]
						for j, kv := range kRow {
							row[j] += gradVal * kv
						}
					}
				}
			}
		}
	}, cpu.parallel)

	dz, err := dzPadded.Crop2D(padding.H, padding.W)
	if err != nil {
		return nil, err
	}

	return &Conv2DGrads{DK: dk, DB: db, DZ: dz}, nil
}
