package cpu

// Padding is symmetric zero padding: H rows above and below, W columns
// left and right.
type Padding struct {
	H, W int
}

// Stride is the step of the sliding window along each spatial axis.
type Stride struct {
	H, W int
}

// Common configurations.
var (
	NoPadding  = Padding{0, 0}
	UnitStride = Stride{1, 1}
)

// Conv2DOutputSize computes the output spatial size of a strided, padded
// cross-correlation of an h x w plane with a kh x kw kernel:
//
//	out = 1 + (in + 2*pad - k) / stride
//
// The division must be exact on both axes; a remainder is reported as
// ErrInvalidStride rather than floored.
func Conv2DOutputSize(h, w, kh, kw int, padding Padding, stride Stride) (hOut, wOut int, err error) {
	const op = "conv2d"

	if stride.H <= 0 || stride.W <= 0 {
		return 0, 0, invalidParameter(op, "stride must be positive, got (%d, %d)", stride.H, stride.W)
	}
	if padding.H < 0 || padding.W < 0 {
		return 0, 0, invalidParameter(op, "padding must be non-negative, got (%d, %d)", padding.H, padding.W)
	}
	if kh <= 0 || kw <= 0 {
		return 0, 0, invalidParameter(op, "kernel size must be positive, got (%d, %d)", kh, kw)
	}
	if h <= 0 || w <= 0 {
		return 0, 0, invalidParameter(op, "input size must be positive, got (%d, %d)", h, w)
	}

	hp := h + 2*padding.H
	wp := w + 2*padding.W
	if kh > hp || kw > wp {
		return 0, 0, invalidParameter(op, "kernel (%d, %d) larger than padded input (%d, %d)", kh, kw, hp, wp)
	}

	if (hp-kh)%stride.H != 0 {
		return 0, 0, invalidStride(op, "padded height %d minus kernel height %d not divisible by stride %d", hp, kh, stride.H)
	}
	if (wp-kw)%stride.W != 0 {
		return 0, 0, invalidStride(op, "padded width %d minus kernel width %d not divisible by stride %d", wp, kw, stride.W)
	}

	return 1 + (hp-kh)/stride.H, 1 + (wp-kw)/stride.W, nil
}
