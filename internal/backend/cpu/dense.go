package cpu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/kernels/internal/tensor"
)

// DenseGrads holds the gradients of a dense layer.
type DenseGrads struct {
	DW *tensor.Tensor // [in_features, out_features]
	DB *tensor.Tensor // [out_features]
	DZ *tensor.Tensor // [batch, in_features]
}

// DenseForward computes the affine transform of a fully connected layer.
//
//	y = z @ W + b
//
// Shapes:
//   - z: [batch, in_features]
//   - W: [in_features, out_features]
//   - b: [out_features], added to every row
//   - y: [batch, out_features]
func (cpu *CPUBackend) DenseForward(z, w, b *tensor.Tensor) (*tensor.Tensor, error) {
	const op = "dense forward"

	if err := expectRank(op, "input", z, 2); err != nil {
		return nil, err
	}
	if err := expectRank(op, "weight", w, 2); err != nil {
		return nil, err
	}
	if err := expectRank(op, "bias", b, 1); err != nil {
		return nil, err
	}

	n, in := z.Shape()[0], z.Shape()[1]
	inW, out := w.Shape()[0], w.Shape()[1]
	if in != inW {
		return nil, shapeMismatch(op, "input features %d != weight rows %d", in, inW)
	}
	if b.Shape()[0] != out {
		return nil, shapeMismatch(op, "bias length %d != output features %d", b.Shape()[0], out)
	}

	y, err := tensor.New(tensor.Shape{n, out})
	if err != nil {
		return nil, err
	}

	mat.NewDense(n, out, y.Data()).Mul(denseView(z), denseView(w))

	bias := b.Data()
	data := y.Data()
	for i := 0; i < n; i++ {
		row := data[i*out : (i+1)*out]
		for j := range row {
			row[j] += bias[j]
		}
	}

	return y, nil
}

// DenseBackward computes the analytic gradients of DenseForward.
//
//	dW = z.T @ nextDz
//	db = sum of nextDz over the batch axis
//	dz = nextDz @ W.T
//
// db is reduced sequentially over the batch in index order so repeated calls
// are bit-identical.
func (cpu *CPUBackend) DenseBackward(nextDz, w, z *tensor.Tensor) (*DenseGrads, error) {
	const op = "dense backward"

	if err := expectRank(op, "upstream gradient", nextDz, 2); err != nil {
		return nil, err
	}
	if err := expectRank(op, "weight", w, 2); err != nil {
		return nil, err
	}
	if err := expectRank(op, "input", z, 2); err != nil {
		return nil, err
	}

	n, in := z.Shape()[0], z.Shape()[1]
	inW, out := w.Shape()[0], w.Shape()[1]
	nG, outG := nextDz.Shape()[0], nextDz.Shape()[1]
	if in != inW {
		return nil, shapeMismatch(op, "input features %d != weight rows %d", in, inW)
	}
	if nG != n {
		return nil, shapeMismatch(op, "upstream gradient batch %d != input batch %d", nG, n)
	}
	if outG != out {
		return nil, shapeMismatch(op, "upstream gradient features %d != weight columns %d", outG, out)
	}

	dw, err := tensor.New(tensor.Shape{in, out})
	if err != nil {
		return nil, err
	}
	db, err := tensor.New(tensor.Shape{out})
	if err != nil {
		return nil, err
	}
	dz, err := tensor.New(tensor.Shape{n, in})
	if err != nil {
		return nil, err
	}

	zMat, wMat, gMat := denseView(z), denseView(w), denseView(nextDz)

	mat.NewDense(in, out, dw.Data()).Mul(zMat.T(), gMat)
	mat.NewDense(n, in, dz.Data()).Mul(gMat, wMat.T())

	grad := nextDz.Data()
	sum := db.Data()
	for i := 0; i < n; i++ {
		row := grad[i*out : (i+1)*out]
		for j, v := range row {
			sum[j] += v
		}
	}

	return &DenseGrads{DW: dw, DB: db, DZ: dz}, nil
}

// denseView wraps a 2D tensor's storage as a gonum matrix without copying.
// Callers only read through it.
func denseView(t *tensor.Tensor) *mat.Dense {
	s := t.Shape()
	return mat.NewDense(s[0], s[1], t.Data())
}

func expectRank(op, name string, t *tensor.Tensor, rank int) error {
	if t == nil {
		return shapeMismatch(op, "%s is nil", name)
	}
	if t.Rank() != rank {
		return shapeMismatch(op, "%s must be %dD, got shape %v", name, rank, t.Shape())
	}
	return nil
}
