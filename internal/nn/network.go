package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/bnn/internal/matrix"
	"github.com/born-ml/bnn/internal/optim"
)

// Config holds configuration for a Network.
type Config[T matrix.Float] struct {
	Sizes      []int         // Layer widths, input first; at least two entries
	Inner      Activation[T] // Hidden-layer activation (default: Sigmoid)
	Outer      Activation[T] // Output-layer activation (default: Sigmoid)
	LR         float64       // Learning rate α (0 means default: 0.01)
	Momentum   float64       // Momentum decay (0 means default: 0.9; momentum cannot be disabled)
	InitStdDev float64       // Std-dev of initial weights (0 means default: 0.3)
	Source     rand.Source   // Entropy for weight init (default: fixed-seed PCG)
}

// Network is a fully-connected feed-forward network.
//
// Layer i is a [Sizes[i], 1] column vector. Boundary i (between layer i and
// layer i+1) owns a [Sizes[i], Sizes[i+1]] weight matrix, a [Sizes[i+1], 1]
// bias, the pre-activation cache z_i, and momentum buffers shaped like the
// weight and bias. All of them are allocated once in New and keep their
// shapes for the life of the network.
//
// A Network is used in place through its pointer and must not be copied.
// It is not safe for concurrent use.
//
// Example:
//
//	net, err := nn.New(nn.Config[float64]{
//	    Sizes: []int{5, 8, 5},
//	    Inner: nn.Sigmoid[float64](),
//	    Outer: nn.Sigmoid[float64](),
//	    LR:    0.01,
//	})
//	meanErr, err := net.Learn(inputs, targets)
type Network[T matrix.Float] struct {
	noCopy noCopy

	sizes  []int
	layers []*matrix.Dense[T] // len(sizes)

	// Indexed by boundary, len(sizes)-1 each.
	weights  []*matrix.Dense[T]
	biases   []*matrix.Dense[T]
	z        []*matrix.Dense[T]
	vWeights []*matrix.Dense[T]
	vBiases  []*matrix.Dense[T]

	inner, outer Activation[T]
	opt          *optim.SGD[T]

	// forwarded is set by Forward and cleared by Backward.
	forwarded bool
}

// New allocates a network and initializes its parameters.
//
// Weights are drawn from N(0, InitStdDev²) using config.Source, biases start
// at zero, and both momentum buffers start as copies of the initial weights
// and biases.
func New[T matrix.Float](config Config[T]) (*Network[T], error) {
	if len(config.Sizes) < 2 {
		return nil, fmt.Errorf("%d layers: %w", len(config.Sizes), ErrLayerCount)
	}
	for i, s := range config.Sizes {
		if s <= 0 {
			return nil, fmt.Errorf("layer %d has width %d: %w", i, s, ErrLayerSize)
		}
	}
	if !config.Inner.valid() {
		config.Inner = Sigmoid[T]()
	}
	if !config.Outer.valid() {
		config.Outer = Sigmoid[T]()
	}
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	if config.Momentum == 0 {
		config.Momentum = DefaultMomentum
	}
	if config.InitStdDev == 0 {
		config.InitStdDev = DefaultInitStdDev
	}
	if config.Source == nil {
		config.Source = rand.NewPCG(defaultSeed1, defaultSeed2)
	}

	n := len(config.Sizes)
	net := &Network[T]{
		sizes:    append([]int(nil), config.Sizes...),
		layers:   make([]*matrix.Dense[T], n),
		weights:  make([]*matrix.Dense[T], n-1),
		biases:   make([]*matrix.Dense[T], n-1),
		z:        make([]*matrix.Dense[T], n-1),
		vWeights: make([]*matrix.Dense[T], n-1),
		vBiases:  make([]*matrix.Dense[T], n-1),
		inner:    config.Inner,
		outer:    config.Outer,
		opt: optim.NewSGD[T](optim.Config{
			LR:       config.LR,
			Momentum: config.Momentum,
		}),
	}

	for i, s := range net.sizes {
		net.layers[i] = matrix.Zeros[T](s, 1)
	}
	for i := 0; i < n-1; i++ {
		net.weights[i] = initWeights(net.sizes[i], net.sizes[i+1], config.Source, T(config.InitStdDev))
		net.biases[i] = initBias[T](net.sizes[i+1])
		net.z[i] = matrix.Zeros[T](net.sizes[i+1], 1)
		net.vWeights[i] = net.weights[i].Clone()
		net.vBiases[i] = net.biases[i].Clone()
	}

	return net, nil
}

// checkVector verifies that m is a [width, 1] column vector.
func checkVector[T matrix.Float](what string, m *matrix.Dense[T], width int) error {
	if m == nil || m.Rows() != width || m.Cols() != 1 {
		rows, cols := 0, 0
		if m != nil {
			rows, cols = m.Dims()
		}
		return fmt.Errorf("%s is %dx%d, want %dx1: %w", what, rows, cols, width, ErrShapeMismatch)
	}
	return nil
}

// apply runs an activation and verifies it preserved the shape of z.
func apply[T matrix.Float](f Func[T], z *matrix.Dense[T]) (*matrix.Dense[T], error) {
	out := f(z)
	if out == nil || out.Rows() != z.Rows() || out.Cols() != z.Cols() {
		return nil, ErrActivationShape
	}
	return out, nil
}

// preActivation computes z_i = weight_iᵗ · layer_i + bias_i into the cache.
func (n *Network[T]) preActivation(i int) *matrix.Dense[T] {
	z := n.weights[i].Transposed().Mul(n.layers[i]).AddInPlace(n.biases[i])
	n.z[i].CopyFrom(z)
	return n.z[i]
}

// Forward propagates input through the network, updating every layer
// activation and pre-activation cache. input must be [Sizes[0], 1]; it is
// copied, not retained.
func (n *Network[T]) Forward(input *matrix.Dense[T]) error {
	if err := checkVector("forward: input", input, n.sizes[0]); err != nil {
		return err
	}
	n.layers[0].CopyFrom(input)
	n.forwarded = false

	last := len(n.sizes) - 2
	for i := 0; i <= last; i++ {
		act := n.inner.F
		if i == last {
			act = n.outer.F
		}
		out, err := apply(act, n.preActivation(i))
		if err != nil {
			return fmt.Errorf("forward: layer %d: %w", i+1, err)
		}
		n.layers[i+1].CopyFrom(out)
	}

	n.forwarded = true
	return nil
}

// Result returns the output layer from the most recent Forward.
// The matrix is owned by the network and must not be modified.
func (n *Network[T]) Result() *matrix.Dense[T] {
	return n.layers[len(n.layers)-1]
}

// Predict runs Forward and returns a copy of the output layer.
func (n *Network[T]) Predict(input *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := n.Forward(input); err != nil {
		return nil, err
	}
	return n.Result().Clone(), nil
}

// Error returns the loss of the current output against target:
//
//	Σ_i (t_i − 1)·ln(1 − y_i) − t_i·ln(y_i)
//
// where y is the output layer. Predictions are clamped to [1e-7, 1−1e-7].
func (n *Network[T]) Error(target *matrix.Dense[T]) (T, error) {
	if err := checkVector("error: target", target, n.sizes[len(n.sizes)-1]); err != nil {
		return 0, err
	}
	return crossEntropy(n.Result(), target), nil
}

// DError returns the derivative of Error with respect to the output layer:
// (y − t) / (y·(1 − y)).
func (n *Network[T]) DError(target *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := checkVector("derror: target", target, n.sizes[len(n.sizes)-1]); err != nil {
		return nil, err
	}
	return crossEntropyGrad(n.Result(), target), nil
}

// Backward performs one momentum gradient-descent step towards target using
// the state left by the preceding Forward.
//
// For each boundary i from the output down to 0:
//
//	vW_i = momentum·vW_i + layer_i·deltaᵗ;  W_i -= lr·vW_i
//	vb_i = momentum·vb_i + delta;           b_i -= lr·vb_i
//	delta = (W_i·delta) ⊙ inner'(z_{i−1})   (for i > 0)
//
// The recurrence propagates delta through W_i after its update, not before.
//
// Returns ErrStaleState if no Forward ran since the last Backward. A failed
// Backward leaves every parameter unchanged and also consumes the forward
// state.
func (n *Network[T]) Backward(target *matrix.Dense[T]) error {
	if !n.forwarded {
		return ErrStaleState
	}
	// Any exit consumes the forward state, so a failed call cannot be retried
	// against the same activations.
	defer func() { n.forwarded = false }()

	derr, err := n.DError(target)
	if err != nil {
		return fmt.Errorf("backward: %w", err)
	}

	last := len(n.sizes) - 2
	dOuter, err := apply(n.outer.D, n.z[last])
	if err != nil {
		return fmt.Errorf("backward: output derivative: %w", err)
	}

	// Derivatives depend only on the cached z, so all of them are computed
	// and shape-checked before any parameter changes.
	dInner := make([]*matrix.Dense[T], last)
	for i := range dInner {
		if dInner[i], err = apply(n.inner.D, n.z[i]); err != nil {
			return fmt.Errorf("backward: layer %d derivative: %w", i+1, err)
		}
	}

	delta := derr.HadamardInPlace(dOuter)
	for i := last; i >= 0; i-- {
		n.opt.Update(n.weights[i], n.vWeights[i], n.layers[i].Mul(delta.Transposed()))
		n.opt.Update(n.biases[i], n.vBiases[i], delta)
		if i > 0 {
			delta = n.weights[i].Mul(delta).HadamardInPlace(dInner[i-1])
		}
	}
	return nil
}

// Learn trains on each (inputs[k], targets[k]) pair in order, running
// Forward then Backward per case, and returns the mean Error over the cases
// as measured before each update.
//
// Training stops at the first malformed case; parameters updated by earlier
// cases keep their new values.
func (n *Network[T]) Learn(inputs, targets []*matrix.Dense[T]) (T, error) {
	if len(inputs) == 0 || len(inputs) != len(targets) {
		return 0, fmt.Errorf("%d inputs, %d targets: %w", len(inputs), len(targets), ErrCaseCount)
	}

	var sum T
	for k := range inputs {
		if err := n.Forward(inputs[k]); err != nil {
			return 0, fmt.Errorf("case %d: %w", k, err)
		}
		e, err := n.Error(targets[k])
		if err != nil {
			return 0, fmt.Errorf("case %d: %w", k, err)
		}
		if err := n.Backward(targets[k]); err != nil {
			return 0, fmt.Errorf("case %d: %w", k, err)
		}
		sum += e
	}
	return sum / T(len(inputs)), nil
}

// Sizes returns a copy of the layer widths.
func (n *Network[T]) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Weights returns the weight matrix of boundary i. The matrix is owned by
// the network and must not be modified.
func (n *Network[T]) Weights(i int) *matrix.Dense[T] {
	return n.weights[i]
}

// Bias returns the bias vector of boundary i. The matrix is owned by the
// network and must not be modified.
func (n *Network[T]) Bias(i int) *matrix.Dense[T] {
	return n.biases[i]
}

// LR returns the learning rate.
func (n *Network[T]) LR() T {
	return n.opt.GetLR()
}

// SetLR updates the learning rate used by subsequent Backward calls.
func (n *Network[T]) SetLR(lr T) {
	n.opt.SetLR(lr)
}
