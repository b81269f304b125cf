package halftone

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution is returned when no gamma in the search interval yields at
	// least the requested ink count.
	ErrNoSolution = errors.New("no gamma produces an image dark enough")
	// ErrInvalidIterations is returned for an iteration cap below 1.
	ErrInvalidIterations = errors.New("iteration cap must be at least 1")
)

const (
	defaultLowGamma      = 0.0
	defaultHighGamma     = 100.0
	defaultInitialGamma  = 1.0
	defaultMaxIterations = 64
)

// Solution is the outcome of a gamma search.
type Solution struct {
	Gamma      float64
	InkCount   uint64
	Target     uint64
	Iterations int
	// Exact is set when InkCount equals Target.
	Exact bool
}

// Error is the number of ink cells beyond the target.
func (s Solution) Error() uint64 { return s.InkCount - s.Target }

type solveOptions struct {
	low, high     float64
	initial       float64
	maxIterations int
}

// SolveOption tunes Solve.
type SolveOption func(o *solveOptions)

// WithMaxIterations caps the number of full scans.
func WithMaxIterations(n int) SolveOption {
	return func(o *solveOptions) { o.maxIterations = n }
}

// WithBounds sets the open gamma interval to search.
func WithBounds(low, high float64) SolveOption {
	return func(o *solveOptions) { o.low, o.high = low, high }
}

// WithInitialGamma sets the first probe.
func WithInitialGamma(g float64) SolveOption {
	return func(o *solveOptions) { o.initial = g }
}

// CountInk returns the total ink a synthesis of src with the given grid size
// and gamma would produce, without building the grid.
func CountInk(src PixelSource, gridSize int, gamma float64) uint64 {
	curve := Power(gamma)
	area := uint32(gridSize * gridSize)
	var total uint64
	for p := range src.Pixels() {
		total += uint64(inkFor(p, curve, area))
	}
	return total
}

// Solve bisects the gamma exponent so that the ink count of src comes as close
// as possible to target without falling below it. The search relies on the ink
// count being non-increasing in gamma, which holds for the v^gamma curve on
// [0, 1]; it is not meant for other curve families.
//
// The search stops on an exact hit, when the interval has collapsed to float
// precision, or after the iteration cap. If no probe ever reached the target,
// ErrNoSolution is returned.
func Solve(src PixelSource, gridSize int, target uint64, opts ...SolveOption) (Solution, error) {
	if err := validateGridSize(gridSize); err != nil {
		return Solution{}, err
	}
	o := solveOptions{
		low:           defaultLowGamma,
		high:          defaultHighGamma,
		initial:       defaultInitialGamma,
		maxIterations: defaultMaxIterations,
	}
	for _, apply := range opts {
		apply(&o)
	}
	if !(o.low < o.initial && o.initial < o.high) {
		return Solution{}, fmt.Errorf("%w: initial %v outside (%v, %v)", ErrInvalidGamma, o.initial, o.low, o.high)
	}
	if o.maxIterations < 1 {
		return Solution{}, fmt.Errorf("%w: got %d", ErrInvalidIterations, o.maxIterations)
	}

	low, high, gamma := o.low, o.high, o.initial
	var (
		best  Solution
		found bool
		i     int
	)
	for i = 1; i <= o.maxIterations; i++ {
		count := CountInk(src, gridSize, gamma)
		logger().Debug("gamma probe", "iteration", i, "gamma", gamma, "ink", count, "target", target)

		switch {
		case count == target:
			return Solution{Gamma: gamma, InkCount: count, Target: target, Iterations: i, Exact: true}, nil
		case count > target:
			best = Solution{Gamma: gamma, InkCount: count, Target: target}
			found = true
			low = gamma
		default:
			high = gamma
		}

		next := (low + high) / 2
		if next == low || next == high {
			break
		}
		gamma = next
	}

	if !found {
		return Solution{}, fmt.Errorf("%w: target %d ink cells", ErrNoSolution, target)
	}
	best.Iterations = min(i, o.maxIterations)
	return best, nil
}
