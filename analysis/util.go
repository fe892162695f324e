package analysis

// IntSqrt computes floor(sqrt(n)) via the Heron/Babylonian iteration,
// grounded on the original source's usize_sqrt (sim/src/utils/mod.rs):
// start at x=n, y=1; iterate x=(x+y)/2, y=n/x until x<=y; return x.
func IntSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x, y := n, 1
	for x > y {
		x = (x + y) / 2
		y = n / x
	}
	return x
}

// ConfidenceInterval is a symmetric interval around a mean estimate.
type ConfidenceInterval struct {
	Mean       float64
	LowerBound float64
	UpperBound float64
}
