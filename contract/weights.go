package contract

// isqrt computes floor(√n) by integer Newton iteration, no floating point.
// Starting from n, the guess about halves each step until it nears the root,
// so inputs near math.MaxUint64 take 37 steps.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	// ceil(x/2) without the wrap that (x+1)/2 hits at math.MaxUint64.
	y := x/2 + x%2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// chamberWeights derives the (capital, community) weight pair from a raw
// token balance under the given voting mode. TokenWeighted keeps the raw
// balance in both chambers; the square-root modes dampen the community side.
func chamberWeights(mode VotingMode, balance uint64) (capital, community uint64) {
	switch mode {
	case ModeTokenWeighted:
		return balance, balance
	default:
		return balance, isqrt(balance)
	}
}

// checkedAdd sums two uint64 tallies, aborting the transaction on overflow.
func checkedAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		abortWith(ErrArithmeticOverflow)
	}
	return sum
}
