// Package numeric: float32 fast approximations for the low-precision
// scoring path.
//
// fast.go ports the classic fastapprox polynomial/bit-level routines:
// the exponent field of the IEEE-754 float32 representation supplies the
// integer part of log2, and a low-order rational correction handles the
// mantissa. The resulting routines trade accuracy for raw throughput and
// vectorize trivially across a slice of group scores.
//
// Documented error bounds (inputs in the domains the models touch,
// roughly x ∈ [1e-6, 1e6]):
//
//	FastLog, FastExp    - ≤ 1e-4 relative error.
//	FastLgamma          - ≤ 1e-4 relative error for x ≥ 0.1.
//	FastDigamma         - ≤ 1e-4 relative error for x ≥ 0.5.
//
// The conformance tests in fast_test.go assert these bounds against the
// exact double-precision kernels.

package numeric

import "math"

// FastLog2 returns an approximate log2(x) for x > 0.
// Bit-level exponent extraction plus a rational mantissa correction.
func FastLog2(x float32) float32 {
	vx := math.Float32bits(x)
	mx := math.Float32frombits((vx & 0x007FFFFF) | 0x3f000000)
	y := float32(vx) * 1.1920928955078125e-7
	return y - 124.22551499 - 1.498030302*mx - 1.72587999/(0.3520887068+mx)
}

// FastLog returns an approximate natural log of x for x > 0.
func FastLog(x float32) float32 {
	return 0.69314718 * FastLog2(x)
}

// FastPow2 returns an approximate 2^p.
// Inverse construction of FastLog2: build the exponent field directly
// from the integer part of p and correct the fraction rationally.
func FastPow2(p float32) float32 {
	var offset float32
	if p < 0 {
		offset = 1.0
	}
	clipp := p
	if clipp < -126 {
		clipp = -126
	}
	w := int32(clipp)
	z := clipp - float32(w) + offset
	v := uint32(int32((1 << 23) * (clipp + 121.2740575 + 27.7280233/(4.84252568-z) - 1.49012907*z)))
	return math.Float32frombits(v)
}

// FastExp returns an approximate e^p.
func FastExp(p float32) float32 {
	return FastPow2(1.442695040 * p)
}

// FastLgamma returns an approximate log Γ(x) for x > 0.
// Three-term upward recurrence folded into a single Stirling-style form,
// so small arguments keep full accuracy without branching.
func FastLgamma(x float32) float32 {
	logterm := FastLog(x * (1 + x) * (2 + x))
	xp3 := 3 + x
	return -2.081061466 - x + 0.0833333/xp3 - logterm + (2.5+x)*FastLog(xp3)
}

// FastDigamma returns an approximate ψ(x) for x > 0.
// Padé-style correction around the shifted asymptotic expansion.
func FastDigamma(x float32) float32 {
	twopx := 2 + x
	logterm := FastLog(twopx)
	return (-48+x*(-157+x*(-127-30*x)))/(12*x*(1+x)*twopx*twopx) + logterm
}
