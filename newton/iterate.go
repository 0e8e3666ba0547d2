package newton

// Step applies one Newton-Raphson update for f(z) = z^k - 1:
//
//	x - (x^k - 1)/(k x^(k-1)) = x(1 - 1/k) + (1/k) / x^(k-1)
//
// invDegree must be 1/degree. x must not be at the origin.
func Step(degree int, invDegree float64, x complex128) complex128 {
	invDfx := Scale(Inverse(Pow(x, degree-1)), invDegree)
	return Scale(x, 1-invDegree) + invDfx
}
