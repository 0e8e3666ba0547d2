package newton

// Samples are plain complex128 values. Addition, subtraction and multiplication
// use the language operators; the helpers below cover everything else the
// iteration needs.

// Scale multiplies both components of x by r.
func Scale(x complex128, r float64) complex128 {
	return complex(real(x)*r, imag(x)*r)
}

// DivReal divides both components of x by r.
func DivReal(x complex128, r float64) complex128 {
	return Scale(x, 1/r)
}

// MagnitudeSquared returns re² + im², avoiding the square root of cmplx.Abs.
func MagnitudeSquared(x complex128) float64 {
	return real(x)*real(x) + imag(x)*imag(x)
}

// DistanceSquared returns |a - b|².
func DistanceSquared(a, b complex128) float64 {
	return MagnitudeSquared(a - b)
}

// Inverse returns 1/x as conj(x)/|x|².
// The caller must make sure x is not (close to) zero.
func Inverse(x complex128) complex128 {
	x = DivReal(x, MagnitudeSquared(x))
	return complex(real(x), -imag(x))
}

// Pow returns x raised to the non-negative integer power p.
// Exponents up to 8 use a fixed multiplication tree, larger ones PowBinary.
func Pow(x complex128, p int) complex128 {
	switch p {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	case 4:
		xx := x * x
		return xx * xx
	case 5:
		xx := x * x
		return xx * xx * x
	case 6:
		xx := x * x
		return xx * xx * xx
	case 7:
		xx := x * x
		return (xx * xx) * (xx * x)
	case 8:
		xx := x * x
		xxxx := xx * xx
		return xxxx * xxxx
	default:
		return PowBinary(x, p)
	}
}

// PowBinary computes x^p by square-and-multiply. The accumulator starts at the
// lowest set bit of p so it is never multiplied by 1+0i.
func PowBinary(x complex128, p int) complex128 {
	if p <= 0 {
		return 1
	}

	xPow := x
	for p&1 == 0 {
		xPow *= xPow
		p >>= 1
	}

	ret := xPow
	p >>= 1
	for p != 0 {
		xPow *= xPow
		if p&1 == 1 {
			ret *= xPow
		}
		p >>= 1
	}
	return ret
}

// PowNaive computes x^p by repeated multiplication.
func PowNaive(x complex128, p int) complex128 {
	ret := complex128(1)
	for i := 0; i < p; i++ {
		ret *= x
	}
	return ret
}
