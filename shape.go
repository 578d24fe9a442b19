package leopard16

import "github.com/gofec/leopard16/internal/gf16"

// ValidateShape reports whether (K,M) is admissible: there must exist an
// integer n in [0,16] such that K <= 2^16-2^n and M <= 2^n, or
// symmetrically K <= 2^n and M <= 2^16-2^n. This is the envelope Leopard's
// chunked additive FFT can actually cover; outside it neither rate's
// working buffer fits within the field's 65536-point domain.
func ValidateShape(k, m int) error {
	if k < 1 || m < 1 || k > gf16.Modulus || m > gf16.Modulus || k+m > gf16.Order {
		return ErrUnsupportedShape
	}
	for n := 0; n <= 16; n++ {
		pow := 1 << n
		if k <= gf16.Order-pow && m <= pow {
			return nil
		}
		if k <= pow && m <= gf16.Order-pow {
			return nil
		}
	}
	return ErrUnsupportedShape
}
