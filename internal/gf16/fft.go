package gf16

// This file implements the Leopard-RS additive FFT/IFFT butterfly network
// and the FWHT used to build the decoder's error-locator polynomial.
// These are not complex-DFT butterflies: each one operates on GF(2^16)
// shard buffers and a skew factor drawn from the global fftSkew table.
//
// Two IFFT entry points exist because the reference implementation has two:
// IFFTEncode accumulates multiple data chunks into one XOR'd result (used
// while encoding, when K exceeds the chunk size) and uses 0-based indexing
// into its skew slice; IFFT is the general in-place transform (used during
// decode, and by the low-rate encoder's single whole-chunk transform) and
// indexes its skew slice the same way fft does. The two indexing
// conventions must not be mixed: the offset each caller passes into
// fftSkew is only correct for the butterfly function it is paired with.

// fftDIT2 is the forward butterfly: given (x, y) that resulted from the IFFT
// recurrence, recovers the original pair. y ^= x*logM; x ^= y.
func fftDIT2(x, y []byte, logM Elem) {
	if logM == Modulus {
		xorInto(x, y)
		return
	}
	mulAddInto(y, x, logM)
	xorInto(x, y)
}

// ifftDIT2 is the inverse butterfly: (a,b) -> (a+b, (a+b)*skew + b).
func ifftDIT2(x, y []byte, logM Elem) {
	if logM == Modulus {
		xorInto(x, y)
		return
	}
	xorInto(x, y)
	mulAddInto(y, x, logM)
}

func fftDIT4(work [][]byte, dist int, logM01, logM23, logM02 Elem) {
	if logM02 == Modulus {
		xorInto(work[0], work[dist*2])
		xorInto(work[dist], work[dist*3])
	} else {
		fftDIT2(work[0], work[dist*2], logM02)
		fftDIT2(work[dist], work[dist*3], logM02)
	}

	if logM01 == Modulus {
		xorInto(work[0], work[dist])
	} else {
		fftDIT2(work[0], work[dist], logM01)
	}

	if logM23 == Modulus {
		xorInto(work[dist*2], work[dist*3])
	} else {
		fftDIT2(work[dist*2], work[dist*3], logM23)
	}
}

func ifftDIT4(work [][]byte, dist int, logM01, logM23, logM02 Elem) {
	if logM01 == Modulus {
		xorInto(work[0], work[dist])
	} else {
		ifftDIT2(work[0], work[dist], logM01)
	}
	if logM23 == Modulus {
		xorInto(work[dist*2], work[dist*3])
	} else {
		ifftDIT2(work[dist*2], work[dist*3], logM23)
	}

	if logM02 == Modulus {
		xorInto(work[0], work[dist*2])
		xorInto(work[dist], work[dist*3])
	} else {
		ifftDIT2(work[0], work[dist*2], logM02)
		ifftDIT2(work[dist], work[dist*3], logM02)
	}
}

// FFT runs the in-place, decimation-in-time FFT of length m over work,
// truncated to only compute the first mtrunc outputs. skewLUT is a slice
// into the global skew table already positioned at the desired offset
// (offset 0 means skewLUT should be the full table from its start).
func FFT(work [][]byte, mtrunc, m int, skewLUT []Elem) {
	dist4 := m
	dist := m >> 2
	for dist != 0 {
		for r := 0; r < mtrunc; r += dist4 {
			iEnd := r + dist
			logM01 := skewLUT[iEnd-1]
			logM02 := skewLUT[iEnd+dist-1]
			logM23 := skewLUT[iEnd+dist*2-1]
			for i := r; i < iEnd; i++ {
				fftDIT4(work[i:], dist, logM01, logM23, logM02)
			}
		}
		dist4 = dist
		dist >>= 2
	}

	if dist4 == 2 {
		for r := 0; r < mtrunc; r += 2 {
			logM := skewLUT[r]
			if logM == Modulus {
				xorInto(work[r], work[r+1])
			} else {
				fftDIT2(work[r], work[r+1], logM)
			}
		}
	}
}

// IFFT is the general in-place IFFT of length m, truncated so only the
// first mtrunc entries of work are assumed to (possibly) hold nonzero
// input; skewLUT positioned the same way FFT's is. Used by the decoder's
// single whole-buffer transform (mtrunc = m+dataShards, m = n, since only
// the recovery-and-original region is known and the rest is zero padding)
// and by the low-rate encoder's single data-chunk transform (mtrunc == m).
//
// The final single-layer butterfly, when one remains, always combines the
// full [0,dist) and [dist,2*dist) halves regardless of mtrunc: the DIT
// recursion still needs that combination even when the upper half's inputs
// were all zero padding, exactly as the reference decoder does it.
func IFFT(work [][]byte, mtrunc, m int, skewLUT []Elem) {
	dist := 1
	dist4 := 4
	for dist4 <= m {
		for r := 0; r < mtrunc; r += dist4 {
			iend := r + dist
			logM01 := skewLUT[iend-1]
			logM02 := skewLUT[iend+dist-1]
			logM23 := skewLUT[iend+dist*2-1]
			for i := r; i < iend; i++ {
				ifftDIT4(work[i:], dist, logM01, logM23, logM02)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < m {
		logM := skewLUT[dist-1]
		if logM == Modulus {
			xorSlices(work[:dist], work[dist:2*dist])
		} else {
			for i := 0; i < dist; i++ {
				ifftDIT2(work[i], work[i+dist], logM)
			}
		}
	}
}

// IFFTEncode is the XOR-accumulating IFFT used while encoding: it IFFTs
// data (only its first mtrunc entries are real, the rest are treated as
// zero padding) into work, and if xorRes is non-nil XORs the result into
// xorRes rather than leaving it in work alone. Its skewLUT indexes 0-based
// rather than the -1-shifted convention FFT/IFFT use, matching the
// reference implementation's ifftDITEncoder exactly; callers must offset
// their skew slice accordingly (see internal/rate for the exact offsets
// used).
func IFFTEncode(data [][]byte, mtrunc int, work [][]byte, xorRes [][]byte, m int, skewLUT []Elem) {
	for i := 0; i < mtrunc; i++ {
		copy(work[i], data[i])
	}
	for i := mtrunc; i < m; i++ {
		memClear(work[i])
	}

	dist := 1
	dist4 := 4
	for dist4 <= m {
		for r := 0; r < mtrunc; r += dist4 {
			iend := r + dist
			logM01 := skewLUT[iend]
			logM02 := skewLUT[iend+dist]
			logM23 := skewLUT[iend+dist*2]
			for i := r; i < iend; i++ {
				ifftDIT4(work[i:], dist, logM01, logM23, logM02)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < m {
		logM := skewLUT[dist]
		if logM == Modulus {
			xorSlices(work[:dist], work[dist:dist*2])
		} else {
			for i := 0; i < dist; i++ {
				ifftDIT2(work[i], work[i+dist], logM)
			}
		}
	}

	if xorRes != nil {
		xorSlices(xorRes[:m], work[:m])
	}
}

// FormalDerivative computes, in place, the formal derivative over GF(2)
// of the length-n buffer used by the decoder between its IFFT and FFT
// passes.
func FormalDerivative(work [][]byte, n int) {
	for i := 1; i < n; i++ {
		width := ((i ^ (i - 1)) + 1) >> 1
		xorSlices(work[i-width:i], work[i:i+width])
	}
}

func fwht2(a, b *Elem) {
	sum := addMod(*a, *b)
	dif := subMod(*a, *b)
	*a = sum
	*b = dif
}

func fwht2alt(a, b Elem) (Elem, Elem) {
	return addMod(a, b), subMod(a, b)
}

// fwhtInPlace is the decimation-in-time FWHT over Order coefficients,
// truncated so only the first mtrunc entries of data are assumed nonzero
// on input.
func fwhtInPlace(data *[Order]Elem, mtrunc int) {
	dist := 1
	dist4 := 4
	for dist4 <= Order {
		for r := 0; r < mtrunc; r += dist4 {
			dist16 := uint16(dist)
			off := uint16(r)
			for i := uint16(0); i < dist16; i++ {
				t0 := data[off]
				t1 := data[off+dist16]
				t2 := data[off+dist16*2]
				t3 := data[off+dist16*3]

				t0, t1 = fwht2alt(t0, t1)
				t2, t3 = fwht2alt(t2, t3)
				t0, t2 = fwht2alt(t0, t2)
				t1, t3 = fwht2alt(t1, t3)

				data[off] = t0
				data[off+dist16] = t1
				data[off+dist16*2] = t2
				data[off+dist16*3] = t3
				off++
			}
		}
		dist = dist4
		dist4 <<= 2
	}
}

// FWHT applies the error-locator Walsh-Hadamard transform used during
// decoding: forward transform, pointwise multiply by the precomputed
// LogWalsh table (reduced mod Modulus), then a second forward transform.
// mtrunc bounds how many of the Order entries are known nonzero on input;
// the whole Order-sized output is always produced since the decoder needs
// every field position's locator value.
func FWHT(errLocs *[Order]Elem, mtrunc int) {
	initTables()
	fwhtInPlace(errLocs, mtrunc)
	for i := 0; i < Order; i++ {
		errLocs[i] = Elem((uint(errLocs[i]) * uint(logWalsh[i])) % Modulus)
	}
	fwhtInPlace(errLocs, Order)
}

// SkewTable returns the global FFT skew table, initializing it on first
// use. Callers slice it to the offset their chunk needs.
func SkewTable() *[Modulus]Elem {
	initTables()
	return fftSkew
}
