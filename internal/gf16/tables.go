// Package gf16 implements the GF(2^16) field arithmetic and additive-FFT
// butterflies that Leopard-RS encoding and decoding are built on: log/exp
// multiplication tables, the FFT/IFFT skew schedule, and the FWHT used to
// evaluate the decoder's error-locator polynomial.
//
// Ported from the scalar reference path of a production Reed-Solomon
// package (no SIMD): the table layout, the Cantor basis, and the butterfly
// recurrences must match bit-for-bit or recovery shards produced by one
// implementation are not decodable by another.
package gf16

import (
	"sync"

	"github.com/klauspost/cpuid/v2"

	logging "github.com/dep2p/log"
)

var logger = logging.Logger("leopard16/gf16")

// Elem is an element of GF(2^16).
type Elem uint16

const (
	bitwidth   = 16
	// Order is the number of elements in GF(2^16).
	Order = 1 << bitwidth
	// Modulus is Order-1, the size of the multiplicative group and the
	// modulus for the log-domain addition used throughout this package.
	Modulus    = Order - 1
	polynomial = 0x1002D
)

var (
	logLUT *[Order]Elem
	expLUT *[Order]Elem

	// fftSkew holds the skew factor schedule used by FFT/IFFT, indexed by
	// field position. Built once from the Cantor basis.
	fftSkew *[Modulus]Elem

	// logWalsh holds FWHT(Log[i]) for all i, precomputed so the decoder's
	// error-locator evaluation is a single pointwise multiply plus a second
	// FWHT rather than a fresh transform of the log table every decode.
	logWalsh *[Order]Elem

	// mulLUTs[logM] gives the split low/high nibble tables used to compute
	// x * alpha where alpha has log value logM, over a 64-byte shard block.
	mulLUTs *[Order]mulLUT
)

type mulLUT struct {
	Lo [256]Elem
	Hi [256]Elem
}

var (
	initOnce     sync.Once
	capabilities string
)

// initTables builds every global table exactly once. Safe for concurrent
// first use from multiple goroutines.
func initTables() {
	initOnce.Do(func() {
		detectCapabilities()
		initLogExp()
		initFFTSkewAndWalsh()
		initMulLUTs()
		logger.Infof("gf16 tables initialized (cpu: %s)", capabilities)
	})
}

// detectCapabilities records which SIMD instruction sets the running CPU
// supports. Nothing in this package uses them — ScalarEngine is the only
// implementation — but the capability string is surfaced through
// Engine.Capabilities so callers can see what a future accelerated engine
// could exploit.
func detectCapabilities() {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F):
		capabilities = "avx512f"
	case cpuid.CPU.Has(cpuid.AVX2):
		capabilities = "avx2"
	case cpuid.CPU.Has(cpuid.SSSE3):
		capabilities = "ssse3"
	default:
		capabilities = "scalar-only"
	}
}

func initLogExp() {
	cantorBasis := [bitwidth]Elem{
		0x0001, 0xACCA, 0x3C0E, 0x163E,
		0xC582, 0xED2E, 0x914C, 0x4012,
		0x6C98, 0x10D8, 0x6A72, 0xB900,
		0xFDB8, 0xFB34, 0xFF38, 0x991E,
	}

	expLUT = &[Order]Elem{}
	logLUT = &[Order]Elem{}

	// LFSR table generation.
	state := 1
	for i := Elem(0); i < Modulus; i++ {
		expLUT[state] = i
		state <<= 1
		if state >= Order {
			state ^= polynomial
		}
	}
	expLUT[0] = Modulus

	// Convert to the Cantor basis.
	logLUT[0] = 0
	for i := 0; i < bitwidth; i++ {
		basis := cantorBasis[i]
		width := 1 << i
		for j := 0; j < width; j++ {
			logLUT[j+width] = logLUT[j] ^ basis
		}
	}
	for i := 0; i < Order; i++ {
		logLUT[i] = expLUT[logLUT[i]]
	}
	for i := 0; i < Order; i++ {
		expLUT[logLUT[i]] = Elem(i)
	}
	expLUT[Modulus] = expLUT[0]
}

// mulLog returns a * Log(b): b is already a logarithm, which lets the
// table builders below do their multiplies without an extra log lookup.
func mulLog(a, logB Elem) Elem {
	if a == 0 {
		return 0
	}
	return expLUT[addMod(logLUT[a], logB)]
}

func addMod(a, b Elem) Elem {
	sum := uint(a) + uint(b)
	return Elem(sum + sum>>bitwidth)
}

func subMod(a, b Elem) Elem {
	dif := uint(a) - uint(b)
	return Elem(dif + dif>>bitwidth)
}

func initFFTSkewAndWalsh() {
	var temp [bitwidth - 1]Elem
	for i := 1; i < bitwidth; i++ {
		temp[i-1] = Elem(1 << i)
	}

	fftSkew = &[Modulus]Elem{}
	logWalsh = &[Order]Elem{}

	for m := 0; m < bitwidth-1; m++ {
		step := 1 << (m + 1)
		fftSkew[1<<m-1] = 0

		for i := m; i < bitwidth-1; i++ {
			s := 1 << (i + 1)
			for j := 1<<m - 1; j < s; j += step {
				fftSkew[j+s] = fftSkew[j] ^ temp[i]
			}
		}

		temp[m] = Modulus - logLUT[mulLog(temp[m], logLUT[temp[m]^1])]
		for i := m + 1; i < bitwidth-1; i++ {
			sum := addMod(logLUT[temp[i]^1], temp[m])
			temp[i] = mulLog(temp[i], sum)
		}
	}

	for i := 0; i < Modulus; i++ {
		fftSkew[i] = logLUT[fftSkew[i]]
	}

	for i := 0; i < Order; i++ {
		logWalsh[i] = logLUT[i]
	}
	logWalsh[0] = 0
	fwhtInPlace(logWalsh, Order)
}

func initMulLUTs() {
	mulLUTs = &[Order]mulLUT{}

	for logM := 0; logM < Order; logM++ {
		var tmp [64]Elem
		for nibble, shift := 0, 0; nibble < 4; {
			nibbleLUT := tmp[nibble*16:]
			for x := 0; x < 16; x++ {
				nibbleLUT[x] = mulLog(Elem(x<<shift), Elem(logM))
			}
			nibble++
			shift += 4
		}
		lut := &mulLUTs[logM]
		for i := range lut.Lo[:] {
			lut.Lo[i] = tmp[i&15] ^ tmp[(i>>4)+16]
			lut.Hi[i] = tmp[(i&15)+32] ^ tmp[(i>>4)+48]
		}
	}
}

// ceilPow2 returns the smallest power of two that is >= n.
func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// CeilPow2 is the exported form of ceilPow2, used by the rate strategies
// to size chunks.
func CeilPow2(n int) int { return ceilPow2(n) }
