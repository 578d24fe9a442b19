package gf16

// Engine is the capability abstraction for the field layer: ScalarEngine
// is the reference implementation, and a SIMD engine could implement the
// same interface without either rate strategy or the encoder/decoder core
// caring which one it's talking to.
type Engine interface {
	// AddInto XORs src into dst.
	AddInto(dst, src []byte)
	// Mul writes src*alpha into dst, alpha given by its log value.
	Mul(dst, src []byte, logM Elem)
	// MulAdd XORs src*alpha into dst.
	MulAdd(dst, src []byte, logM Elem)
	// FFT runs the forward butterfly network in place.
	FFT(work [][]byte, mtrunc, m int, skewLUT []Elem)
	// IFFT runs the general inverse butterfly network in place, truncated
	// to mtrunc known-nonzero leading entries.
	IFFT(work [][]byte, mtrunc, m int, skewLUT []Elem)
	// IFFTEncode runs the XOR-accumulating inverse butterfly network used
	// while chunking an encoder's input.
	IFFTEncode(data [][]byte, mtrunc int, work, xorRes [][]byte, m int, skewLUT []Elem)
	// FormalDerivative computes the GF(2) formal derivative in place.
	FormalDerivative(work [][]byte, n int)
	// FWHT evaluates the error-locator Walsh-Hadamard transform.
	FWHT(errLocs *[Order]Elem, mtrunc int)
	// Capabilities reports which SIMD instruction sets the host CPU has,
	// for diagnostic purposes only — this engine never uses them.
	Capabilities() string
}

// ScalarEngine is the reference engine: no SIMD, table-driven
// multiplication, the Leopard additive-FFT butterflies run on plain Go
// byte slices.
type ScalarEngine struct{}

// NewScalarEngine returns the scalar reference Engine, initializing the
// global field tables if this is the first Engine created in the process.
func NewScalarEngine() *ScalarEngine {
	initTables()
	return &ScalarEngine{}
}

func (*ScalarEngine) AddInto(dst, src []byte) { xorInto(dst, src) }

func (*ScalarEngine) Mul(dst, src []byte, logM Elem) { mulInto(dst, src, logM) }

func (*ScalarEngine) MulAdd(dst, src []byte, logM Elem) { mulAddInto(dst, src, logM) }

func (*ScalarEngine) FFT(work [][]byte, mtrunc, m int, skewLUT []Elem) {
	FFT(work, mtrunc, m, skewLUT)
}

func (*ScalarEngine) IFFT(work [][]byte, mtrunc, m int, skewLUT []Elem) {
	IFFT(work, mtrunc, m, skewLUT)
}

func (*ScalarEngine) IFFTEncode(data [][]byte, mtrunc int, work, xorRes [][]byte, m int, skewLUT []Elem) {
	IFFTEncode(data, mtrunc, work, xorRes, m, skewLUT)
}

func (*ScalarEngine) FormalDerivative(work [][]byte, n int) { FormalDerivative(work, n) }

func (*ScalarEngine) FWHT(errLocs *[Order]Elem, mtrunc int) { FWHT(errLocs, mtrunc) }

func (*ScalarEngine) Capabilities() string {
	initTables()
	return capabilities
}
