package rate

import "github.com/gofec/leopard16/internal/gf16"

// highRate chunks the additive-FFT domain by the recovery-shard count,
// rounded up to a power of two. It is the rate the reference decoder
// implements directly; ported from leopardFF16.encode/reconstruct.
type highRate struct{}

func (highRate) Name() string { return "high" }

func (highRate) Feasible(k, m int) bool {
	mSize := gf16.CeilPow2(m)
	n := gf16.CeilPow2(mSize + k)
	return n <= gf16.Order
}

// Encode computes the m recovery shards for k original shards by IFFT-ing
// the originals in mSize-wide chunks (accumulating chunks past the first
// via XOR into work) and running one forward FFT over the accumulated
// result, truncated to the m outputs actually needed.
func (highRate) Encode(engine gf16.Engine, k, m, shardSize int, originals [][]byte) ([][]byte, error) {
	mSize := gf16.CeilPow2(m)
	work := gf16.AllocAligned(mSize*2, shardSize)

	mtrunc := mSize
	if k < mtrunc {
		mtrunc = k
	}

	skew := gf16.SkewTable()
	skewLUT := skew[mSize-1:]

	sh := originals
	engine.IFFTEncode(sh[:k], mtrunc, work, nil, mSize, skewLUT)

	if mSize < k {
		lastCount := k % mSize
		for i := mSize; i+mSize <= k; i += mSize {
			sh = sh[mSize:]
			skewLUT = skewLUT[mSize:]
			engine.IFFTEncode(sh, mSize, work[mSize:], work, mSize, skewLUT)
		}
		if lastCount != 0 {
			sh = sh[mSize:]
			skewLUT = skewLUT[mSize:]
			engine.IFFTEncode(sh, lastCount, work[mSize:], work, mSize, skewLUT)
		}
	}

	engine.FFT(work, m, mSize, skew[:])

	recovery := gf16.AllocAligned(m, shardSize)
	for i := 0; i < m; i++ {
		copy(recovery[i], work[i])
	}
	return recovery, nil
}

// Reconstruct restores the original shards named in missingOriginals from
// whatever subset of originals and recoveries the caller has, via the
// error-locator/IFFT/formal-derivative/FFT sequence ported from
// leopardFF16.reconstruct. The working buffer holds recovery shards at
// [0,mSize), original shards at [mSize,mSize+k), and zero padding out to
// n = ceilPow2(mSize+k).
func (highRate) Reconstruct(engine gf16.Engine, k, m, shardSize int, originals, recoveries map[int][]byte, missingOriginals []int) (map[int][]byte, error) {
	mSize := gf16.CeilPow2(m)
	n := gf16.CeilPow2(mSize + k)
	if n > gf16.Order {
		return nil, ErrShapeTooLarge
	}

	present := len(originals) + len(recoveries)
	useBits := gf16.UseBitfield(k+m, present, m)

	var errorBits gf16.ErrorBitfield
	var errLocs [gf16.Order]gf16.Elem

	for i := 0; i < m; i++ {
		if _, ok := recoveries[i]; !ok {
			errLocs[i] = 1
		}
	}
	for i := m; i < mSize; i++ {
		errLocs[i] = 1
	}
	for i := 0; i < k; i++ {
		if _, ok := originals[i]; !ok {
			errLocs[i+mSize] = 1
			errorBits.Set(i + mSize)
		}
	}
	if useBits {
		errorBits.Prepare()
	}

	engine.FWHT(&errLocs, mSize+k)

	work := gf16.AllocAligned(n, shardSize)
	skew := gf16.SkewTable()

	for i := 0; i < m; i++ {
		if v, ok := recoveries[i]; ok {
			engine.Mul(work[i], v, errLocs[i])
		}
	}
	for i := 0; i < k; i++ {
		if v, ok := originals[i]; ok {
			engine.Mul(work[mSize+i], v, errLocs[mSize+i])
		}
	}

	outputCount := mSize + k
	engine.IFFT(work, outputCount, n, skew[:])
	engine.FormalDerivative(work, n)

	if useBits {
		errorBits.FFT(work, outputCount, n, skew[:])
	} else {
		engine.FFT(work, outputCount, n, skew[:])
	}

	restored := make(map[int][]byte, len(missingOriginals))
	for _, i := range missingOriginals {
		if i < 0 || i >= k {
			continue
		}
		if _, ok := originals[i]; ok {
			continue
		}
		out := make([]byte, shardSize)
		engine.Mul(out, work[i+mSize], gf16.Modulus-errLocs[i+mSize])
		restored[i] = out
	}
	return restored, nil
}
