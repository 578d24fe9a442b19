package rate

import "github.com/gofec/leopard16/internal/gf16"

// lowRate chunks the additive-FFT domain by the original-shard count,
// rounded up to a power of two (N). It is the mirror image of highRate:
// where highRate spreads the data across possibly many recovery-sized
// chunks and evaluates one FFT over an m-wide network, lowRate spreads
// the recovery shards across possibly many N-wide chunks and evaluates
// each against a single IFFT'd copy of the (always chunk-sized-or-smaller)
// original data. It exists because highRate's working buffer,
// ceilPow2(ceilPow2(m)+k), can exceed the field's 65536-point domain when
// m is the large side of an extreme (k,m) pair; lowRate's,
// ceilPow2(ceilPow2(k)+m), stays in range in that regime instead.
type lowRate struct{}

func (lowRate) Name() string { return "low" }

func (lowRate) Feasible(k, m int) bool {
	nSize := gf16.CeilPow2(k)
	n2 := gf16.CeilPow2(nSize + m)
	return n2 <= gf16.Order
}

// Encode IFFTs the k original shards, zero-padded to N = ceilPow2(k), once,
// then FFTs a fresh copy of that transform against a distinct skew offset
// per output chunk to produce the m recovery shards. Chunk j occupies
// field positions [(j+1)*N, (j+1)*N+N), keeping every chunk's evaluation
// domain disjoint from the data's own [0,N) frame and from every other
// chunk's.
func (lowRate) Encode(engine gf16.Engine, k, m, shardSize int, originals [][]byte) ([][]byte, error) {
	nSize := gf16.CeilPow2(k)
	skew := gf16.SkewTable()

	base := gf16.AllocAligned(nSize, shardSize)
	for i := 0; i < k; i++ {
		copy(base[i], originals[i])
	}
	engine.IFFT(base, k, nSize, skew[:])

	recovery := gf16.AllocAligned(m, shardSize)
	for j := 0; j*nSize < m; j++ {
		mtrunc := nSize
		if remaining := m - j*nSize; remaining < mtrunc {
			mtrunc = remaining
		}

		chunk := gf16.AllocAligned(nSize, shardSize)
		for i := range chunk {
			copy(chunk[i], base[i])
		}

		offset := (j + 1) * nSize
		engine.FFT(chunk, mtrunc, nSize, skew[offset:])

		for i := 0; i < mtrunc; i++ {
			copy(recovery[j*nSize+i], chunk[i])
		}
	}
	return recovery, nil
}

// Reconstruct is highRate's decode with the chunk-basis and spread roles
// swapped: the N-wide domain [0,N) holds original-shard values (the role
// highRate gives its recovery shards), and [N,N+m) holds recovery-shard
// values (the role highRate gives its original shards). Missing originals
// fall out of work[i] directly rather than work[N+i], since here the
// chunk-basis role is the one callers want restored.
func (lowRate) Reconstruct(engine gf16.Engine, k, m, shardSize int, originals, recoveries map[int][]byte, missingOriginals []int) (map[int][]byte, error) {
	nSize := gf16.CeilPow2(k)
	n2 := gf16.CeilPow2(nSize + m)
	if n2 > gf16.Order {
		return nil, ErrShapeTooLarge
	}

	present := len(originals) + len(recoveries)
	useBits := gf16.UseBitfield(k+m, present, k)

	var errorBits gf16.ErrorBitfield
	var errLocs [gf16.Order]gf16.Elem

	for i := 0; i < k; i++ {
		if _, ok := originals[i]; !ok {
			errLocs[i] = 1
			errorBits.Set(i)
		}
	}
	// [k,nSize) is zero-filled padding on the original side, not an erasure:
	// unlike highRate's [m,mSize) (truncated FFT output, genuinely unknown),
	// this region is a known value fixed before the encode-side IFFT, so it
	// is left out of errLocs entirely.
	for i := 0; i < m; i++ {
		if _, ok := recoveries[i]; !ok {
			errLocs[i+nSize] = 1
		}
	}
	if useBits {
		errorBits.Prepare()
	}

	engine.FWHT(&errLocs, nSize+m)

	work := gf16.AllocAligned(n2, shardSize)
	skew := gf16.SkewTable()

	for i := 0; i < k; i++ {
		if v, ok := originals[i]; ok {
			engine.Mul(work[i], v, errLocs[i])
		}
	}
	for i := 0; i < m; i++ {
		if v, ok := recoveries[i]; ok {
			engine.Mul(work[nSize+i], v, errLocs[nSize+i])
		}
	}

	outputCount := nSize + m
	engine.IFFT(work, outputCount, n2, skew[:])
	engine.FormalDerivative(work, n2)

	if useBits {
		errorBits.FFT(work, outputCount, n2, skew[:])
	} else {
		engine.FFT(work, outputCount, n2, skew[:])
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
		engine.Mul(out, work[i], gf16.Modulus-errLocs[i])
		restored[i] = out
	}
	return restored, nil
}
