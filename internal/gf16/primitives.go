package gf16

// AllocAligned allocates n shard buffers of the given byte size. There is no
// actual alignment requirement for the scalar engine; the name and shape
// match the reference allocator so callers that used to reach for SIMD
// alignment still have a single place to do it if an accelerated Engine is
// added later.
func AllocAligned(n, size int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = make([]byte, size)
	}
	return out
}

func memClear(s []byte) {
	for i := range s {
		s[i] = 0
	}
}

// xorInto XORs src into dst in place: dst ^= src.
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func xorSlices(dst, src [][]byte) {
	for i, s := range src {
		xorInto(dst[i], s)
	}
}

// mulInto writes src*alpha into dst, where alpha has log value logM.
// dst and src must be the same length, a multiple of 64: the 64-byte
// deinterleaved block layout (low bytes of 32 elements, then the
// corresponding high bytes) is exactly what this table lookup expects.
func mulInto(dst, src []byte, logM Elem) {
	lut := &mulLUTs[logM]
	for off := 0; off < len(src); off += 64 {
		lo := src[off : off+32]
		hi := src[off+32 : off+64]
		for i, l := range lo {
			prod := lut.Lo[l] ^ lut.Hi[hi[i]]
			dst[off+i] = byte(prod)
			dst[off+i+32] = byte(prod >> 8)
		}
	}
}

// mulAddInto XORs src*alpha into dst: dst ^= src*alpha.
func mulAddInto(dst, src []byte, logM Elem) {
	lut := &mulLUTs[logM]
	for off := 0; off < len(dst); off += 64 {
		lo := src[off : off+32]
		hi := src[off+32 : off+64]
		dstLo := dst[off : off+32]
		dstHi := dst[off+32 : off+64]
		for i, l := range lo {
			prod := lut.Lo[l] ^ lut.Hi[hi[i]]
			dstLo[i] ^= byte(prod)
			dstHi[i] ^= byte(prod >> 8)
		}
	}
}
