// Package leopard16 implements the Leopard-RS erasure code over GF(2^16):
// an O(n log n), additive-FFT-based Reed-Solomon construction that turns K
// original shards into K+M shards, any K of which suffice to recover the
// rest. See internal/gf16 for the field engine and internal/rate for the
// two chunking strategies (HighRate, LowRate) this package dispatches
// between.
package leopard16

import "github.com/gofec/leopard16/internal/gf16"

// Encode is the one-shot facade: build an Encoder, add every original in
// order, and return the M recovery shards.
func Encode(k, m int, originals [][]byte) ([][]byte, error) {
	if len(originals) != k {
		return nil, ErrNotEnoughShards
	}
	shardBytes := 0
	if k > 0 {
		shardBytes = len(originals[0])
	}

	enc, err := New(k, m, shardBytes)
	if err != nil {
		return nil, err
	}
	for _, o := range originals {
		if err := enc.AddOriginalShard(o); err != nil {
			return nil, err
		}
	}
	return enc.Encode()
}

// Decode is the one-shot facade for reconstruction: build a Decoder, add
// every supplied shard, and return the restored originals.
func Decode(k, m int, originals, recoveries map[int][]byte) (map[int][]byte, error) {
	shardBytes := 0
	for _, v := range originals {
		shardBytes = len(v)
		break
	}
	if shardBytes == 0 {
		for _, v := range recoveries {
			shardBytes = len(v)
			break
		}
	}

	dec, err := NewDecoder(k, m, shardBytes)
	if err != nil {
		return nil, err
	}
	for i, v := range originals {
		if err := dec.AddOriginalShard(i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range recoveries {
		if err := dec.AddRecoveryShard(i, v); err != nil {
			return nil, err
		}
	}
	return dec.Decode()
}

// Engine is the field-arithmetic capability abstraction: ScalarEngine is
// the only implementation this package ships, but any Engine can be
// passed to New/NewDecoder via WithEngine.
type Engine = gf16.Engine

// NewScalarEngine returns the scalar reference Engine.
func NewScalarEngine() Engine { return gf16.NewScalarEngine() }
