package leopard16

import (
	"bytes"

	"github.com/gofec/leopard16/internal/gf16"
	"github.com/gofec/leopard16/internal/rate"
)

// Encoder is a stateful builder: construct with New, feed it exactly K
// original shards via AddOriginalShard, then call Encode for the M
// recovery shards. Reset reconfigures it for another cycle without
// discarding the chosen rate or engine.
type Encoder struct {
	k, m       int
	shardBytes int
	rate       rate.Rate
	engine     gf16.Engine

	originals [][]byte
	count     int
}

// New validates (K,M) against the shape envelope, picks a rate via the
// default HighRate/LowRate tie-break, and returns a ready-to-fill Encoder.
func New(k, m, shardBytes int, opts ...Option) (*Encoder, error) {
	r, err := rate.Select(k, m)
	if err != nil {
		return nil, ErrUnsupportedShape
	}
	return newEncoder(k, m, shardBytes, r, opts...)
}

// NewHighRateEncoder pins the encoder to HighRate, failing with
// ErrUnsupportedShape if HighRate's working buffer can't hold (K,M).
func NewHighRateEncoder(k, m, shardBytes int, opts ...Option) (*Encoder, error) {
	if !rate.High.Feasible(k, m) {
		return nil, ErrUnsupportedShape
	}
	return newEncoder(k, m, shardBytes, rate.High, opts...)
}

// NewLowRateEncoder pins the encoder to LowRate, failing with
// ErrUnsupportedShape if LowRate's working buffer can't hold (K,M).
func NewLowRateEncoder(k, m, shardBytes int, opts ...Option) (*Encoder, error) {
	if !rate.Low.Feasible(k, m) {
		return nil, ErrUnsupportedShape
	}
	return newEncoder(k, m, shardBytes, rate.Low, opts...)
}

func newEncoder(k, m, shardBytes int, r rate.Rate, opts ...Option) (*Encoder, error) {
	if err := ValidateShape(k, m); err != nil {
		return nil, err
	}
	if shardBytes <= 0 || shardBytes%64 != 0 {
		return nil, ErrBadShardSize
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger.Debugf("leopard16: new encoder k=%d m=%d rate=%s", k, m, r.Name())
	return &Encoder{
		k:          k,
		m:          m,
		shardBytes: shardBytes,
		rate:       r,
		engine:     o.engine,
		originals:  make([][]byte, k),
	}, nil
}

// DataShards returns K.
func (e *Encoder) DataShards() int { return e.k }

// ParityShards returns M.
func (e *Encoder) ParityShards() int { return e.m }

// ShardSize returns the configured shard byte length.
func (e *Encoder) ShardSize() int { return e.shardBytes }

// AddOriginalShard appends the next original shard; the i-th call
// (since New or Reset) supplies shard i.
func (e *Encoder) AddOriginalShard(b []byte) error {
	if e.count >= e.k {
		return ErrTooManyShards
	}
	if len(b) != e.shardBytes {
		return ErrBadShardSize
	}
	e.originals[e.count] = append([]byte(nil), b...)
	e.count++
	return nil
}

// Encode runs the chosen rate's formula over the K collected originals and
// returns the M recovery shards in index order. It errors with
// ErrNotEnoughShards if fewer than K originals were added.
func (e *Encoder) Encode() ([][]byte, error) {
	if e.count < e.k {
		return nil, ErrNotEnoughShards
	}
	recovery, err := e.rate.Encode(e.engine, e.k, e.m, e.shardBytes, e.originals)
	if err != nil {
		logger.Errorf("leopard16: encode failed: %v", err)
		return nil, err
	}
	return recovery, nil
}

// Verify re-encodes from the shards this Encoder was given and reports
// whether recovery matches byte-for-byte.
func (e *Encoder) Verify(recovery [][]byte) (bool, error) {
	if e.count < e.k {
		return false, ErrNotEnoughShards
	}
	if len(recovery) != e.m {
		return false, ErrInvalidIndex
	}
	want, err := e.rate.Encode(e.engine, e.k, e.m, e.shardBytes, e.originals)
	if err != nil {
		return false, err
	}
	for i := range want {
		if !bytes.Equal(want[i], recovery[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Reset clears every collected original shard so the Encoder can be
// reused for another cycle at the same (K,M,shardBytes) without
// reallocating its rate or engine.
func (e *Encoder) Reset() {
	for i := range e.originals {
		e.originals[i] = nil
	}
	e.count = 0
}
