package leopard16

import (
	"github.com/gofec/leopard16/internal/gf16"
	"github.com/gofec/leopard16/internal/rate"
)

// Decoder is a stateful builder for reconstruction: construct with
// NewDecoder, feed it present shards in any order via AddOriginalShard and
// AddRecoveryShard (each index-tagged, unlike Encoder's positional adds),
// then call Decode or DecodeOnly.
type Decoder struct {
	k, m       int
	shardBytes int
	rate       rate.Rate
	engine     gf16.Engine

	originals  map[int][]byte
	recoveries map[int][]byte
}

// NewDecoder validates (K,M) against the shape envelope, picks a rate via
// the default HighRate/LowRate tie-break, and returns an empty Decoder.
func NewDecoder(k, m, shardBytes int, opts ...Option) (*Decoder, error) {
	r, err := rate.Select(k, m)
	if err != nil {
		return nil, ErrUnsupportedShape
	}
	return newDecoder(k, m, shardBytes, r, opts...)
}

// NewHighRateDecoder pins the decoder to HighRate; the shards it is given
// must have been produced by a HighRate encoder for the same (K,M).
func NewHighRateDecoder(k, m, shardBytes int, opts ...Option) (*Decoder, error) {
	if !rate.High.Feasible(k, m) {
		return nil, ErrUnsupportedShape
	}
	return newDecoder(k, m, shardBytes, rate.High, opts...)
}

// NewLowRateDecoder pins the decoder to LowRate; the shards it is given
// must have been produced by a LowRate encoder for the same (K,M).
func NewLowRateDecoder(k, m, shardBytes int, opts ...Option) (*Decoder, error) {
	if !rate.Low.Feasible(k, m) {
		return nil, ErrUnsupportedShape
	}
	return newDecoder(k, m, shardBytes, rate.Low, opts...)
}

func newDecoder(k, m, shardBytes int, r rate.Rate, opts ...Option) (*Decoder, error) {
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

	logger.Debugf("leopard16: new decoder k=%d m=%d rate=%s", k, m, r.Name())
	return &Decoder{
		k:          k,
		m:          m,
		shardBytes: shardBytes,
		rate:       r,
		engine:     o.engine,
		originals:  make(map[int][]byte, k),
		recoveries: make(map[int][]byte, m),
	}, nil
}

// AddOriginalShard supplies the original shard at idx. Order doesn't
// matter; each shard carries its own index.
func (d *Decoder) AddOriginalShard(idx int, b []byte) error {
	if idx < 0 || idx >= d.k {
		return ErrInvalidIndex
	}
	if len(b) != d.shardBytes {
		return ErrBadShardSize
	}
	if _, ok := d.originals[idx]; ok {
		return ErrDuplicateShard
	}
	d.originals[idx] = append([]byte(nil), b...)
	return nil
}

// AddRecoveryShard supplies the recovery shard at idx.
func (d *Decoder) AddRecoveryShard(idx int, b []byte) error {
	if idx < 0 || idx >= d.m {
		return ErrInvalidIndex
	}
	if len(b) != d.shardBytes {
		return ErrBadShardSize
	}
	if _, ok := d.recoveries[idx]; ok {
		return ErrDuplicateShard
	}
	d.recoveries[idx] = append([]byte(nil), b...)
	return nil
}

// Decode restores every original shard not already supplied.
func (d *Decoder) Decode() (map[int][]byte, error) {
	return d.decode(nil)
}

// DecodeOnly restores only the named original indices. The underlying
// reconstruction still runs over the whole shard domain; this only narrows
// which restored shards are returned to the caller.
func (d *Decoder) DecodeOnly(indices ...int) (map[int][]byte, error) {
	for _, i := range indices {
		if i < 0 || i >= d.k {
			return nil, ErrInvalidIndex
		}
	}
	if indices == nil {
		indices = []int{}
	}
	return d.decode(indices)
}

func (d *Decoder) decode(want []int) (map[int][]byte, error) {
	if len(d.originals)+len(d.recoveries) < d.k {
		return nil, ErrNotEnoughShards
	}

	missing := want
	if missing == nil {
		missing = make([]int, 0, d.k-len(d.originals))
		for i := 0; i < d.k; i++ {
			if _, ok := d.originals[i]; !ok {
				missing = append(missing, i)
			}
		}
	}

	restored, err := d.rate.Reconstruct(d.engine, d.k, d.m, d.shardBytes, d.originals, d.recoveries, missing)
	if err != nil {
		logger.Errorf("leopard16: decode failed: %v", err)
		return nil, err
	}
	return restored, nil
}

// Reset clears every supplied shard so the Decoder can be reused for
// another cycle at the same (K,M,shardBytes).
func (d *Decoder) Reset() {
	for k := range d.originals {
		delete(d.originals, k)
	}
	for k := range d.recoveries {
		delete(d.recoveries, k)
	}
}
