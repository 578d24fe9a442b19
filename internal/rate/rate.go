// Package rate implements Leopard-RS's two chunking strategies. HighRate
// chunks by the recovery-shard count (efficient when there are few parity
// shards relative to data shards); LowRate chunks by the original-shard
// count (efficient in the opposite regime, and the only one that keeps the
// decoder's working buffer within GF(2^16)'s 65536-point domain when the
// recovery count is the large side).
//
// Both encode and decode reduce to the same primitive calls in
// internal/gf16; what differs between the two rates is which shard kind
// occupies the "single chunk" role and which occupies the "spread across
// possibly many chunks" role, and the skew-table offsets that keep those
// roles from colliding in the shared field-position domain.
package rate

import (
	"errors"

	"github.com/gofec/leopard16/internal/gf16"
)

// ErrShapeTooLarge is returned by Select when neither rate's working
// buffer fits within GF(2^16)'s domain for the given (K,M), and by
// Reconstruct when the rate it is called on does not fit. The
// Encoder/Decoder constructors check feasibility first, so Reconstruct's
// check is a defensive backstop.
var ErrShapeTooLarge = errors.New("gf16 rate: chunk size exceeds field domain")

// Rate is the common shape both HighRate and LowRate expose to the
// encoder/decoder core.
type Rate interface {
	// Name identifies the rate for logging and for the advanced API
	// (HighRateEncoder etc.) that pins callers to one rate explicitly.
	Name() string

	// Feasible reports whether this rate's working buffers fit within
	// GF(2^16)'s domain for the given shard counts.
	Feasible(k, m int) bool

	// Encode runs this rate's chunking formula over originals (len k) and
	// returns the m recovery shards, in index order.
	Encode(engine gf16.Engine, k, m, shardSize int, originals [][]byte) ([][]byte, error)

	// Reconstruct restores every original shard whose index is present in
	// missingOriginals, given the sparse maps of shards the caller
	// supplied. It returns a map from original index to restored bytes.
	Reconstruct(engine gf16.Engine, k, m, shardSize int, originals, recoveries map[int][]byte, missingOriginals []int) (map[int][]byte, error)
}

// High and Low are the two Rate implementations; both are stateless.
var (
	High Rate = highRate{}
	Low  Rate = lowRate{}
)

// Select picks HighRate or LowRate for (k,m), preferring the caller's
// default tie-break (HighRate when m<=k) but falling back to whichever
// rate is actually feasible when only one is.
func Select(k, m int) (Rate, error) {
	highOK := High.Feasible(k, m)
	lowOK := Low.Feasible(k, m)

	switch {
	case highOK && (m <= k || !lowOK):
		return High, nil
	case lowOK:
		return Low, nil
	case highOK:
		return High, nil
	default:
		return nil, ErrShapeTooLarge
	}
}
