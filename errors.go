package leopard16

import "errors"

// Error kinds returned by this package. Callers should compare with
// errors.Is rather than switching on the concrete value.
var (
	// ErrUnsupportedShape is returned when (K,M) falls outside the
	// admissible envelope checked by ValidateShape, or when the caller pinned a rate
	// that can't hold the requested (K,M) within the field's domain.
	ErrUnsupportedShape = errors.New("leopard16: (K,M) shape is not admissible")

	// ErrBadShardSize is returned when a shard's byte length is zero,
	// not a multiple of 64, or doesn't match the instance's configured
	// size.
	ErrBadShardSize = errors.New("leopard16: shard size must be a positive multiple of 64")

	// ErrTooManyShards is returned when AddOriginalShard is called after
	// K shards have already been added.
	ErrTooManyShards = errors.New("leopard16: all original shards already added")

	// ErrNotEnoughShards is returned by Encode when fewer than K
	// originals were added, or by Decode when fewer than K total shards
	// were provided.
	ErrNotEnoughShards = errors.New("leopard16: not enough shards to proceed")

	// ErrInvalidIndex is returned when a shard index is out of range for
	// its kind (>= K for originals, >= M for recoveries).
	ErrInvalidIndex = errors.New("leopard16: shard index out of range")

	// ErrDuplicateShard is returned when the same index is supplied
	// twice within one kind (original or recovery).
	ErrDuplicateShard = errors.New("leopard16: duplicate shard index")
)
