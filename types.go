package leopard16

// Shard is a byte buffer whose length is a positive multiple of 64: a
// concatenation of 64-byte blocks where bytes [0,32) hold the low bytes of
// 32 consecutive field elements and bytes [32,64) hold the corresponding
// high bytes. Every shard this package produces or consumes follows this
// deinterleaved layout.
type Shard = []byte

// OriginalShards is an ordered sequence of original shards, indexed 0..K-1.
type OriginalShards = [][]byte

// RecoveryShards is an ordered sequence of recovery shards, indexed 0..M-1.
type RecoveryShards = [][]byte

// RestoredOriginals is a sparse mapping from original shard index to
// restored bytes, containing exactly the originals a Decoder call was
// asked to recover.
type RestoredOriginals = map[int][]byte
