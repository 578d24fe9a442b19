package leopard16

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecoderInvalidIndex(t *testing.T) {
	dec, err := NewDecoder(3, 5, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := dec.AddOriginalShard(3, padTo64("x")); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("got %v, want ErrInvalidIndex", err)
	}
	if err := dec.AddRecoveryShard(-1, padTo64("x")); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("got %v, want ErrInvalidIndex", err)
	}
}

func TestDecoderDecodeOnlyRestoresRequestedSubset(t *testing.T) {
	const k, m, shardSize = 6, 4, 64
	originals := make([][]byte, k)
	for i := range originals {
		originals[i] = bytes.Repeat([]byte{byte(i + 1)}, shardSize)
	}
	recovery, err := Encode(k, m, originals)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	dec, err := NewDecoder(k, m, shardSize)
	if err != nil {
		t.Fatalf("new decoder: %v", err)
	}
	for i := 2; i < k; i++ {
		if err := dec.AddOriginalShard(i, originals[i]); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := dec.AddRecoveryShard(i, recovery[i]); err != nil {
			t.Fatal(err)
		}
	}

	restored, err := dec.DecodeOnly(0)
	if err != nil {
		t.Fatalf("decode only: %v", err)
	}
	if len(restored) != 1 {
		t.Fatalf("got %d restored shards, want 1", len(restored))
	}
	if !bytes.Equal(restored[0], originals[0]) {
		t.Fatal("restored[0] mismatch")
	}
	if _, ok := restored[1]; ok {
		t.Fatal("DecodeOnly restored an index that wasn't requested")
	}
}

func TestDecoderReset(t *testing.T) {
	dec, err := NewDecoder(3, 3, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := dec.AddOriginalShard(0, padTo64("a")); err != nil {
		t.Fatal(err)
	}
	dec.Reset()
	if _, err := dec.Decode(); !errors.Is(err, ErrNotEnoughShards) {
		t.Fatalf("got %v after reset, want ErrNotEnoughShards", err)
	}
}

func TestDecodeOnlyRejectsInvalidIndex(t *testing.T) {
	dec, err := NewDecoder(3, 3, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := dec.DecodeOnly(99); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("got %v, want ErrInvalidIndex", err)
	}
}
