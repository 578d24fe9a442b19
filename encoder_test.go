package leopard16

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncoderAddOriginalShardOrder(t *testing.T) {
	enc, err := New(3, 2, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := enc.AddOriginalShard(padTo64(string(rune('a' + i)))); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if _, err := enc.Encode(); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestEncoderTooManyShards(t *testing.T) {
	enc, err := New(2, 2, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := enc.AddOriginalShard(padTo64("a")); err != nil {
		t.Fatal(err)
	}
	if err := enc.AddOriginalShard(padTo64("b")); err != nil {
		t.Fatal(err)
	}
	if err := enc.AddOriginalShard(padTo64("c")); !errors.Is(err, ErrTooManyShards) {
		t.Fatalf("got %v, want ErrTooManyShards", err)
	}
}

func TestEncoderBadShardSize(t *testing.T) {
	enc, err := New(2, 2, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := enc.AddOriginalShard(make([]byte, 63)); !errors.Is(err, ErrBadShardSize) {
		t.Fatalf("got %v, want ErrBadShardSize", err)
	}
}

func TestEncoderNotEnoughShards(t *testing.T) {
	enc, err := New(3, 2, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := enc.AddOriginalShard(padTo64("a")); err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Encode(); !errors.Is(err, ErrNotEnoughShards) {
		t.Fatalf("got %v, want ErrNotEnoughShards", err)
	}
}

func TestEncoderVerify(t *testing.T) {
	enc, err := New(4, 3, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := enc.AddOriginalShard(bytes.Repeat([]byte{byte(i + 1)}, 64)); err != nil {
			t.Fatal(err)
		}
	}
	recovery, err := enc.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	ok, err := enc.Verify(recovery)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("verify reported mismatch for correctly encoded recovery")
	}

	corrupted := make([][]byte, len(recovery))
	copy(corrupted, recovery)
	corrupted[0] = bytes.Repeat([]byte{0xFF}, 64)
	ok, err = enc.Verify(corrupted)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("verify reported match for corrupted recovery")
	}
}

func TestEncoderReset(t *testing.T) {
	enc, err := New(2, 2, 64)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := enc.AddOriginalShard(padTo64("a")); err != nil {
		t.Fatal(err)
	}
	enc.Reset()
	if _, err := enc.Encode(); !errors.Is(err, ErrNotEnoughShards) {
		t.Fatalf("got %v after reset, want ErrNotEnoughShards", err)
	}
	if err := enc.AddOriginalShard(padTo64("a")); err != nil {
		t.Fatal(err)
	}
	if err := enc.AddOriginalShard(padTo64("b")); err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Encode(); err != nil {
		t.Fatalf("encode after reset+refill: %v", err)
	}
}

func TestNewRejectsUnsupportedShape(t *testing.T) {
	if _, err := New(0, 5, 64); !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("K=0: got %v, want ErrUnsupportedShape", err)
	}
	if _, err := New(5, 0, 64); !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("M=0: got %v, want ErrUnsupportedShape", err)
	}
}

func TestNewRejectsBadShardBytes(t *testing.T) {
	if _, err := New(3, 3, 0); !errors.Is(err, ErrBadShardSize) {
		t.Fatalf("got %v, want ErrBadShardSize", err)
	}
	if _, err := New(3, 3, 65); !errors.Is(err, ErrBadShardSize) {
		t.Fatalf("got %v, want ErrBadShardSize", err)
	}
}

func TestPinnedRateEncoderRejectsInfeasibleShape(t *testing.T) {
	// M=65535 makes HighRate's chunk ceilPow2(M)=65536, so adding even K=1
	// overflows the field domain; LowRate handles it instead.
	if _, err := NewHighRateEncoder(1, 65535, 64); !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("got %v, want ErrUnsupportedShape", err)
	}
	if _, err := NewLowRateEncoder(1, 65535, 64); err != nil {
		t.Fatalf("low rate should accept K=1,M=65535: %v", err)
	}
}
