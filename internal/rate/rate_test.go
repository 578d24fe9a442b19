package rate

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/gofec/leopard16/internal/gf16"
)

func randomOriginals(rng *rand.Rand, k, size int) [][]byte {
	out := make([][]byte, k)
	for i := range out {
		out[i] = make([]byte, size)
		rng.Read(out[i])
	}
	return out
}

func testRoundTrip(t *testing.T, r Rate, k, m, shardSize int, drop []int) {
	t.Helper()
	if !r.Feasible(k, m) {
		t.Fatalf("%s: shape k=%d m=%d reported infeasible", r.Name(), k, m)
	}

	engine := gf16.NewScalarEngine()
	rng := rand.New(rand.NewSource(int64(k*10000 + m)))
	originals := randomOriginals(rng, k, shardSize)

	recovery, err := r.Encode(engine, k, m, shardSize, originals)
	if err != nil {
		t.Fatalf("%s: encode: %v", r.Name(), err)
	}
	if len(recovery) != m {
		t.Fatalf("%s: encode returned %d recovery shards, want %d", r.Name(), len(recovery), m)
	}

	dropped := make(map[int]bool, len(drop))
	for _, i := range drop {
		dropped[i] = true
	}

	haveOriginals := make(map[int][]byte)
	haveRecoveries := make(map[int][]byte)
	var missing []int
	for i := 0; i < k; i++ {
		if dropped[i] {
			missing = append(missing, i)
			continue
		}
		haveOriginals[i] = originals[i]
	}
	for i := 0; i < m; i++ {
		if !dropped[k+i] {
			haveRecoveries[i] = recovery[i]
		}
	}

	restored, err := r.Reconstruct(engine, k, m, shardSize, haveOriginals, haveRecoveries, missing)
	if err != nil {
		t.Fatalf("%s: reconstruct: %v", r.Name(), err)
	}
	for _, i := range missing {
		got, ok := restored[i]
		if !ok {
			t.Fatalf("%s: original %d not restored", r.Name(), i)
		}
		if !bytes.Equal(got, originals[i]) {
			t.Fatalf("%s: original %d mismatch", r.Name(), i)
		}
	}
}

func TestHighRateRoundTrip(t *testing.T) {
	testRoundTrip(t, High, 3, 5, 64, []int{0, 2})
	testRoundTrip(t, High, 10, 10, 128, []int{0, 3, 5, 12})
	testRoundTrip(t, High, 100, 1, 64, []int{7})
}

func TestLowRateRoundTrip(t *testing.T) {
	testRoundTrip(t, Low, 1, 9, 64, []int{0})
	testRoundTrip(t, Low, 3, 5, 64, []int{1, 4})
	testRoundTrip(t, Low, 5, 20, 64, []int{0, 1, 2, 3, 4})
}

// TestLowRateRoundTripSparseErasure exercises the ErrorBitfield-pruned
// path: few enough shards missing relative to k+m that UseBitfield
// switches on (k+m-present <= k/4 here), which is otherwise never hit by
// TestLowRateRoundTrip's heavier erasure patterns above.
func TestLowRateRoundTripSparseErasure(t *testing.T) {
	testRoundTrip(t, Low, 8, 20, 64, []int{3})
}

func TestSelectPrefersHighRateOnTie(t *testing.T) {
	r, err := Select(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "high" {
		t.Fatalf("Select(10,10) = %s, want high", r.Name())
	}
}

func TestSelectFallsBackWhenOnlyOneFeasible(t *testing.T) {
	// K=1, M large: HighRate's ceilPow2(M)+K would overflow the field
	// domain long before M reaches this size, forcing LowRate.
	r, err := Select(1, 65535)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "low" {
		t.Fatalf("Select(1,65535) = %s, want low", r.Name())
	}
}

func TestFeasibilityMatchesShapeEnvelope(t *testing.T) {
	if !High.Feasible(32768, 32768) {
		t.Fatal("high rate should admit the symmetric maximum")
	}
	if !Low.Feasible(32768, 32768) {
		t.Fatal("low rate should admit the symmetric maximum")
	}
}
