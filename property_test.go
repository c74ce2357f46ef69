// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/freer"
)

const propertyN = 500

var propertyKeys = []string{"k1", "k2", "k3", "k4"}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randStep returns a random continuation mixing writes, reads, and pure
// transformations.
func randStep(rng *rand.Rand) func(string) freer.Program[string] {
	key := propertyKeys[rng.IntN(len(propertyKeys))]
	val := randString(rng)
	switch rng.IntN(3) {
	case 0:
		return func(s string) freer.Program[string] {
			return freer.WriteThen(key, s+val, freer.Pure(val))
		}
	case 1:
		return func(string) freer.Program[string] {
			return freer.ReadKey[string](key)
		}
	default:
		return func(s string) freer.Program[string] {
			return freer.Pure(s + val)
		}
	}
}

// randProgram builds a random program of n sequenced steps.
func randProgram(rng *rand.Rand, n int) freer.Program[string] {
	p := freer.Pure(randString(rng))
	for range n {
		p = freer.Bind(p, randStep(rng))
	}
	return p
}

// sameObservation interprets both programs with the combined store+trace
// interpreter and fails unless results, final tables, and write traces all
// agree. This is the observational equality the laws are stated in.
func sameObservation[A comparable](t *testing.T, p, q freer.Program[A]) {
	t.Helper()
	rp, tp, lp := freer.RunStoreTrace(map[string]string{"k1": "seed"}, p)
	rq, tq, lq := freer.RunStoreTrace(map[string]string{"k1": "seed"}, q)
	if rp != rq {
		t.Fatalf("results differ: %v vs %v", rp, rq)
	}
	if !maps.Equal(tp, tq) {
		t.Fatalf("tables differ: %v vs %v", tp, tq)
	}
	if !slices.Equal(lp, lq) {
		t.Fatalf("traces differ: %v vs %v", lp, lq)
	}
}

// --- Group 1: Monad Laws ---

// TestPropertyBindLeftIdentity: Bind(Pure(a), k) ≡ k(a)
func TestPropertyBindLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randString(rng)
		k := randStep(rng)
		sameObservation(t, freer.Bind(freer.Pure(a), k), k(a))
	}
}

// TestPropertyBindRightIdentity: Bind(p, Pure) ≡ p
func TestPropertyBindRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for range propertyN {
		p := randProgram(rng, rng.IntN(6))
		sameObservation(t, freer.Bind(p, freer.Pure[string]), p)
	}
}

// TestPropertyBindAssociativity:
// Bind(Bind(p, f), g) ≡ Bind(p, func(x) Bind(f(x), g))
func TestPropertyBindAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2))
	for range propertyN {
		p := randProgram(rng, rng.IntN(4))
		f := randStep(rng)
		g := randStep(rng)
		left := freer.Bind(freer.Bind(p, f), g)
		right := freer.Bind(p, func(x string) freer.Program[string] {
			return freer.Bind(f(x), g)
		})
		sameObservation(t, left, right)
	}
}

// --- Group 2: Functor Laws ---

// TestPropertyFunctorIdentity: Map(p, id) ≡ p, for every head variant.
func TestPropertyFunctorIdentity(t *testing.T) {
	idString := func(s string) string { return s }
	idUnit := func(u struct{}) struct{} { return u }

	// Pure head
	sameObservation(t, freer.Map(freer.Pure("x"), idString), freer.Pure("x"))
	// Read head
	readP := freer.ReadKey[string]("k1")
	sameObservation(t, freer.Map(readP, idString), readP)
	// Write head
	writeP := freer.WriteKey("k2", "v")
	sameObservation(t, freer.Map(writeP, idUnit), writeP)
	// End head
	endP := freer.Terminate()
	sameObservation(t, freer.Map(endP, idUnit), endP)

	// Random programs
	rng := rand.New(rand.NewPCG(42, 3))
	for range propertyN {
		p := randProgram(rng, rng.IntN(6))
		sameObservation(t, freer.Map(p, idString), p)
	}
}

// TestPropertyFunctorComposition: Map(Map(p, f), g) ≡ Map(p, g∘f)
func TestPropertyFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 4))
	for range propertyN {
		p := randProgram(rng, rng.IntN(6))
		suffix := randString(rng)
		f := func(s string) string { return s + suffix }
		g := func(s string) string { return string(rune('a'+len(s)%26)) + s }
		left := freer.Map(freer.Map(p, f), g)
		right := freer.Map(p, func(s string) string { return g(f(s)) })
		sameObservation(t, left, right)
	}
}

// --- Group 3: Determinism of Description ---

// TestPropertyDeterminism: the same sequence of builder calls yields
// programs with identical results and effect traces.
func TestPropertyDeterminism(t *testing.T) {
	for i := range 50 {
		rngA := rand.New(rand.NewPCG(7, uint64(i)))
		rngB := rand.New(rand.NewPCG(7, uint64(i)))
		pA := randProgram(rngA, 8)
		pB := randProgram(rngB, 8)
		sameObservation(t, pA, pB)
	}
}
