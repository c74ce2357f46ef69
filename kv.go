// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Keyed store operation vocabulary.
// Read, Write, and End form a closed vocabulary over a keyed store.
// Programs describe store access without committing to a storage
// implementation; see store.go, trace.go, and storetrace.go for the
// interpreters that consume this vocabulary.
//
// Callers construct operations through ReadKey, WriteKey, and Terminate,
// never by naming the variants directly, so the vocabulary can grow
// without breaking callers.

// Read is the operation for looking up the value under a key.
// Its result is whatever value the interpreter resumes with; interpreters
// may legitimately diverge here (a real store answers from its table, a
// tracer answers with a fixed placeholder).
type Read[K comparable, V any] struct{ Key K }

func (Read[K, V]) OpResult() V { panic("phantom") }

// Write is the operation for storing a value under a key.
type Write[K comparable, V any] struct {
	Key   K
	Value V
}

func (Write[K, V]) OpResult() struct{} { panic("phantom") }

// End is the operation that terminates interpretation early.
// It produces no value: interpreters treat it like a completed program
// carrying the zero result. Frames after End are never evaluated.
type End struct{}

func (End) OpResult() struct{} { panic("phantom") }

// ReadKey creates a one-step program that looks up key and produces the
// value the interpreter answers with.
func ReadKey[V any, K comparable](key K) Program[V] {
	return Lift(Read[K, V]{Key: key})
}

// WriteKey creates a one-step program that stores value under key.
func WriteKey[K comparable, V any](key K, value V) Program[struct{}] {
	return Lift(Write[K, V]{Key: key, Value: value})
}

// Terminate creates a one-step program that stops interpretation.
func Terminate() Program[struct{}] {
	return Lift(End{})
}

// ReadThen fuses ReadKey + Bind: looks up key, passes the value to f.
func ReadThen[V, B any, K comparable](key K, f func(V) Program[B]) Program[B] {
	return Bind(ReadKey[V](key), f)
}

// WriteThen fuses WriteKey + Then: stores value under key, then runs next.
func WriteThen[B any, K comparable, V any](key K, value V, next Program[B]) Program[B] {
	return Then(WriteKey(key, value), next)
}
