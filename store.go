// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import (
	"fmt"
	"maps"
)

// In-memory store interpreter.
// Each run owns its own table: the caller's initial map is cloned, mutated
// only by this interpreter's Write handling, and returned when the run
// completes. There is no process-wide table.

// StoreContext holds the state needed for store operation dispatch.
type StoreContext[K comparable, V any] struct {
	// Table is the interpreter-owned key/value mapping.
	Table map[K]V

	// Strict controls read-miss behavior: when true, a Read of an absent
	// key records Miss instead of resuming with the zero value.
	Strict bool

	// Miss is set by a strict read of an absent key. The interpreter
	// inspects it after dispatch to short-circuit.
	Miss *ReadMissError[K]
}

// ReadMissError reports a Read of a key that was never written.
// It carries the failing operation's key so the caller of the run can
// diagnose which step stopped interpretation.
type ReadMissError[K comparable] struct {
	Key K
}

func (e *ReadMissError[K]) Error() string {
	return fmt.Sprintf("freer: read miss on key %v", e.Key)
}

// DispatchStore handles Read in store dispatch.
// A miss resumes with the zero value; when strict it additionally records
// the failure for the interpreter to inspect. The resume value is always a
// valid V, so interpreters that note the miss and keep going can use it.
func (o Read[K, V]) DispatchStore(ctx *StoreContext[K, V]) (Resumed, bool) {
	v, ok := ctx.Table[o.Key]
	if !ok && ctx.Strict {
		ctx.Miss = &ReadMissError[K]{Key: o.Key}
	}
	return v, true
}

// DispatchStore handles Write in store dispatch.
func (o Write[K, V]) DispatchStore(ctx *StoreContext[K, V]) (Resumed, bool) {
	ctx.Table[o.Key] = o.Value
	return struct{}{}, true
}

// storeInterpreter implements Interpreter for lenient in-memory runs.
type storeInterpreter[K comparable, V, R any] struct {
	ctx *StoreContext[K, V]
}

// Dispatch implements Interpreter via structural interface assertion,
// so the vocabulary can grow new store operations without editing this
// method.
func (h *storeInterpreter[K, V, R]) Dispatch(op Operation) (Resumed, bool) {
	if _, ok := op.(End); ok {
		var zero R
		return zero, false
	}
	if sop, ok := op.(interface {
		DispatchStore(ctx *StoreContext[K, V]) (Resumed, bool)
	}); ok {
		return sop.DispatchStore(h.ctx)
	}
	unhandledOperation("StoreInterpreter")
	return nil, false
}

// strictStoreInterpreter implements Interpreter for strict in-memory runs.
// A read miss short-circuits with Left; no operation after the failing
// one is dispatched.
type strictStoreInterpreter[K comparable, V, A any] struct {
	ctx *StoreContext[K, V]
}

// Dispatch implements Interpreter for strict store handling.
func (h *strictStoreInterpreter[K, V, A]) Dispatch(op Operation) (Resumed, bool) {
	if _, ok := op.(End); ok {
		var zero A
		return Right[*ReadMissError[K]](zero), false
	}
	if sop, ok := op.(interface {
		DispatchStore(ctx *StoreContext[K, V]) (Resumed, bool)
	}); ok {
		v, _ := sop.DispatchStore(h.ctx)
		if h.ctx.Miss != nil {
			return Left[*ReadMissError[K], A](h.ctx.Miss), false
		}
		return v, true
	}
	unhandledOperation("StoreInterpreter")
	return nil, false
}

// StoreInterpreter creates a lenient in-memory interpreter seeded with a
// clone of initial. Returns a concrete interpreter and a function to
// retrieve the current table.
func StoreInterpreter[R any, K comparable, V any](initial map[K]V) (*storeInterpreter[K, V, R], func() map[K]V) {
	table := cloneTable(initial)
	h := &storeInterpreter[K, V, R]{ctx: &StoreContext[K, V]{Table: table}}
	return h, func() map[K]V { return table }
}

// RunStore interprets a program against an in-memory table seeded with a
// clone of initial. A Read of an absent key resumes with the zero value.
// Returns the result and the final table.
func RunStore[K comparable, V, A any](initial map[K]V, m Program[A]) (A, map[K]V) {
	table := cloneTable(initial)
	h := &storeInterpreter[K, V, A]{ctx: &StoreContext[K, V]{Table: table}}
	result := Interpret(m, h)
	return result, table
}

// RunStoreStrict interprets a program against an in-memory table seeded
// with a clone of initial. A Read of an absent key stops interpretation at
// that step and surfaces the failing key as Left; effects before the miss
// remain visible in the returned table, effects after it never happen.
func RunStoreStrict[K comparable, V, A any](initial map[K]V, m Program[A]) (Either[*ReadMissError[K], A], map[K]V) {
	table := cloneTable(initial)
	ctx := &StoreContext[K, V]{Table: table, Strict: true}
	h := &strictStoreInterpreter[K, V, A]{ctx: ctx}
	wrapped := Map(m, func(a A) Either[*ReadMissError[K], A] {
		return Right[*ReadMissError[K]](a)
	})
	return Interpret(wrapped, h), table
}

// EvalStore interprets a program against an in-memory table and returns
// only the result.
func EvalStore[K comparable, V, A any](initial map[K]V, m Program[A]) A {
	result, _ := RunStore(initial, m)
	return result
}

// ExecStore interprets a program against an in-memory table and returns
// only the final table.
func ExecStore[K comparable, V, A any](initial map[K]V, m Program[A]) map[K]V {
	_, table := RunStore(initial, m)
	return table
}

// cloneTable copies the caller's seed so the interpreter owns its table.
func cloneTable[K comparable, V any](initial map[K]V) map[K]V {
	if initial == nil {
		return make(map[K]V)
	}
	return maps.Clone(initial)
}
