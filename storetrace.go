// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Composed store+trace interpreter.
// This avoids running a program twice when both real store semantics and
// the write trace are wanted: one interpreter dispatches both concerns
// in a single pass.

// storeTraceInterpreter implements Interpreter for combined runs.
type storeTraceInterpreter[K comparable, V, R any] struct {
	store *StoreContext[K, V]
	trace *TraceContext[K, V]
}

// Dispatch implements Interpreter for the composed store+trace interpreter.
// Write records its trace line, then takes effect in the table; Read
// answers from the table, not the placeholder.
func (h *storeTraceInterpreter[K, V, R]) Dispatch(op Operation) (Resumed, bool) {
	if _, ok := op.(End); ok {
		var zero R
		return zero, false
	}
	if w, ok := op.(Write[K, V]); ok {
		_, _ = w.DispatchTrace(h.trace)
		return w.DispatchStore(h.store)
	}
	if sop, ok := op.(interface {
		DispatchStore(ctx *StoreContext[K, V]) (Resumed, bool)
	}); ok {
		return sop.DispatchStore(h.store)
	}
	unhandledOperation("StoreTraceInterpreter")
	return nil, false
}

// RunStoreTrace interprets a program against an in-memory table seeded
// with a clone of initial while recording one line per Write.
// Returns (result, final table, recorded lines). Reads are lenient: an
// absent key resumes with the zero value.
func RunStoreTrace[K comparable, V, A any](initial map[K]V, m Program[A]) (A, map[K]V, []string) {
	table := cloneTable(initial)
	var lines []string
	h := &storeTraceInterpreter[K, V, A]{
		store: &StoreContext[K, V]{Table: table},
		trace: &TraceContext[K, V]{Lines: &lines},
	}
	result := Interpret(m, h)
	return result, table, lines
}
