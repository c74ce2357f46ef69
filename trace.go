// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

import "fmt"

// Trace interpreter.
// The tracer has no real storage: it records one line per Write and
// resumes every Read with a fixed placeholder chosen by the caller.
// Running the same program through the tracer and through a store
// interpreter yields the same Write line sequence even though Read
// results diverge.

// TraceContext holds the state needed for trace operation dispatch.
type TraceContext[K comparable, V any] struct {
	// Lines is the interpreter-owned sink of recorded Write lines.
	Lines *[]string

	// Placeholder is the fixed value every Read resumes with.
	Placeholder V
}

// writeLine formats the recorded line for one Write operation.
func writeLine[K comparable, V any](key K, value V) string {
	return fmt.Sprintf("Write(%v, %v)", key, value)
}

// DispatchTrace handles Read in trace dispatch.
// The tracer has no table; it answers with the fixed placeholder.
func (o Read[K, V]) DispatchTrace(ctx *TraceContext[K, V]) (Resumed, bool) {
	return ctx.Placeholder, true
}

// DispatchTrace handles Write in trace dispatch.
func (o Write[K, V]) DispatchTrace(ctx *TraceContext[K, V]) (Resumed, bool) {
	*ctx.Lines = append(*ctx.Lines, writeLine(o.Key, o.Value))
	return struct{}{}, true
}

// traceInterpreter implements Interpreter for trace runs.
type traceInterpreter[K comparable, V, R any] struct {
	ctx *TraceContext[K, V]
}

// Dispatch implements Interpreter via structural interface assertion.
func (h *traceInterpreter[K, V, R]) Dispatch(op Operation) (Resumed, bool) {
	if _, ok := op.(End); ok {
		var zero R
		return zero, false
	}
	if top, ok := op.(interface {
		DispatchTrace(ctx *TraceContext[K, V]) (Resumed, bool)
	}); ok {
		return top.DispatchTrace(h.ctx)
	}
	unhandledOperation("TraceInterpreter")
	return nil, false
}

// TraceInterpreter creates a trace interpreter whose reads resume with
// placeholder. Returns a concrete interpreter and a function to retrieve
// the recorded lines.
func TraceInterpreter[R any, K comparable, V any](placeholder V) (*traceInterpreter[K, V, R], func() []string) {
	var lines []string
	ctx := &TraceContext[K, V]{Lines: &lines, Placeholder: placeholder}
	return &traceInterpreter[K, V, R]{ctx: ctx}, func() []string { return lines }
}

// RunTrace interprets a program without storage: every Read resumes with
// placeholder and every Write records a line. Returns the result and the
// recorded lines.
func RunTrace[K comparable, V, A any](placeholder V, m Program[A]) (A, []string) {
	var lines []string
	ctx := &TraceContext[K, V]{Lines: &lines, Placeholder: placeholder}
	h := &traceInterpreter[K, V, A]{ctx: ctx}
	result := Interpret(m, h)
	return result, lines
}

// ExecTrace interprets a program without storage and returns only the
// recorded lines.
func ExecTrace[K comparable, V, A any](placeholder V, m Program[A]) []string {
	_, lines := RunTrace[K](placeholder, m)
	return lines
}
