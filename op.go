// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Operation is the interface for operations in interpreter dispatch.
// All values passed as the op parameter to Interpreter.Dispatch implement
// this interface.
type Operation any

// Resumed is the interface for values flowing through operation dispatch
// and resumption. Interpreter dispatch callbacks accept and return Resumed.
type Resumed any

// Op is the F-bounded interface for operations.
// Each vocabulary defines concrete types implementing Op with the
// appropriate result type parameter. The self-referencing constraint gives
// the compiler knowledge of both the concrete operation type and its
// result type.
//
// Example:
//
//	type Read[K comparable, V any] struct{ Key K }
//	func (Read[K, V]) OpResult() V { panic("phantom") }
type Op[O Op[O, A], A any] interface {
	OpResult() A // phantom type marker for result
}

// Phantom is an embeddable zero-size type that provides the [Op] result
// marker. Embed Phantom[A] in an operation struct to satisfy [Op] without
// writing a manual OpResult method.
//
// Example:
//
//	type Ping struct{ freer.Phantom[struct{}] }
//	// Ping satisfies Op[Ping, struct{}] via promoted OpResult() struct{}
type Phantom[A any] struct{}

// OpResult implements the phantom type marker for [Op].
func (Phantom[A]) OpResult() A { panic("phantom") }

// unhandledOperation panics with a descriptive message for unmatched
// operations. Extracted as a noinline function so that Dispatch methods
// remain inlineable.
//
//go:noinline
func unhandledOperation(interpreter string) {
	panic("freer: unhandled operation in " + interpreter)
}
