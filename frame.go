// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Erased represents a type-erased value in the defunctionalized frame chain.
// Frame types use Erased parameters to process heterogeneous value types
// through a homogeneous evaluation pipeline. Concrete types are recovered
// via type assertions at frame boundaries.
type Erased = any

// Frame is the interface for defunctionalized continuation frames.
// Implementations carry the data needed to continue computation.
// Dispatch uses type switches, not tags — Frame is a pure marker interface.
type Frame interface {
	frame() // unexported marker method
}

// ReturnFrame signals a completed description.
// The evaluator returns the current value as the final result.
// A Program headed by ReturnFrame is the Pure case of the free monad.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame represents monadic sequencing: Bind(m, f)
// Type parameters:
//   - A: input type (value from previous step)
//   - B: output type (result of applying F)
type BindFrame[A, B any] struct {
	// F is the continuation function to apply to the input value.
	F func(A) Program[B]

	// Next is the continuation frame after F completes.
	Next Frame
}

func (*BindFrame[A, B]) frame() {}

// MapFrame represents functor mapping: Map(m, f)
// Type parameters:
//   - A: input type (value to transform)
//   - B: output type (result of transformation)
type MapFrame[A, B any] struct {
	// F is the transformation function.
	F func(A) B

	// Next is the continuation frame after transformation.
	Next Frame
}

func (*MapFrame[A, B]) frame() {}

// ThenFrame represents sequencing with discard: Then(m, n)
// Type parameters:
//   - A: discarded type (result of first step, unused)
//   - B: output type (result of second step)
type ThenFrame[A, B any] struct {
	// Second is the program to evaluate after discarding the first result.
	Second Program[B]

	// Next is the continuation frame after Second completes.
	Next Frame
}

func (*ThenFrame[A, B]) frame() {}

// EffectFrame represents one pending operation.
// The interpreter dispatches on the operation and resumes with a value.
// A Program headed by EffectFrame is the Effect case of the free monad;
// Resume together with Next is the continuation the operation carries.
// Type parameters:
//   - A: the type the operation produces when resumed
type EffectFrame[A any] struct {
	// Operation is the operation for interpreter dispatch.
	Operation Operation

	// Resume is called with the interpreter's response value.
	Resume func(A) Erased

	// Next is the continuation frame after resumption.
	Next Frame
}

func (*EffectFrame[A]) frame() {}

// Program is an immutable description of a sequence of operations and a
// final result. Building a Program performs no effects and never mutates
// shared state; sequencing always yields a new Program value. Unlike a
// closure-based encoding, Program carries explicit frame data, so it can
// be walked iteratively and interpreted any number of times.
type Program[A any] struct {
	// Value holds the final value if this is a completed description.
	// Valid when Frame is ReturnFrame.
	Value A

	// Frame holds the next continuation frame.
	Frame Frame
}

// Pure creates a zero-step, already-complete program carrying the value.
func Pure[A any](a A) Program[A] {
	return Program[A]{
		Value: a,
		Frame: ReturnFrame{},
	}
}

// Suspend creates a program suspended at the given frame.
// This is the primitive constructor for programs headed by custom frames.
func Suspend[A any](frame Frame) Program[A] {
	var zero A
	return Program[A]{
		Value: zero,
		Frame: frame,
	}
}
