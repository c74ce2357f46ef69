// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Interpreter is the F-bounded interface for program interpreters.
// The self-referencing constraint H Interpreter[H, R] gives the compiler
// knowledge of the concrete interpreter type at compile time.
//
// The Dispatch method returns (resumeValue, true) to continue the program,
// or (finalResult, false) to short-circuit and return immediately. A failed
// effect short-circuits, so no operation after the failing one is ever
// dispatched.
type Interpreter[H Interpreter[H, R], R any] interface {
	Dispatch(op Operation) (Resumed, bool)
}

// interpreterFunc wraps a dispatch function as a concrete Interpreter.
// Returns (resumeValue, true) to continue, or (finalResult, false) to
// short-circuit.
type interpreterFunc[R any] struct {
	f func(op Operation) (Resumed, bool)
}

func (h *interpreterFunc[R]) Dispatch(op Operation) (Resumed, bool) {
	return h.f(op)
}

// InterpretFunc creates an interpreter from a dispatch function.
// The function receives each operation and returns (resumeValue, true)
// to continue the program, or (finalResult, false) to short-circuit.
//
// Example:
//
//	InterpretFunc[int](func(op Operation) (Resumed, bool) {
//	    switch o := op.(type) {
//	    case Read[string, int]:
//	        return 42, true // resume with value
//	    case Write[string, int]:
//	        fmt.Println(o.Key, o.Value)
//	        return struct{}{}, true
//	    default:
//	        panic("unhandled operation")
//	    }
//	})
func InterpretFunc[R any](f func(op Operation) (Resumed, bool)) *interpreterFunc[R] {
	return &interpreterFunc[R]{f: f}
}

// pureEval is a sentinel interpreter for RunPure.
// Its Dispatch method unconditionally panics on any operation.
type pureEval[R any] struct{}

func (pureEval[R]) Dispatch(Operation) (Resumed, bool) {
	panic("freer: unhandled operation in pure program - use Interpret")
}

// frameProcessor is an F-bounded interface for the two frame evaluation
// strategies. The type parameter P is the concrete processor
// (self-referential bound), R is the result type. Shared frame iteration
// lives in evalFrames; processors define only the EffectFrame and
// ReturnFrame handling that diverges between use cases.
type frameProcessor[P frameProcessor[P, R], R any] interface {
	processEffect(f *EffectFrame[Erased], rest Frame) (Erased, Frame, R, bool)
	processReturn(current Erased) R
}

// evalFrames is the unified F-bounded iterative evaluator for frame chains.
// The processor type P is known at monomorphization time, enabling the
// compiler to devirtualize processEffect/processReturn calls. Two
// processors:
//   - interpProcessor[H, R]: dispatches EffectFrame to an interpreter
//     (Interpret/RunPure)
//   - stepProcessor[A]: yields a Suspension at EffectFrame (Step)
//
// The loop is iterative by construction: arbitrarily long programs evaluate
// in constant stack space, which is a required robustness property, not an
// optimization.
func evalFrames[P frameProcessor[P, R], R any](current Erased, frame Frame, p P) R {
	for {
		// Flatten chained frames
		for {
			cf, ok := frame.(*chainedFrame)
			if !ok {
				break
			}
			if nested, ok := cf.first.(*chainedFrame); ok {
				frame = &chainedFrame{
					first: nested.first,
					rest:  ChainFrames(nested.rest, cf.rest),
				}
				continue
			}
			switch f := cf.first.(type) {
			case ReturnFrame:
				frame = cf.rest
			case *BindFrame[Erased, Erased]:
				next := f.F(current)
				current = Erased(next.Value)
				frame = ChainFrames(ChainFrames(next.Frame, f.Next), cf.rest)
			case *MapFrame[Erased, Erased]:
				current = f.F(current)
				frame = ChainFrames(f.Next, cf.rest)
			case *ThenFrame[Erased, Erased]:
				current = Erased(f.Second.Value)
				frame = ChainFrames(ChainFrames(f.Second.Frame, f.Next), cf.rest)
			case *EffectFrame[Erased]:
				newCurrent, newFrame, result, ok := p.processEffect(f, cf.rest)
				if !ok {
					return result
				}
				current = newCurrent
				frame = newFrame
			default:
				if u, ok := f.(interface{ Unwind(Erased) (Erased, Frame) }); ok {
					var next Frame
					current, next = u.Unwind(current)
					frame = ChainFrames(next, cf.rest)
					continue
				}
				panic("freer: unknown frame type in chain")
			}
			break
		}
		if _, ok := frame.(*chainedFrame); ok {
			continue
		}

		switch f := frame.(type) {
		case ReturnFrame:
			return p.processReturn(current)
		case *BindFrame[Erased, Erased]:
			next := f.F(current)
			current = Erased(next.Value)
			frame = ChainFrames(next.Frame, f.Next)
		case *MapFrame[Erased, Erased]:
			current = f.F(current)
			frame = f.Next
		case *ThenFrame[Erased, Erased]:
			current = Erased(f.Second.Value)
			frame = ChainFrames(f.Second.Frame, f.Next)
		case *EffectFrame[Erased]:
			newCurrent, newFrame, result, ok := p.processEffect(f, f.Next)
			if !ok {
				return result
			}
			current = newCurrent
			frame = newFrame
		default:
			if u, ok := frame.(interface{ Unwind(Erased) (Erased, Frame) }); ok {
				current, frame = u.Unwind(current)
				continue
			}
			panic("freer: unknown frame type")
		}
	}
}

// interpProcessor adapts an F-bounded Interpreter for use with evalFrames.
// Dispatches EffectFrame operations to the interpreter and resumes or
// short-circuits.
type interpProcessor[H Interpreter[H, R], R any] struct{ h H }

func (p interpProcessor[H, R]) processEffect(f *EffectFrame[Erased], rest Frame) (Erased, Frame, R, bool) {
	v, shouldResume := p.h.Dispatch(f.Operation)
	if !shouldResume {
		return nil, nil, v.(R), false
	}
	var zero R
	return f.Resume(v), rest, zero, true
}

func (p interpProcessor[H, R]) processReturn(current Erased) R {
	return current.(R)
}

// Interpret evaluates a program with an interpreter.
// When encountering an [EffectFrame], it dispatches the operation to the
// interpreter. The interpreter returns (resumeValue, true) to continue, or
// (finalResult, false) to short-circuit.
//
// Interpret never mutates the program: the same description can be handed
// to different interpreters, or to the same interpreter again after a
// failure, and each run starts from the beginning.
//
// Example:
//
//	result := Interpret(program, InterpretFunc[int](func(op Operation) (Resumed, bool) {
//	    switch op.(type) {
//	    case Read[string, int]:
//	        return 42, true
//	    default:
//	        panic("unhandled operation")
//	    }
//	}))
func Interpret[H Interpreter[H, R], R any](m Program[R], h H) R {
	return evalFrames(Erased(m.Value), m.Frame, interpProcessor[H, R]{h: h})
}

// RunPure evaluates a program containing no operations to completion.
// It iteratively processes frames until reaching ReturnFrame, avoiding
// stack growth from recursive calls.
//
// Panics if the program contains [EffectFrame]. Use [Interpret] for
// programs with operations.
func RunPure[A any](m Program[A]) A {
	return evalFrames(Erased(m.Value), m.Frame, interpProcessor[pureEval[A], A]{h: pureEval[A]{}})
}

// ChainFrames links two frame chains together.
// Returns the other operand when either side is ReturnFrame (the identity
// element for frame composition), avoiding unnecessary chainedFrame
// allocation.
//
// Construction is O(1) in all cases: returns the other operand or creates
// one chainedFrame node.
func ChainFrames(first, second Frame) Frame {
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}

// chainedFrame represents a frame followed by more frames.
// This enables composing frame chains without mutation.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}
