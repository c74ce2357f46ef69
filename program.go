// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer

// Program builders.
//
// Minimal definition: Pure (unit), Lift (one operation), and Bind are
// necessary and sufficient. Map and Then are derived operations kept as
// optimizations to avoid intermediate frame allocations.
//
// All builders are total: they only restructure data, never perform an
// effect, and never fail.

// identityResume passes the interpreter's response value through unchanged.
// It is the continuation of a freshly lifted operation: the program's value
// is whatever the operation naturally produces.
func identityResume(v Erased) Erased { return v }

// Lift wraps a single operation as a one-step program.
// The program suspends at an [EffectFrame] carrying the operation; its
// result is the value the interpreter resumes with.
//
// Type inference handles calls: Lift(Read[string, int]{Key: k}) infers
// O=Read[string, int], A=int.
func Lift[O Op[O, A], A any](op O) Program[A] {
	var zero A
	return Program[A]{
		Value: zero,
		Frame: &EffectFrame[Erased]{
			Operation: op,
			Resume:    identityResume,
			Next:      ReturnFrame{},
		},
	}
}

// Bind sequences program m with function f (monadic bind).
// The resulting program runs m, then passes the result to f to obtain the
// rest of the description. Bind performs no effects; it only links frames.
func Bind[A, B any](m Program[A], f func(A) Program[B]) Program[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		// Left identity: if m is already completed, apply f directly
		return f(m.Value)
	}

	// We need to type-erase here for the generic frame chain
	bindFrame := &BindFrame[Erased, Erased]{
		F: func(a Erased) Program[Erased] {
			result := f(a.(A))
			return Program[Erased]{
				Value: Erased(result.Value),
				Frame: result.Frame,
			}
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Program[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, bindFrame),
	}
}

// Map applies a pure function to the result of a program.
// Map is the functor action on continuations: the payload of every pending
// operation is untouched, only the value eventually produced changes.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but
// avoids the intermediate Pure program, making it the preferred choice
// when the transformation is pure (does not describe effects).
func Map[A, B any](m Program[A], f func(A) B) Program[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		// Optimization: if m is already completed, apply f directly
		return Pure(f(m.Value))
	}

	mapFrame := &MapFrame[Erased, Erased]{
		F: func(a Erased) Erased {
			return f(a.(A))
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Program[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, mapFrame),
	}
}

// Then sequences program m before n, discarding m's result.
// This is more efficient than Bind when the second program does not depend
// on the first result.
//
// Allocation note: Then avoids the closure capture of a continuation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[A, B any](m Program[A], n Program[B]) Program[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		// Optimization: if m is already completed, just return n
		return n
	}

	thenFrame := &ThenFrame[Erased, Erased]{
		Second: Program[Erased]{
			Value: Erased(n.Value),
			Frame: n.Frame,
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Program[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, thenFrame),
	}
}
