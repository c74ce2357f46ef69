// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package freer provides effect descriptions as data and pluggable
// interpreters in Go.
//
// The core type [Program] is an immutable description of a sequence of
// operations and a final result. Building a Program performs no effects:
// [Pure], [Lift], [Bind], [Map], and [Then] only restructure data. Effects
// happen when exactly one interpreter walks the description with [Interpret].
//
// # Design Philosophy
//
// freer provides:
//   - A defunctionalized free-monad encoding: programs are frame chains, not closures
//   - F-bounded polymorphism for compile-time dispatch and devirtualization
//   - An iterative evaluation loop that is stack-safe for arbitrarily long programs
//
// # F-Bounded Architecture
//
// The package uses Go 1.26 F-bounded polymorphism (type T[P T[P]]) as a core
// architectural principle:
//
//   - [Op]: type Op[O Op[O, A], A any] — operations know their concrete type
//   - [Interpreter]: type Interpreter[H Interpreter[H, R], R any] — interpreters
//     know their concrete type
//
// # Building Programs
//
//   - [Pure]: Lift a plain value into a completed program
//   - [Lift]: Wrap a single operation as a one-step program
//   - [Bind]: Sequence, where the second program depends on the first result
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Pure(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//
// Bind satisfies the monad laws (left identity, right identity, associativity)
// observationally: law-related rewrites never change interpretation results or
// emitted effect sequences.
//
// # Interpreting Programs
//
//   - [Interpret]: Run a program to completion under an interpreter
//   - [RunPure]: Evaluate an effect-free program; panics on any operation
//   - [Step]: One-effect-at-a-time evaluation for external drivers
//
// Interpretation is an iterative trampoline over frame chains. Interpreters
// receive each operation via [Interpreter.Dispatch] and either resume the
// program with a value or short-circuit with a final result. A failing step
// stops interpretation: no later effects run.
//
// A Program is never consumed by interpretation. Running the same immutable
// description through several interpreters is an intentional feature, so
// interpreters can legitimately diverge on operation results (for example a
// tracer resumes reads with a placeholder) while agreeing on the sequence of
// operations they are shown.
//
// # Store Vocabulary
//
// The package ships one closed operation vocabulary for a keyed store:
// [Read], [Write], and [End], constructed via [ReadKey], [WriteKey], and
// [Terminate]. Four interpreters consume it:
//
//   - [RunStore]: an in-memory table owned by the interpreter instance
//   - [RunStoreStrict]: like RunStore, but a read miss stops interpretation
//     and surfaces a [ReadMissError]
//   - [RunTrace]: no storage; records Write lines and resumes reads with a
//     fixed placeholder
//   - [RunStoreTrace]: store semantics plus the write trace in one pass
//
// New interpreters are added without touching the vocabulary or any
// previously built Program value; operations expose structural dispatch
// methods so no central type switch needs editing.
package freer
