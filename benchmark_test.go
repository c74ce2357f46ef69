// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/freer"
)

func BenchmarkRunPureBindChain(b *testing.B) {
	m := freer.Pure(0)
	for range 100 {
		m = freer.Bind(m, func(x int) freer.Program[int] {
			return freer.Pure(x + 1)
		})
	}

	for b.Loop() {
		freer.RunPure(m)
	}
}

func BenchmarkRunPureMapChain(b *testing.B) {
	m := freer.Pure(0)
	for range 100 {
		m = freer.Map(m, func(x int) int { return x + 1 })
	}

	for b.Loop() {
		freer.RunPure(m)
	}
}

func BenchmarkRunStoreScenario(b *testing.B) {
	m := scenarioProgram()

	for b.Loop() {
		freer.RunStore(map[string]string{}, m)
	}
}

func BenchmarkRunStoreWriteChain(b *testing.B) {
	m := freer.Pure(struct{}{})
	for i := range 100 {
		m = freer.Then(m, freer.WriteKey("k"+strconv.Itoa(i), i))
	}

	for b.Loop() {
		freer.RunStore(map[string]int{}, m)
	}
}

func BenchmarkRunTraceWriteChain(b *testing.B) {
	m := freer.Pure(struct{}{})
	for i := range 100 {
		m = freer.Then(m, freer.WriteKey("k", i))
	}

	for b.Loop() {
		freer.RunTrace[string](0, m)
	}
}

func BenchmarkStepDriver(b *testing.B) {
	m := freer.Pure(0)
	for range 100 {
		m = freer.Bind(m, func(int) freer.Program[int] {
			return freer.ReadKey[int]("k")
		})
	}

	for b.Loop() {
		result, susp := freer.Step(m)
		for susp != nil {
			result, susp = susp.Resume(1)
		}
		_ = result
	}
}

func BenchmarkBuildBindChain(b *testing.B) {
	for b.Loop() {
		m := freer.Pure(0)
		for range 100 {
			m = freer.Bind(m, func(x int) freer.Program[int] {
				return freer.Pure(x + 1)
			})
		}
	}
}

func TestStepAllocationsPure(t *testing.T) {
	m := freer.Pure(42)
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = freer.Step(m)
	})
	if allocs > 0 {
		t.Errorf("Step(Pure) allocs = %v; want 0", allocs)
	}
}
