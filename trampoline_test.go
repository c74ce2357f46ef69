// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freer_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/freer"
)

const longChainN = 100_000

func TestLongWriteChainStore(t *testing.T) {
	m := freer.Pure(struct{}{})
	for i := range longChainN {
		m = freer.Then(m, freer.WriteKey("k"+strconv.Itoa(i), i))
	}

	_, table := freer.RunStore(map[string]int{}, m)
	if len(table) != longChainN {
		t.Fatalf("len(table) = %d, want %d", len(table), longChainN)
	}
	if table["k99999"] != 99999 {
		t.Fatalf(`table["k99999"] = %d, want 99999`, table["k99999"])
	}
}

func TestLongWriteChainTrace(t *testing.T) {
	m := freer.Pure(struct{}{})
	for i := range longChainN {
		m = freer.Then(m, freer.WriteKey("k", i))
	}

	_, lines := freer.RunTrace[string](0, m)
	if len(lines) != longChainN {
		t.Fatalf("len(lines) = %d, want %d", len(lines), longChainN)
	}
}

func TestLongBindChainPure(t *testing.T) {
	m := freer.Pure(0)
	for range longChainN {
		m = freer.Bind(m, func(x int) freer.Program[int] {
			return freer.Pure(x + 1)
		})
	}

	got := freer.RunPure(m)
	if got != longChainN {
		t.Fatalf("got %d, want %d", got, longChainN)
	}
}

func TestLongReadChain(t *testing.T) {
	m := freer.Pure("")
	for range longChainN {
		m = freer.Bind(m, func(string) freer.Program[string] {
			return freer.ReadKey[string]("k")
		})
	}

	got, _ := freer.RunStore(map[string]string{"k": "v"}, m)
	if got != "v" {
		t.Fatalf("got %q, want %q", got, "v")
	}
}

func TestLongEffectfulBindChain(t *testing.T) {
	// Each step reads the counter, increments it, writes it back.
	m := freer.Pure(0)
	for range longChainN {
		m = freer.Bind(m, func(int) freer.Program[int] {
			return freer.ReadThen("n", func(n int) freer.Program[int] {
				return freer.WriteThen("n", n+1, freer.Pure(n+1))
			})
		})
	}

	got, table := freer.RunStore(map[string]int{}, m)
	if got != longChainN {
		t.Fatalf("got %d, want %d", got, longChainN)
	}
	if table["n"] != longChainN {
		t.Fatalf(`table["n"] = %d, want %d`, table["n"], longChainN)
	}
}

func TestDeepNestedThen(t *testing.T) {
	// Right-nesting: each iteration buries the previous program deeper
	// inside Second, so evaluation must unfold without recursion.
	n := freer.Pure(0)
	for i := range longChainN {
		n = freer.Then(freer.WriteKey("k", i), n)
	}

	got, table := freer.RunStore(map[string]int{}, n)
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	// Writes run outermost-first, so the last value written is i=0.
	if table["k"] != 0 {
		t.Fatalf(`table["k"] = %d, want 0`, table["k"])
	}
}

func TestLongChainMapFrames(t *testing.T) {
	m := freer.ReadKey[int]("k")
	for range longChainN {
		m = freer.Map(m, func(x int) int { return x + 1 })
	}

	got, _ := freer.RunStore(map[string]int{"k": 1}, m)
	if got != longChainN+1 {
		t.Fatalf("got %d, want %d", got, longChainN+1)
	}
}
