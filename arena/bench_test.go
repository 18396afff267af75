package arena_test

import (
	"testing"

	"github.com/katalvlaran/entwine/arena"
)

// BenchmarkTable_InsertRemove measures steady-state slot recycling: every
// iteration after the first reuses the slot freed by the previous one.
func BenchmarkTable_InsertRemove(b *testing.B) {
	tab := arena.NewTable[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := tab.Insert(i)
		_ = tab.Remove(h)
	}
}

// BenchmarkTable_Get measures handle resolution on a populated table.
func BenchmarkTable_Get(b *testing.B) {
	tab := arena.NewTable[int]()
	hs := make([]arena.Handle, 1024)
	for i := range hs {
		hs[i] = tab.Insert(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tab.Get(hs[i&1023])
	}
}
