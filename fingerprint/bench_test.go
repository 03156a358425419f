package fingerprint_test

import (
	"testing"

	"github.com/powergraph/powergraph/assemble"
	"github.com/powergraph/powergraph/fingerprint"
	"github.com/powergraph/powergraph/library"
	"github.com/powergraph/powergraph/search"
	"github.com/powergraph/powergraph/typeset"
)

// BenchmarkFingerprint measures canonical hashing of one generated graph.
func BenchmarkFingerprint(b *testing.B) {
	reg := library.StandardRegistry()
	goals := []typeset.Multiset{typeset.Of(library.TypeGameEffect)}

	seq, err := search.Search(reg, typeset.New(), goals, search.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g, err := assemble.Assemble(seq, assemble.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fingerprint.Fingerprint(g)
	}
}
