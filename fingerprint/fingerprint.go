// Package fingerprint: the canonical graph hasher.
package fingerprint

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"sort"

	"github.com/powergraph/powergraph/assemble"
)

// Digest is a canonical structural fingerprint (SHA-256 wide).
type Digest [sha256.Size]byte

// Hex renders the digest as a lowercase hex string.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Domain-separation tags keep instance and argument hash inputs from ever
// colliding with each other.
const (
	tagInstance byte = 'n'
	tagArgument byte = 'a'
	tagGraph    byte = 'g'
)

// Fingerprint computes the canonical structural digest of g. Two graphs
// that differ only in arena order or internal identities fingerprint
// identically; any difference in node-type composition or wiring topology
// yields (up to SHA-256 collisions) a different digest.
// Complexity: O(instances + bound arguments).
func Fingerprint(g *assemble.Graph) Digest {
	h := &hasher{graph: g, memo: make(map[int]Digest, g.Len())}

	// Hash every instance, then combine order-independently by sorting
	// the digests bytewise.
	digests := make([][]byte, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		d := h.instance(i)
		digests = append(digests, d[:])
	}
	sort.Slice(digests, func(i, j int) bool { return bytes.Compare(digests[i], digests[j]) < 0 })

	top := sha256.New()
	top.Write([]byte{tagGraph})
	for _, d := range digests {
		top.Write(d)
	}

	var out Digest
	copy(out[:], top.Sum(nil))

	return out
}

// hasher memoizes per-instance digests within one Fingerprint computation.
type hasher struct {
	graph *assemble.Graph
	memo  map[int]Digest
}

// instance hashes (type name, [argument digests in order]) for the instance
// at arena index idx. Recursion bottoms out at argument-free generators.
func (h *hasher) instance(idx int) Digest {
	if d, ok := h.memo[idx]; ok {
		return d
	}

	inst := h.graph.Node(idx)
	hh := sha256.New()
	hh.Write([]byte{tagInstance})
	writeString(hh, inst.Desc.Name)
	writeInt(hh, len(inst.Args))
	for _, v := range inst.Args {
		a := h.argument(v)
		hh.Write(a[:])
	}

	var d Digest
	copy(d[:], hh.Sum(nil))
	h.memo[idx] = d

	return d
}

// argument hashes (output position at the source, source instance digest)
// for one bound value.
func (h *hasher) argument(v *assemble.TypedValue) Digest {
	src := h.instance(v.SourceIndex)

	hh := sha256.New()
	hh.Write([]byte{tagArgument})
	writeInt(hh, v.OutputIndex)
	hh.Write(src[:])

	var d Digest
	copy(d[:], hh.Sum(nil))

	return d
}

// writeString writes a length-prefixed string, so adjacent fields can never
// blur together.
func writeString(w io.Writer, s string) {
	writeInt(w, len(s))
	_, _ = w.Write([]byte(s))
}

func writeInt(w io.Writer, n int) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	_, _ = w.Write(buf[:])
}
