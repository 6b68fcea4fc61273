package dfjtsp

// Powerset lazily enumerates all 2^n subsets of an ordered element slice,
// including the empty and the full set. Subsets come out in bitmask order
// (empty set first, full set last) and each subset preserves the relative
// order of the input elements. Enumeration is exponential by construction;
// anything beyond roughly 12-15 elements is intractable for the consumer.
type Powerset struct {
	elems []int
	next  uint64
	count uint64
}

func NewPowerset(elems []int) *Powerset {
	return &Powerset{
		elems: elems,
		count: uint64(1) << uint(len(elems)),
	}
}

// Next returns the next subset, or false once all 2^n subsets were produced.
// The returned slice is freshly allocated and owned by the caller.
func (p *Powerset) Next() ([]int, bool) {
	if p.next >= p.count {
		return nil, false
	}
	mask := p.next
	p.next++
	subset := make([]int, 0)
	for k := 0; k < len(p.elems); k++ {
		if mask&(uint64(1)<<uint(k)) != 0 {
			subset = append(subset, p.elems[k])
		}
	}
	return subset, true
}
