package pdcombinatorics

// IndexIterator yields index permutations of a seed vector [PK_1..PK_n, DP_1..DP_n, DP_p1..DP_pm].
type IndexIterator interface {
	HasNext() bool
	Next() []int
}

// PermutationSource provides the index permutations for n requests and m onboard passengers.
// Implementations are read-only after construction and shared between goroutines.
type PermutationSource interface {
	Indices(nRequests, nPassengers int) IndexIterator
}

// EnumeratingSource computes the permutations on demand.
type EnumeratingSource struct{}

func NewEnumeratingSource() EnumeratingSource {
	return EnumeratingSource{}
}

func (EnumeratingSource) Indices(nRequests, nPassengers int) IndexIterator {
	return newMultisetIndexIterator(nRequests, nPassengers)
}

// multisetIndexIterator maps multiset permutations to seed indices: the first occurrence of request value
// r is its pickup r, the second its drop-off n+r, passenger value n+p is the drop-off 2n+p.
type multisetIndexIterator struct {
	values *MultisetPermutations
	n      int
	seen   []bool
}

func newMultisetIndexIterator(nRequests, nPassengers int) *multisetIndexIterator {
	return &multisetIndexIterator{
		values: NewMultisetPermutations(PDMultiset(nRequests, nPassengers)),
		n:      nRequests,
		seen:   make([]bool, nRequests),
	}
}

func (it *multisetIndexIterator) HasNext() bool {
	return it.values.HasNext()
}

func (it *multisetIndexIterator) Next() []int {
	vals := it.values.Next()
	if vals == nil {
		return nil
	}
	for r := range it.seen {
		it.seen[r] = false
	}

	res := make([]int, len(vals))
	for k, v := range vals {
		if v < it.n && !it.seen[v] {
			it.seen[v] = true
			res[k] = v
		} else {
			res[k] = it.n + v
		}
	}
	return res
}

type sliceIndexIterator struct {
	perms [][]int
	pos   int
}

func (it *sliceIndexIterator) HasNext() bool {
	return it.pos < len(it.perms)
}

func (it *sliceIndexIterator) Next() []int {
	if !it.HasNext() {
		return nil
	}
	it.pos++
	return it.perms[it.pos-1]
}
