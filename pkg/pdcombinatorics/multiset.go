package pdcombinatorics

import (
	"sort"

	"github.com/lintang-b-s/ridepool/pkg/util"
)

type listNode struct {
	value int
	next  *listNode
}

// MultisetPermutations enumerates the distinct permutations of a multiset with Williams' loopless
// prefix shift algorithm. Every step moves one list node, so no permutation is generated twice.
type MultisetPermutations struct {
	head    *listNode
	i, j    *listNode
	size    int
	started bool
	buf     []int
}

func NewMultisetPermutations(values []int) *MultisetPermutations {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	// prepending the ascending values leaves the list in descending order, the first permutation
	var head *listNode
	for _, v := range sorted {
		head = &listNode{value: v, next: head}
	}

	m := &MultisetPermutations{
		head: head,
		size: len(values),
		buf:  make([]int, len(values)),
	}
	if m.size >= 2 {
		m.i = m.nth(m.size - 2)
		m.j = m.i.next
	}
	return m
}

func (m *MultisetPermutations) nth(k int) *listNode {
	n := m.head
	for ; k > 0; k-- {
		n = n.next
	}
	return n
}

func (m *MultisetPermutations) HasNext() bool {
	if !m.started {
		return true
	}
	if m.size < 2 {
		return false
	}
	return m.j.next != nil || m.j.value < m.head.value
}

// Next returns the next permutation. The returned slice is reused by the following call.
func (m *MultisetPermutations) Next() []int {
	if !m.HasNext() {
		return nil
	}
	if !m.started {
		m.started = true
		return m.visit()
	}

	var s *listNode
	if m.j.next != nil && m.i.value >= m.j.next.value {
		s = m.j
	} else {
		s = m.i
	}
	t := s.next
	s.next = t.next
	t.next = m.head
	if t.value < m.head.value {
		m.i = t
	}
	m.j = m.i.next
	m.head = t
	return m.visit()
}

func (m *MultisetPermutations) visit() []int {
	k := 0
	for n := m.head; n != nil; n = n.next {
		m.buf[k] = n.value
		k++
	}
	return m.buf
}

// PDMultiset returns {0,0,1,1,...,n-1,n-1,n,...,n+m-1}: requests appear twice, onboard passengers once.
func PDMultiset(nRequests, nPassengers int) []int {
	values := make([]int, 0, 2*nRequests+nPassengers)
	for r := 0; r < nRequests; r++ {
		values = append(values, r, r)
	}
	for p := 0; p < nPassengers; p++ {
		values = append(values, nRequests+p)
	}
	return values
}

// CountPermutations returns (2n+m)!/2^n, the number of orderings of n pickup/drop-off pairs and m drop-offs
// with every pickup before its drop-off.
func CountPermutations(nRequests, nPassengers int) int {
	count := util.Factorial(2*nRequests + nPassengers)
	for r := 0; r < nRequests; r++ {
		count /= 2
	}
	return count
}
