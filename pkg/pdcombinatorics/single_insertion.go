package pdcombinatorics

import (
	"github.com/lintang-b-s/ridepool/pkg/datastructure"
)

// SingleInsertion inserts one request into a fixed sequence S: the pickup lands at position i and the
// drop-off at position j of the grown sequence, for every 0 <= i < j <= |S|+1.
type SingleInsertion struct {
	request  *datastructure.Request
	sequence []datastructure.Node
	i, j     int
}

func NewSingleInsertion(request *datastructure.Request, sequence []datastructure.Node) *SingleInsertion {
	return &SingleInsertion{
		request:  request,
		sequence: sequence,
		i:        0,
		j:        1,
	}
}

// NewSingleInsertionFromVehicle inserts request into the committed plan of v.
func NewSingleInsertionFromVehicle(request *datastructure.Request, v *datastructure.Vehicle) *SingleInsertion {
	return NewSingleInsertion(request, v.CommittedSequence())
}

func (s *SingleInsertion) HasNext() bool {
	return s.i <= len(s.sequence)
}

func (s *SingleInsertion) Next() []datastructure.Node {
	if !s.HasNext() {
		return nil
	}
	n := len(s.sequence)
	res := make([]datastructure.Node, 0, n+2)

	// pickup goes before S[i], drop-off before S[j-1] of the base sequence
	res = append(res, s.sequence[:s.i]...)
	res = append(res, s.request.GetPickup())
	res = append(res, s.sequence[s.i:s.j-1]...)
	res = append(res, s.request.GetDropoff())
	res = append(res, s.sequence[s.j-1:]...)

	s.j++
	if s.j > n+1 {
		s.i++
		s.j = s.i + 1
	}
	return res
}

// Count returns the number of sequences the generator yields in total.
func (s *SingleInsertion) Count() int {
	n := len(s.sequence)
	return (n + 1) * (n + 2) / 2
}

func (s *SingleInsertion) Request() *datastructure.Request {
	return s.request
}
