package shareability

import (
	da "github.com/lintang-b-s/ridepool/pkg/datastructure"
)

// pruneEdges keeps the maxEdges lightest edges, ties broken by endpoint index.
func pruneEdges(edges []da.Edge, maxEdges int) []da.Edge {
	return da.SmallestK(edges, maxEdges, func(a, b da.Edge) bool {
		return a.Less(b)
	})
}

// pinHiringEdge puts the hiring edge in front of the pruned list. It never counts against the cap.
func pinHiringEdge(pruned []da.Edge, hiring da.Edge, hasHiring bool) []da.Edge {
	if !hasHiring {
		return pruned
	}
	res := make([]da.Edge, 0, len(pruned)+1)
	res = append(res, hiring)
	return append(res, pruned...)
}
