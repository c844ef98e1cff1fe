package concurrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapOrdered(t *testing.T) {
	testCases := []struct {
		name    string
		workers int
		jobs    []int
	}{
		{name: "empty", workers: 4, jobs: nil},
		{name: "single worker", workers: 1, jobs: []int{1, 2, 3}},
		{name: "more workers than jobs", workers: 16, jobs: []int{5, 4, 3, 2, 1}},
		{name: "non positive workers", workers: 0, jobs: []int{7, 8}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := MapOrdered(tt.workers, tt.jobs, func(job int) int { return job * job })
			assert.Len(t, got, len(tt.jobs))
			for i, j := range tt.jobs {
				assert.Equal(t, j*j, got[i])
			}
		})
	}
}

func TestWorkerPoolCollectsAllResults(t *testing.T) {
	wp := NewWorkerPool[int, int](3, 100)
	for i := 0; i < 100; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Start(func(job int) int { return job + 1 })
	wp.Wait()

	sum := 0
	n := 0
	for r := range wp.CollectResults() {
		sum += r
		n++
	}
	assert.Equal(t, 100, n)
	assert.Equal(t, 5050, sum)
}
