package oracle

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/geo"
	"github.com/lintang-b-s/ridepool/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOracle(t *testing.T) {
	m := NewMapOracle(1000, true).Set(0, 2, 10).Set(2, 1, 15)
	m.pairs[pair{7, 8}] = pkg.NO_PATH

	testCases := []struct {
		from, to int
		want     int
	}{
		{0, 0, 0},
		{0, 2, 10},
		{2, 0, 10},
		{1, 2, 15},
		{3, 4, 1000},
		{7, 8, pkg.NO_PATH},
	}
	for _, tt := range testCases {
		assert.Equal(t, tt.want, m.TravelTime(tt.from, tt.to), "tt(%d,%d)", tt.from, tt.to)
	}
}

func TestMatrixOracleRoundTrip(t *testing.T) {
	matrix := [][]int{
		{0, 5, -1},
		{5, 0, 7},
		{9, 7, 0},
	}
	m, err := NewMatrixOracle(matrix)
	require.NoError(t, err)
	assert.Equal(t, pkg.NO_PATH, m.TravelTime(0, 2))
	assert.Equal(t, pkg.NO_PATH, m.TravelTime(0, 3))

	for _, name := range []string{"matrix.txt", "matrix.txt.bz2"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, m.WriteMatrix(path))

			got, err := ReadMatrixOracle(path)
			require.NoError(t, err)
			require.Equal(t, 3, got.Size())
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					assert.Equal(t, m.TravelTime(i, j), got.TravelTime(i, j))
				}
			}
		})
	}
}

func TestReadMatrixOracleRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n0 1\n1\n"), 0o644))

	_, err := ReadMatrixOracle(path)
	assert.True(t, errors.Is(err, util.ErrBadParamInput))
}

func TestGeodesicOracle(t *testing.T) {
	coords := map[int]geo.Coordinate{
		1: geo.NewCoordinate(-7.5506, 110.8243),
		2: geo.NewCoordinate(-7.5611, 110.8164),
	}
	g := NewGeodesicOracle(coords, 36)

	tt := g.TravelTime(1, 2)
	km := geo.GreatCircleDistance(coords[1], coords[2])
	assert.InDelta(t, km*100, float64(tt), 1.0)
	assert.Equal(t, tt, g.TravelTime(2, 1))
	assert.Equal(t, 0, g.TravelTime(1, 1))
	assert.Equal(t, pkg.NO_PATH, g.TravelTime(1, 3))
}

func TestCachedOracleMemoizes(t *testing.T) {
	var calls atomic.Int64
	inner := Func(func(from, to int) int {
		calls.Add(1)
		return from*10 + to
	})
	c, err := NewCachedOracle(inner, 128)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 5; i++ {
				for j := 0; j < 5; j++ {
					assert.Equal(t, i*10+j, c.TravelTime(i, j))
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, c.Len())
	assert.GreaterOrEqual(t, calls.Load(), int64(25))

	before := calls.Load()
	c.TravelTime(3, 4)
	assert.Equal(t, before, calls.Load())
}
