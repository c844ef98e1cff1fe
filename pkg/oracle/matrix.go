package oracle

import (
	"bufio"
	"fmt"

	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/util"
)

// MatrixOracle is a dense travel time matrix indexed by network id.
type MatrixOracle struct {
	n  int
	tt []int
}

func NewMatrixOracle(matrix [][]int) (*MatrixOracle, error) {
	n := len(matrix)
	tt := make([]int, 0, n*n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "matrix row %d has %d columns, want %d", i, len(row), n)
		}
		for _, v := range row {
			tt = append(tt, normalize(v))
		}
	}
	return &MatrixOracle{n: n, tt: tt}, nil
}

func (m *MatrixOracle) TravelTime(from, to int) int {
	if from < 0 || to < 0 || from >= m.n || to >= m.n {
		return pkg.NO_PATH
	}
	return m.tt[from*m.n+to]
}

func (m *MatrixOracle) Size() int {
	return m.n
}

// ReadMatrixOracle reads a matrix file: a header line with n followed by n rows of n travel times.
// Negative entries mean no path.
func ReadMatrixOracle(path string) (*MatrixOracle, error) {
	f, err := util.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	line, err := util.ReadLine(br)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "reading matrix header of %s", path)
	}
	var n int
	if _, err := fmt.Sscanf(line, "%d", &n); err != nil || n < 0 {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid matrix header %q", line)
	}

	matrix := make([][]int, n)
	for i := 0; i < n; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "reading matrix row %d", i)
		}
		row, err := util.ParseInts(line)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "parsing matrix row %d", i)
		}
		matrix[i] = row
	}
	return NewMatrixOracle(matrix)
}

func (m *MatrixOracle) WriteMatrix(path string) error {
	f, err := util.CreateFile(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				fmt.Fprintf(w, " ")
			}
			fmt.Fprintf(w, "%d", m.tt[i*m.n+j])
		}
		fmt.Fprintf(w, "\n")
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
