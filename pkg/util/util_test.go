package util

import (
	"bufio"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("boom")
	err := WrapErrorf(orig, ErrInvalidTable, "line %d", 3)

	assert.True(t, errors.Is(err, ErrInvalidTable))
	assert.True(t, errors.Is(err, orig))
	assert.False(t, errors.Is(err, ErrBadParamInput))
	assert.Equal(t, "line 3: boom", err.Error())

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ErrInvalidTable, e.Code())
}

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("1 2 3\r\n\nlast"))

	lines := []string{}
	for {
		line, err := ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"1 2 3", "", "last"}, lines)
}

func TestParseInts(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		want    []int
		wantErr bool
	}{
		{name: "empty", line: "", want: []int{}},
		{name: "spaces", line: " 3  1 2 ", want: []int{3, 1, 2}},
		{name: "negative", line: "-1 4", want: []int{-1, 4}},
		{name: "garbage", line: "1 x", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInts(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1, Factorial(0))
	assert.Equal(t, 1, Factorial(1))
	assert.Equal(t, 720, Factorial(6))
	assert.Equal(t, 3628800, Factorial(10))
}

func TestCompressedFileRoundTrip(t *testing.T) {
	for _, name := range []string{"plain.txt", "packed.txt.bz2"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			w, err := CreateFile(path)
			require.NoError(t, err)
			_, err = io.WriteString(w, "2 1 3\n0 1 2 3\n")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := OpenFile(path)
			require.NoError(t, err)
			defer r.Close()
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "2 1 3\n0 1 2 3\n", string(data))
		})
	}
}
