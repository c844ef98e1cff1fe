package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is lets errors.Is match the code error as well as the wrapped one.
func (e *Error) Is(target error) bool {
	return e.code != nil && target == e.code
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrNotFound        = errors.New("your requested Item is not found")
	ErrBadParamInput   = errors.New("given Param is not valid")
	ErrInvalidTable    = errors.New("precomputed permutation table is malformed")
	ErrInvalidInstance = errors.New("instance violates a model invariant")
)

func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func DegreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func RadiansToDegree(rad float64) float64 {
	return 180.0 * rad / math.Pi
}

// ReadLine reads one line without the trailing newline. io.EOF is only returned when nothing was read.
func ReadLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseInts parses whitespace separated integers.
func ParseInts(line string) ([]int, error) {
	tokens := strings.Fields(line)
	vals := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// Factorial of small n, saturates at math.MaxInt.
func Factorial(n int) int {
	res := 1
	for i := 2; i <= n; i++ {
		if res > math.MaxInt/i {
			return math.MaxInt
		}
		res *= i
	}
	return res
}
