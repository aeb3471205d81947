// Package notation converts between board squares and the "e2" style
// coordinates used by callers: column letters a-i, ranks 1-10.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"janggi/internal/janggi"
)

var ErrBadSquare = errors.New("bad square")

// ParseSquare turns "a1".."i10" into a Square. Rank 1 is row 0.
func ParseSquare(s string) (janggi.Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return janggi.Square{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	col := int(s[0] - 'a')
	if col < 0 || col >= janggi.Cols {
		return janggi.Square{}, fmt.Errorf("%w: column in %q", ErrBadSquare, s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 || rank > janggi.Rows {
		return janggi.Square{}, fmt.Errorf("%w: rank in %q", ErrBadSquare, s)
	}
	return janggi.Sq(rank-1, col), nil
}

func Format(sq janggi.Square) string {
	return string(rune('a'+sq.Col)) + strconv.Itoa(sq.Row+1)
}

func ParseMove(from, to string) (janggi.Square, janggi.Square, error) {
	f, err := ParseSquare(from)
	if err != nil {
		return janggi.Square{}, janggi.Square{}, err
	}
	t, err := ParseSquare(to)
	if err != nil {
		return janggi.Square{}, janggi.Square{}, err
	}
	return f, t, nil
}

func FormatAll(sqs []janggi.Square) []string {
	out := make([]string, len(sqs))
	for i, sq := range sqs {
		out[i] = Format(sq)
	}
	return out
}
