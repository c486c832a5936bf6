package tydi

import (
	"strconv"
	"strings"
)

// Complexity is the interface complexity level of a physical stream: a
// dotted sequence of nonnegative integers, such as "4" or "3.1.1".
//
// The level specifies the guarantees a source makes about how elements are
// transferred, or equivalently the assumptions a sink can safely make. A
// higher number means fewer guarantees. Comparison is lexicographic with
// the shorter sequence zero-padded on the right, so "3" < "3.1" < "3.1.1"
// < "3.2" < "4" and "2" equals "2.0".
//
// The zero value behaves as complexity "0".
type Complexity struct {
	level []int
}

// NewComplexity constructs a complexity from its level sequence. The
// sequence must be nonempty and every entry nonnegative.
func NewComplexity(level ...int) (Complexity, error) {
	if len(level) == 0 {
		return Complexity{}, newError(CodeInvalidArgument, "", "complexity level cannot be empty")
	}
	for _, l := range level {
		if l < 0 {
			return Complexity{}, newError(CodeInvalidArgument, "", "complexity level cannot be negative: %d", l)
		}
	}
	out := make([]int, len(level))
	copy(out, level)
	return Complexity{level: out}, nil
}

// MajorComplexity constructs a single-entry complexity. It panics when
// major is negative.
func MajorComplexity(major int) Complexity {
	c, err := NewComplexity(major)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseComplexity parses a dotted complexity level such as "3.1.4".
func ParseComplexity(s string) (Complexity, error) {
	if s == "" {
		return Complexity{}, newError(CodeInvalidArgument, "", "complexity level cannot be empty")
	}
	parts := strings.Split(s, ".")
	level := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Complexity{}, newError(CodeInvalidArgument, "", "invalid complexity level %q", s)
		}
		level[i] = n
	}
	return Complexity{level: level}, nil
}

// Level returns a copy of the level sequence. The zero value returns [0].
func (c Complexity) Level() []int {
	if len(c.level) == 0 {
		return []int{0}
	}
	out := make([]int, len(c.level))
	copy(out, c.level)
	return out
}

// Major returns the leftmost (major) level entry.
func (c Complexity) Major() int {
	if len(c.level) == 0 {
		return 0
	}
	return c.level[0]
}

// Cmp compares two complexity levels, returning -1, 0, or 1. The shorter
// sequence is zero-padded on the right before lexicographic comparison.
func (c Complexity) Cmp(other Complexity) int {
	n := len(c.level)
	if len(other.level) > n {
		n = len(other.level)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(c.level) {
			a = c.level[i]
		}
		if i < len(other.level) {
			b = other.level[i]
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// LessThan reports c < other under the zero-padded ordering.
func (c Complexity) LessThan(other Complexity) bool {
	return c.Cmp(other) < 0
}

// Equals reports c == other under the zero-padded ordering, so "2" equals
// "2.0".
func (c Complexity) Equals(other Complexity) bool {
	return c.Cmp(other) == 0
}

// String renders the level entries separated by periods. The zero value
// renders as "0".
func (c Complexity) String() string {
	if len(c.level) == 0 {
		return "0"
	}
	parts := make([]string, len(c.level))
	for i, l := range c.level {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ".")
}
