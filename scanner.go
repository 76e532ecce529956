package iso8601

import (
	"strconv"

	"github.com/JohnCGriffin/overflow"

	"github.com/imarsman/iso8601/pkg/utility"
)

// scanner is a forward only cursor over the runes of one input. It never
// moves backwards and running off the end is not an error by itself.
type scanner struct {
	input   []rune
	pos     int // current position
	end     int // len(input)
	hyphens int // leading '-' runes before the first number
}

func newScanner(s string) *scanner {
	input := []rune(s)
	return &scanner{input: input, end: len(input)}
}

// peek get the rune offset runes from the cursor without moving
func (s *scanner) peek(offset int) (rune, bool) {
	i := s.pos + offset
	if i < 0 || i >= s.end {
		return 0, false
	}
	return s.input[i], true
}

// current get the rune at the cursor, moving past it if advance is true
func (s *scanner) current(advance bool) (rune, bool) {
	if s.pos >= s.end {
		return 0, false
	}
	r := s.input[s.pos]
	if advance {
		s.pos++
	}
	return r, true
}

// is the rune at the cursor r
func (s *scanner) is(r rune) bool {
	c, ok := s.current(false)
	return ok && c == r
}

func (s *scanner) isDigit() bool {
	c, ok := s.current(false)
	return ok && utility.IsDigit(c)
}

func (s *scanner) isSpace() bool {
	c, ok := s.current(false)
	return ok && isSpace(c)
}

func (s *scanner) atEnd() bool {
	return s.pos >= s.end
}

// next move the cursor forward n runes, stopping at the end of input
func (s *scanner) next(n int) {
	s.pos += n
	if s.pos > s.end {
		s.pos = s.end
	}
}

// skip move past r if it is at the cursor
func (s *scanner) skip(r rune) bool {
	if s.is(r) {
		s.pos++
		return true
	}
	return false
}

// readInt read a run of ASCII digits, at most max of them if max > 0. An empty
// run returns 0, 0 and leaves the cursor in place. A run too long for an int
// fails with ErrNotDigit.
func (s *scanner) readInt(max int) (count int, value int, err error) {
	i := s.pos
	for i < s.end {
		if max > 0 && count >= max {
			break
		}
		r := s.input[i]
		if !utility.IsDigit(r) {
			break
		}
		var ok bool
		value, ok = overflow.Mul(value, 10)
		if ok {
			value, ok = overflow.Add(value, int(r-'0'))
		}
		if !ok {
			return 0, 0, ErrNotDigit
		}
		count++
		i++
	}
	s.pos = i

	return count, value, nil
}

// readDouble read digits with at most one fractional separator, either '.'
// or ','. A second separator fails with ErrNotDouble.
func (s *scanner) readDouble() (count int, value float64, err error) {
	i := s.pos
	fraction := false
	for i < s.end {
		r := s.input[i]
		if r == '.' || r == ',' {
			if fraction {
				return 0, 0, ErrNotDouble
			}
			fraction = true
		} else if !utility.IsDigit(r) {
			break
		}
		count++
		i++
	}
	if count == 0 {
		return 0, 0, nil
	}

	raw := make([]rune, 0, count+1)
	// A leading separator such as ".5" still needs a digit for ParseFloat
	if s.input[s.pos] == '.' || s.input[s.pos] == ',' {
		raw = append(raw, '0')
	}
	for _, r := range s.input[s.pos:i] {
		if r == ',' {
			r = '.'
		}
		raw = append(raw, r)
	}
	value, err = strconv.ParseFloat(utility.RunesToString(raw...), 64)
	if err != nil {
		return 0, 0, ErrNotDouble
	}
	s.pos = i

	return count, value, nil
}

// skipWhile move past a run of r and return how many were passed
func (s *scanner) skipWhile(r rune) int {
	count := 0
	for s.pos < s.end && s.input[s.pos] == r {
		s.pos++
		count++
	}
	return count
}

// skipUntil move forward until r or the end of input and return how many
// runes were passed
func (s *scanner) skipUntil(r rune) int {
	count := 0
	for s.pos < s.end && s.input[s.pos] != r {
		s.pos++
		count++
	}
	return count
}

// countLeading count leading runs of r from the start of input without moving
func (s *scanner) countLeading(r rune) int {
	count := 0
	for i := 0; i < s.end && s.input[i] == r; i++ {
		count++
	}
	return count
}
