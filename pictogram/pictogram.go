// Package pictogram implements a compact textual notation for the state of
// integer cursor lists.
//
// A pictogram lists the elements from front to back, and marks the selected
// element with a '|' placed right before it. A '|' at the end of the pictogram,
// or no '|' at all, means that no element is selected:
//
//	|37    [3 7], 3 is selected
//	3|7    [3 7], 7 is selected
//	37|    [3 7], nothing is selected
//	|      empty list
//
// When a pictogram contains no whitespace, each digit is an element. Lists
// holding values outside of the 0-9 range are written with whitespace between
// the elements, for example "3 | 17 -2". In that form the marker may also be
// attached to either side of an element, "3 |17 -2" and "3| 17 -2" are the
// same list.
package pictogram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/segmentio/cursorlist/list"
)

// Marker is the symbol placed before the selected element.
const Marker = '|'

// ErrSyntax is wrapped by the errors returned when parsing invalid pictograms.
var ErrSyntax = errors.New("invalid pictogram syntax")

// Parse constructs a list from the pictogram s, using def as the default
// element of the list.
func Parse(s string, def int, options ...list.Option) (*list.List[int], error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	l := list.New(def, options...)
	marked := -1

	for _, tok := range tokens {
		if tok == string(Marker) {
			if marked >= 0 {
				return nil, fmt.Errorf("%q: more than one selection marker: %w", s, ErrSyntax)
			}
			marked = l.Len()
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%q: %q is not an integer: %w", s, tok, ErrSyntax)
		}
		// Inserting before nothing appends to the list, the selection is
		// cleared again right after.
		if err := l.InsertBefore(v); err != nil {
			return nil, err
		}
		l.StepForward()
	}

	if marked >= 0 && marked < l.Len() {
		l.MoveToFirst()
		for i := 0; i < marked; i++ {
			l.StepForward()
		}
	}
	return l, nil
}

// MustParse is like Parse but panics if s is not a valid pictogram.
func MustParse(s string, def int) *list.List[int] {
	l, err := Parse(s, def)
	if err != nil {
		panic(err)
	}
	return l
}

// Format returns the pictogram of l.
//
// The compact notation is used when all elements of the list are single
// digits, the elements are separated by spaces otherwise.
func Format(l *list.List[int]) string {
	compact := true
	l.Range(func(v int, _ bool) bool {
		compact = v >= 0 && v <= 9
		return compact
	})

	// In the spaced form the marker is written as its own field, so that a
	// pictogram holding a single element always contains whitespace.
	b := new(strings.Builder)
	n := 0
	l.Range(func(v int, selected bool) bool {
		if n > 0 && !compact {
			b.WriteByte(' ')
		}
		if selected {
			b.WriteRune(Marker)
			if !compact {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strconv.Itoa(v))
		n++
		return true
	})

	if l.None() {
		if n > 0 && !compact {
			b.WriteByte(' ')
		}
		b.WriteRune(Marker)
	}
	return b.String()
}

func tokenize(s string) ([]string, error) {
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		tokens := make([]string, 0, len(s))
		for _, c := range s {
			if c != Marker && (c < '0' || c > '9') {
				return nil, fmt.Errorf("%q: unexpected character %q: %w", s, c, ErrSyntax)
			}
			tokens = append(tokens, string(c))
		}
		return tokens, nil
	}

	tokens := []string{}
	for _, field := range strings.Fields(s) {
		for {
			i := strings.IndexRune(field, Marker)
			if i < 0 {
				break
			}
			if i > 0 {
				tokens = append(tokens, field[:i])
			}
			tokens = append(tokens, string(Marker))
			field = field[i+1:]
		}
		if field != "" {
			tokens = append(tokens, field)
		}
	}
	return tokens, nil
}
