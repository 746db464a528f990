// Package field expands a single schedule field token into the explicit set
// of integer values it denotes.
//
// A token is one of:
//
//	*          every value of the domain
//	?          not specified
//	a-b        inclusive range, numeric or symbolic (JAN-JUN)
//	a/n, */n   multiples of n from a (or the whole domain) up to its maximum
//	a,b,c      explicit list, numeric or symbolic, input order kept
//	a          single value
//
// Expansion is pure; domains are immutable, so Expand may be called
// concurrently.
package field

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

const notSpecified = "Not Specified"

// Expansion is the result of expanding a token. NotSpecified is set for the
// "?" token, in which case Values is nil.
type Expansion struct {
	Values       []string
	NotSpecified bool
}

func (e Expansion) String() string {
	if e.NotSpecified {
		return notSpecified
	}
	return strings.Join(e.Values, " ")
}

// Expand expands token against d. Any failure is a *ParsingError.
func Expand(token string, d Domain) (Expansion, error) {
	switch {
	case token == "*":
		return Expansion{Values: d.Integers()}, nil
	case token == "?":
		return Expansion{NotSpecified: true}, nil
	case strings.Contains(token, "-"):
		return expandRange(token, d)
	case strings.Contains(token, "/"):
		return expandInterval(token, d)
	case strings.Contains(token, ","):
		return expandList(token, d)
	}

	if (isNumeric(token) && slices.Contains(d.integers, token)) || slices.Contains(d.aliases, token) {
		return Expansion{Values: []string{token}}, nil
	}
	return Expansion{}, fail(d, token, ReasonUnparsable)
}

func expandRange(token string, d Domain) (Expansion, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return Expansion{}, fail(d, token, ReasonRangeSyntax)
	}
	start, end := parts[0], parts[1]

	if isNumeric(start) != isNumeric(end) {
		return Expansion{}, fail(d, token, ReasonRangeKind)
	}

	from, ok := d.position(start)
	if !ok {
		return Expansion{}, fail(d, token, ReasonRangeValue)
	}
	to, ok := d.position(end)
	if !ok {
		return Expansion{}, fail(d, token, ReasonRangeValue)
	}
	if from > to {
		return Expansion{}, fail(d, token, ReasonRangeOrder)
	}

	return Expansion{Values: slices.Clone(d.integers[from : to+1])}, nil
}

// expandInterval does not check an explicit start against the domain: "100/10"
// on minutes yields nothing rather than an error, however large the start.
func expandInterval(token string, d Domain) (Expansion, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return Expansion{}, fail(d, token, ReasonIntervalSyntax)
	}
	first, second := parts[0], parts[1]

	if !isNumeric(second) {
		return Expansion{}, fail(d, token, ReasonStepInteger)
	}
	// Digits only, so Atoi can fail only on overflow. A step that large
	// exceeds every domain value and matches nothing but 0.
	step, err := strconv.Atoi(second)
	if err != nil {
		step = math.MaxInt
	}
	if step == 0 {
		return Expansion{}, fail(d, token, ReasonStepZero)
	}

	values := make([]string, 0)
	if first == "*" {
		for _, v := range d.integers {
			n, _ := strconv.Atoi(v)
			if n%step == 0 {
				values = append(values, v)
			}
		}
		return Expansion{Values: values}, nil
	}

	if !isNumeric(first) {
		return Expansion{}, fail(d, token, ReasonIntervalStart)
	}
	start, err := strconv.Atoi(first)
	if err != nil {
		return Expansion{Values: values}, nil
	}

	for n := start; n <= d.maxValue(); n++ {
		if n%step == 0 {
			values = append(values, strconv.Itoa(n))
		}
	}
	return Expansion{Values: values}, nil
}

func expandList(token string, d Domain) (Expansion, error) {
	elements := strings.Split(token, ",")
	numeric := isNumeric(elements[0])

	values := make([]string, 0, len(elements))
	for _, el := range elements {
		if isNumeric(el) != numeric {
			return Expansion{}, fail(d, el, ReasonListKind)
		}

		if numeric {
			if !slices.Contains(d.integers, el) {
				return Expansion{}, fail(d, el, ReasonListValue)
			}
			values = append(values, el)
			continue
		}

		i := slices.Index(d.aliases, el)
		if i < 0 {
			return Expansion{}, fail(d, el, ReasonListValue)
		}
		values = append(values, d.integers[i])
	}

	return Expansion{Values: values}, nil
}

func fail(d Domain, value string, reason Reason) *ParsingError {
	return &ParsingError{Field: d.name, Value: value, Reason: reason}
}

// isNumeric reports whether s is a non-empty run of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
