package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
Kind identifies the variant held by a Cell. Every Cell holds exactly
one variant; the accessors below validate the tag.
*/
type Kind uint8

const (
	// KindString is the variant for free text values
	KindString Kind = iota
	// KindInteger is the variant for signed integer values
	KindInteger
	// KindReal is the variant for floating-point values
	KindReal
	// KindInterval is the variant for ranges of real values
	KindInterval
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindInterval:
		return "interval"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

/*
Interval is a range of real values. Min and Max may be -Inf and +Inf
respectively to represent open ends. Min <= Max always holds for
intervals produced by this package.
*/
type Interval struct {
	Min float64
	Max float64
}

/*
Compare orders intervals lexicographically on (Min, Max). It returns a
negative value if iv sorts before other, zero if they are equal and a
positive value otherwise.
*/
func (iv Interval) Compare(other Interval) int {
	switch {
	case iv.Min < other.Min:
		return -1
	case iv.Min > other.Min:
		return 1
	case iv.Max < other.Max:
		return -1
	case iv.Max > other.Max:
		return 1
	}
	return 0
}

/*
Contains reports whether the value x lies within the interval,
both ends included.
*/
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

func (iv Interval) String() string {
	switch {
	case math.IsInf(iv.Min, -1) && math.IsInf(iv.Max, 1):
		return "<>"
	case math.IsInf(iv.Min, -1):
		return "<" + formatReal(iv.Max)
	case math.IsInf(iv.Max, 1):
		return ">" + formatReal(iv.Min)
	}
	return formatReal(iv.Min) + "-" + formatReal(iv.Max)
}

/*
Cell is a tagged value: exactly one of string, integer, real or
interval. The zero Cell is the empty string.
*/
type Cell struct {
	kind Kind
	s    string
	i    int64
	f    float64
	iv   Interval
}

/*
StringCell returns a Cell holding the given text.
*/
func StringCell(s string) Cell {
	return Cell{kind: KindString, s: s}
}

/*
IntegerCell returns a Cell holding the given integer.
*/
func IntegerCell(i int64) Cell {
	return Cell{kind: KindInteger, i: i}
}

/*
RealCell returns a Cell holding the given floating-point value.
*/
func RealCell(f float64) Cell {
	return Cell{kind: KindReal, f: f}
}

/*
IntervalCell returns a Cell holding the given interval. The bounds are
swapped if given in descending order so that Min <= Max always holds.
*/
func IntervalCell(min, max float64) Cell {
	if min > max {
		min, max = max, min
	}
	return Cell{kind: KindInterval, iv: Interval{Min: min, Max: max}}
}

/*
Kind returns the variant tag of the cell.
*/
func (c Cell) Kind() Kind {
	return c.kind
}

/*
Text returns the string payload. It panics if the cell does not hold a
string.
*/
func (c Cell) Text() string {
	if c.kind != KindString {
		panic(fmt.Sprintf("table: Text called on %s cell", c.kind))
	}
	return c.s
}

/*
Int returns the integer payload. It panics if the cell does not hold
an integer.
*/
func (c Cell) Int() int64 {
	if c.kind != KindInteger {
		panic(fmt.Sprintf("table: Int called on %s cell", c.kind))
	}
	return c.i
}

/*
Real returns the floating-point payload. It panics if the cell does
not hold a real.
*/
func (c Cell) Real() float64 {
	if c.kind != KindReal {
		panic(fmt.Sprintf("table: Real called on %s cell", c.kind))
	}
	return c.f
}

/*
Interval returns the interval payload. It panics if the cell does not
hold an interval.
*/
func (c Cell) Interval() Interval {
	if c.kind != KindInterval {
		panic(fmt.Sprintf("table: Interval called on %s cell", c.kind))
	}
	return c.iv
}

/*
Number returns the cell's value as a float64 for integer and real
cells. The second return value is false for any other variant.
*/
func (c Cell) Number() (float64, bool) {
	switch c.kind {
	case KindInteger:
		return float64(c.i), true
	case KindReal:
		return c.f, true
	}
	return 0, false
}

/*
Promote lifts the cell to the interval variant: integer and real
values v become (-Inf, v], interval cells are returned unchanged.
String cells cannot be promoted and yield an error.
*/
func (c Cell) Promote() (Cell, error) {
	switch c.kind {
	case KindInterval:
		return c, nil
	case KindInteger:
		return Cell{kind: KindInterval, iv: Interval{Min: math.Inf(-1), Max: float64(c.i)}}, nil
	case KindReal:
		return Cell{kind: KindInterval, iv: Interval{Min: math.Inf(-1), Max: c.f}}, nil
	}
	return Cell{}, fmt.Errorf("cannot promote string %q to an interval", c.s)
}

func (c Cell) String() string {
	switch c.kind {
	case KindString:
		return c.s
	case KindInteger:
		return strconv.FormatInt(c.i, 10)
	case KindReal:
		return formatReal(c.f)
	case KindInterval:
		return c.iv.String()
	}
	return fmt.Sprintf("cell(%d)", uint8(c.kind))
}

/*
ParseCell infers the variant of a raw CSV cell and returns it as a
Cell. The recognized lexical forms are:

	[+-]?[0-9]+                  integer
	$+                           integer equal to the number of '$'
	[+-]?[0-9]+.[0-9]+           real
	NUM-NUM                      interval [a, b], swapped if a > b
	<NUM                         interval (-Inf, x]
	>NUM                         interval [x, +Inf)

Anything else is a string.
*/
func ParseCell(text string) Cell {
	if text == "" {
		return StringCell("")
	}
	if n := dollarCount(text); n > 0 {
		return IntegerCell(int64(n))
	}
	switch text[0] {
	case '<':
		if v, ok := parseNumber(text[1:]); ok {
			return Cell{kind: KindInterval, iv: Interval{Min: math.Inf(-1), Max: v}}
		}
		return StringCell(text)
	case '>':
		if v, ok := parseNumber(text[1:]); ok {
			return Cell{kind: KindInterval, iv: Interval{Min: v, Max: math.Inf(1)}}
		}
		return StringCell(text)
	}
	first, isReal, rest, ok := scanNumber(text)
	if !ok {
		return StringCell(text)
	}
	if rest == "" {
		if isReal {
			return RealCell(first)
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			// Out of int64 range; keep the numeric reading.
			return RealCell(first)
		}
		return IntegerCell(v)
	}
	if rest[0] == '-' {
		if second, ok := parseNumber(rest[1:]); ok {
			return IntervalCell(first, second)
		}
	}
	return StringCell(text)
}

func dollarCount(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] != '$' {
			return 0
		}
	}
	return len(text)
}

// parseNumber accepts exactly one signed integer or real literal.
func parseNumber(text string) (float64, bool) {
	v, _, rest, ok := scanNumber(text)
	if !ok || rest != "" {
		return 0, false
	}
	return v, true
}

// scanNumber reads a leading [+-]?digits[.digits] literal and returns
// its value, whether it carried a fractional part, and the unread
// remainder of the text.
func scanNumber(text string) (value float64, isReal bool, rest string, ok bool) {
	i := 0
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	start := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i == start {
		return 0, false, text, false
	}
	if i+1 < len(text) && text[i] == '.' && isDigit(text[i+1]) {
		isReal = true
		i += 2
		for i < len(text) && isDigit(text[i]) {
			i++
		}
	}
	v, err := strconv.ParseFloat(text[:i], 64)
	if err != nil {
		return 0, false, text, false
	}
	return v, isReal, text[i:], true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
