package ofx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/ofx/date"
	"github.com/shopspring/decimal"
)

// Codec converts between a Go value and the text of an element.
type Codec[V any] interface {
	// Format returns the wire text for v. ok is false when v is absent and
	// the element must not be written.
	Format(v V) (text string, ok bool)
	// Parse decodes the wire text.
	Parse(text string) (V, error)
}

type codec[V any] struct {
	format func(V) (string, bool)
	parse  func(string) (V, error)
}

func (c codec[V]) Format(v V) (string, bool)    { return c.format(v) }
func (c codec[V]) Parse(text string) (V, error) { return c.parse(text) }

// NewCodec returns a Codec made of the two functions.
func NewCodec[V any](format func(V) (string, bool), parse func(string) (V, error)) Codec[V] {
	return codec[V]{format: format, parse: parse}
}

// Optional lifts c to pointers: a nil pointer is absent.
func Optional[V any](c Codec[V]) Codec[*V] {
	return NewCodec(
		func(v *V) (string, bool) {
			if v == nil {
				return "", false
			}
			return c.Format(*v)
		},
		func(s string) (*V, error) {
			v, err := c.Parse(s)
			if err != nil {
				return nil, err
			}
			return &v, nil
		})
}

var (
	// Text is a plain string, absent when empty.
	Text Codec[string] = NewCodec(
		func(s string) (string, bool) { return s, s != "" },
		func(s string) (string, error) { return s, nil })

	// Integer is always written, zero included.
	Integer Codec[int] = NewCodec(
		func(i int) (string, bool) { return strconv.Itoa(i), true },
		parseInteger)

	OptInteger = Optional(Integer)

	// Number is a decimal amount, always written.
	Number Codec[decimal.Decimal] = NewCodec(
		func(d decimal.Decimal) (string, bool) { return d.String(), true },
		parseNumber)

	OptNumber = Optional(Number)

	// Flag is the Y/N boolean, always written.
	Flag Codec[bool] = NewCodec(
		func(b bool) (string, bool) {
			if b {
				return "Y", true
			}
			return "N", true
		},
		parseFlag)

	OptFlag = Optional(Flag)

	// DateTime is the compact OFX date-time, absent when zero. Values are
	// written in UTC.
	DateTime Codec[time.Time] = NewCodec(
		func(t time.Time) (string, bool) {
			if t.IsZero() {
				return "", false
			}
			return date.Format(t), true
		},
		date.ParseDateTime)
)

func parseFlag(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, fmt.Errorf("invalid flag %q, expecting Y or N", s)
}

func parseInteger(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseNumber accepts a leading '+' and a comma as decimal separator.
func parseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", s)
	}
	return d, nil
}

// Enum is the codec of a closed vocabulary of tokens. Unmapped tokens are
// not an error: they decode to the zero value, which is absent.
func Enum[E ~string](lookup func(string) (E, bool)) Codec[E] {
	return NewCodec(
		func(e E) (string, bool) { return string(e), e != "" },
		func(s string) (E, error) {
			e, _ := lookup(strings.ToUpper(strings.TrimSpace(s)))
			return e, nil
		})
}

// oneOf returns the lookup function of an enumeration made of values.
func oneOf[E ~string](values ...E) func(string) (E, bool) {
	index := make(map[string]E, len(values))
	for _, v := range values {
		index[string(v)] = v
	}
	return func(s string) (E, bool) {
		e, ok := index[s]
		return e, ok
	}
}
