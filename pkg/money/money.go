package money

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CentsPerUnit is the number of minor units in one major unit.
const CentsPerUnit = 100

// maxIntegerDigits is the integer digit count of math.MaxInt64 / CentsPerUnit
// (92233720368547758).
const maxIntegerDigits = 17

var (
	hundred  = decimal.NewFromInt(CentsPerUnit)
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

var (
	// ErrNotANumber is returned when a price input cannot be read as a decimal.
	ErrNotANumber = errors.New("is not a number")
	// ErrOutOfRange is returned when a price does not fit in int64 cents.
	ErrOutOfRange = errors.New("is out of range")
)

// ToCents converts a major-unit amount to minor units.
// The fractional part of a cent is truncated toward zero, never rounded:
// 19.999 becomes 1999 and -0.019 becomes -1.
//
// The magnitude is checked from the exponent before any arithmetic, so
// input like 1e50000000 is rejected without expanding 10^exp.
func ToCents(amount decimal.Decimal) (int64, error) {
	if amount.IsZero() {
		return 0, nil
	}

	// |amount| < 10^magnitude
	magnitude := amount.NumDigits() + int(amount.Exponent())
	switch {
	case magnitude > maxIntegerDigits:
		return 0, ErrOutOfRange
	case magnitude <= -2:
		// below one cent
		return 0, nil
	}

	cents := amount.Mul(hundred).Truncate(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrOutOfRange
	}
	return cents.IntPart(), nil
}

// FromCents converts stored minor units back to the exposed major-unit value.
func FromCents(cents int64) float64 {
	return float64(cents) / CentsPerUnit
}

// FromFloat converts a float input to minor units.
// decimal.NewFromFloat uses the shortest representation of f, so 19.99 is
// read as 19.99 and not as 19.989999....
func FromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	return ToCents(decimal.NewFromFloat(f))
}

// Parse reads decimal text such as "12.50" or "1e2" and returns minor units.
func Parse(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrNotANumber
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, ErrNotANumber
	}
	return ToCents(d)
}

// Input is a price as received at the HTTP boundary.
// It keeps the raw text so that a bad value is reported by the entity
// validator together with every other rule failure.
type Input struct {
	raw string
}

// NewInput wraps raw price text.
func NewInput(raw string) *Input {
	return &Input{raw: raw}
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (in *Input) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = unquoted
	}
	in.raw = s
	return nil
}

// UnmarshalParam lets gin bind the value from form or query parameters.
func (in *Input) UnmarshalParam(param string) error {
	in.raw = param
	return nil
}

// Cents parses the input. It returns ErrNotANumber for anything that is not
// decimal text, including JSON booleans and objects, and ErrOutOfRange for
// amounts that do not fit in int64 cents.
func (in *Input) Cents() (int64, error) {
	return Parse(in.raw)
}

// String returns the raw input text.
func (in *Input) String() string {
	return in.raw
}
