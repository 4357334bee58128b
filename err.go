package gameclock

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "sync"

/*
Error family sentinels. Every error returned by this package belongs to
exactly one family, and [errors.Is] reports a match between any such
error and the sentinel of its family:

	if _, err := d.Add(other); errors.Is(err, ErrRange) {
		// overflow
	}
*/
var (
	ErrRange               error = rangeErr{mkerr("value out of range")}
	ErrInvalidArgument     error = argumentErr{mkerr("invalid argument")}
	ErrDivideByZero        error = divideErr{mkerr("integer division by zero")}
	ErrConstraintViolation error = constraintErr{mkerr("constraint violated")}
)

/*
range errors.
*/
var (
	errorDurationTooLong   = rangeErr{mkerr("duration is too long")}
	errorFloatDivideByZero = rangeErr{mkerr("duration divided by floating-point zero")}
	errorInfiniteFactor    = rangeErr{mkerr("duration scaled by an infinite factor")}
	errorDateOutOfRange    = rangeErr{mkerr("date is out of range")}
)

/*
invalid argument errors.
*/
var (
	errorNaNFactor    = argumentErr{mkerr("duration scaled by NaN")}
	errorNaNDivisor   = argumentErr{mkerr("duration divided by NaN")}
	errorEmptyText    = argumentErr{mkerr("empty text input")}
	errorNonCanonical = argumentErr{mkerr("text is not in canonical form")}
)

/*
types which implement the error interface.
*/
type (
	rangeErr      struct{ e error }
	argumentErr   struct{ e error }
	divideErr     struct{ e error }
	constraintErr struct{ e error }
)

func rangeErrorf(m ...any) error         { return rangeErr{mkerrf(m...)} }
func argumentErrorf(m ...any) error      { return argumentErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }

func (r rangeErr) Error() string      { return `RANGE ERROR: ` + r.e.Error() }
func (r argumentErr) Error() string   { return `INVALID ARGUMENT: ` + r.e.Error() }
func (r divideErr) Error() string     { return `DIVIDE BY ZERO: ` + r.e.Error() }
func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }

func (r rangeErr) Is(target error) bool {
	_, is := target.(rangeErr)
	return is
}

func (r argumentErr) Is(target error) bool {
	_, is := target.(argumentErr)
	return is
}

func (r divideErr) Is(target error) bool {
	_, is := target.(divideErr)
	return is
}

func (r constraintErr) Is(target error) bool {
	_, is := target.(constraintErr)
	return is
}

func (r rangeErr) Unwrap() error      { return r.e }
func (r argumentErr) Unwrap() error   { return r.e }
func (r divideErr) Unwrap() error     { return r.e }
func (r constraintErr) Unwrap() error { return r.e }

func errorFieldRange(field string, value, lo, hi int) error {
	return rangeErrorf(field, " ", value, " is not in the range [",
		lo, ", ", hi, "]")
}

func errorDayOfMonth(year int32, month, day int) error {
	return rangeErrorf("day ", day, " is not valid for month ", month,
		" of year ", int64(year))
}

func errorBadText(kind, text string) error {
	return argumentErrorf("malformed ", kind, " text ", quote(text))
}

func errorIncomparable(x any) error {
	return argumentErrorf("cannot compare Duration with ", typeName(x))
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		case interface{ String() string }:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
