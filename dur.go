package gameclock

/*
dur.go contains the Duration type and its arithmetic.
*/

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	secondsPerMinute int64 = 60
	secondsPerHour   int64 = 60 * secondsPerMinute
	secondsPerDay    int64 = 24 * secondsPerHour
	secondsPerWeek   int64 = 7 * secondsPerDay

	// maxDurationSeconds is the span, in seconds, from the first instant
	// of MinDate to the last instant of MaxDate.
	maxDurationSeconds int64 = 135536076801503999

	// maxExactFloat is the largest magnitude at which every integer is
	// still exactly representable as a float64 (2^53).
	maxExactFloat float64 = 1 << 53
)

/*
Duration implements a signed span of whole seconds. The zero value is
a zero-length duration.

All instances fall within the symmetric range [MinDuration, MaxDuration];
every operation which would leave that range returns an error matching
[ErrRange] rather than wrapping.
*/
type Duration struct {
	secs int64
}

var (
	// MaxDuration is the longest positive Duration, which is exactly
	// the distance from MinDateTime to MaxDateTime.
	MaxDuration = Duration{maxDurationSeconds}

	// MinDuration is the negation of MaxDuration.
	MinDuration = Duration{-maxDurationSeconds}
)

var maxDurationDecimal = decimal.NewFromInt(maxDurationSeconds)

/*
DurationFromSeconds returns an instance of [Duration] spanning n seconds
alongside an error should n fall outside of the permitted range.

Optional constraints, which every factory below also accepts, are
evaluated only once the duration is known to be in range.
*/
func DurationFromSeconds(n int64, constraints ...Constraint[Duration]) (Duration, error) {
	return durationFromUnits(n, 1, constraints)
}

/*
DurationFromMinutes returns an instance of [Duration] spanning n minutes.
*/
func DurationFromMinutes(n int64, constraints ...Constraint[Duration]) (Duration, error) {
	return durationFromUnits(n, secondsPerMinute, constraints)
}

/*
DurationFromHours returns an instance of [Duration] spanning n hours.
*/
func DurationFromHours(n int64, constraints ...Constraint[Duration]) (Duration, error) {
	return durationFromUnits(n, secondsPerHour, constraints)
}

/*
DurationFromDays returns an instance of [Duration] spanning n days of
exactly 86400 seconds each. A negative n produces a negative duration.
*/
func DurationFromDays(n int64, constraints ...Constraint[Duration]) (Duration, error) {
	return durationFromUnits(n, secondsPerDay, constraints)
}

/*
DurationFromWeeks returns an instance of [Duration] spanning n weeks.
*/
func DurationFromWeeks(n int64, constraints ...Constraint[Duration]) (Duration, error) {
	return durationFromUnits(n, secondsPerWeek, constraints)
}

func durationFromUnits(n, unit int64, constraints ConstraintGroup[Duration]) (d Duration, err error) {
	secs, ok := checkedMul(n, unit)
	if !ok || !validSeconds(secs) {
		err = errorDurationTooLong
		debugRange(err, n, unit)
		return
	}

	_d := Duration{secs}
	if len(constraints) > 0 {
		err = constraints.Constrain(_d)
	}

	if err == nil {
		d = _d
	}

	return
}

func validSeconds(secs int64) bool {
	return inRange(secs, -maxDurationSeconds, maxDurationSeconds)
}

/*
WholeSeconds returns the total number of seconds spanned by the receiver.
*/
func (r Duration) WholeSeconds() int64 { return r.secs }

/*
WholeMinutes returns the total number of minutes spanned by the receiver,
truncated toward zero.
*/
func (r Duration) WholeMinutes() int64 { return r.secs / secondsPerMinute }

/*
WholeHours returns the total number of hours spanned by the receiver,
truncated toward zero.
*/
func (r Duration) WholeHours() int64 { return r.secs / secondsPerHour }

/*
WholeDays returns the total number of days spanned by the receiver,
truncated toward zero.
*/
func (r Duration) WholeDays() int64 { return r.secs / secondsPerDay }

/*
WholeWeeks returns the total number of weeks spanned by the receiver,
truncated toward zero.
*/
func (r Duration) WholeWeeks() int64 { return r.secs / secondsPerWeek }

/*
Seconds returns the seconds component of the receiver as it would appear
in an H:MM:SS breakdown, e.g.: 57 for a duration of three (3) minutes
and fifty seven (57) seconds. The component bears the sign of the receiver.
*/
func (r Duration) Seconds() int { return int(r.secs % secondsPerMinute) }

/*
Minutes returns the minutes component of the receiver, within [-59, 59].
*/
func (r Duration) Minutes() int { return int(r.secs / secondsPerMinute % 60) }

/*
Hours returns the hours component of the receiver, within [-23, 23].
Whole days are reported by [Duration.WholeDays].
*/
func (r Duration) Hours() int { return int(r.secs / secondsPerHour % 24) }

/*
TotalMinutes returns the receiver expressed as a fractional number of
minutes.
*/
func (r Duration) TotalMinutes() float64 { return r.total(secondsPerMinute) }

/*
TotalHours returns the receiver expressed as a fractional number of hours.
*/
func (r Duration) TotalHours() float64 { return r.total(secondsPerHour) }

/*
TotalDays returns the receiver expressed as a fractional number of days.
*/
func (r Duration) TotalDays() float64 { return r.total(secondsPerDay) }

/*
TotalWeeks returns the receiver expressed as a fractional number of weeks.
*/
func (r Duration) TotalWeeks() float64 { return r.total(secondsPerWeek) }

// The whole part stays below 2^53 for every unit of a minute or longer,
// so it converts exactly even at MinDuration and MaxDuration.
func (r Duration) total(unit int64) float64 {
	return float64(r.secs/unit) + float64(r.secs%unit)/float64(unit)
}

/*
IsZero returns a Boolean value indicative of a zero-length receiver.
*/
func (r Duration) IsZero() bool { return r.secs == 0 }

/*
Sign returns -1, 0 or 1 per the sign of the receiver.
*/
func (r Duration) Sign() int {
	switch {
	case r.secs < 0:
		return -1
	case r.secs > 0:
		return 1
	}
	return 0
}

/*
Abs returns the receiver with its sign forced positive. Since the range
of [Duration] is symmetric this cannot fail.
*/
func (r Duration) Abs() Duration { return Duration{abs64(r.secs)} }

/*
Neg returns the negation of the receiver.
*/
func (r Duration) Neg() (Duration, error) {
	if !validSeconds(r.secs) {
		return Duration{}, errorDurationTooLong
	}
	return Duration{-r.secs}, nil
}

// neg is Neg for callers holding a value known to be valid.
func (r Duration) neg() Duration { return Duration{-r.secs} }

/*
Add returns the sum of the receiver and d. An error is returned, and
the zero value with it, if the sum leaves the permitted range.
*/
func (r Duration) Add(d Duration) (sum Duration, err error) {
	secs, ok := checkedAdd(r.secs, d.secs)
	if !ok || !validSeconds(secs) {
		err = errorDurationTooLong
		debugRange(err, r, d)
		return
	}

	sum = Duration{secs}
	return
}

/*
Sub returns the difference of the receiver and d, defined as the sum of
the receiver and the negation of d.
*/
func (r Duration) Sub(d Duration) (Duration, error) {
	n, err := d.Neg()
	if err == nil {
		return r.Add(n)
	}
	return Duration{}, err
}

/*
MulInt returns the receiver scaled by the integer factor n.
*/
func (r Duration) MulInt(n int64) (prod Duration, err error) {
	secs, ok := checkedMul(r.secs, n)
	if !ok || !validSeconds(secs) {
		err = errorDurationTooLong
		debugRange(err, r, n)
		return
	}

	prod = Duration{secs}
	return
}

/*
DivInt returns the receiver divided by the integer divisor n, truncated
toward zero. Division by zero returns an error matching [ErrDivideByZero].
*/
func (r Duration) DivInt(n int64) (Duration, error) {
	if n == 0 {
		return Duration{}, ErrDivideByZero
	}
	// |r / n| <= |r| for any non-zero n, so the result is always valid.
	return Duration{r.secs / n}, nil
}

/*
MulFloat returns the receiver scaled by the floating-point factor f.

A zero factor always yields the zero duration. An infinite factor returns
an error matching [ErrRange], whereas NaN returns an error matching
[ErrInvalidArgument].

Products whose magnitude does not exceed 2^53 are rounded half-to-even
in float64. Larger products are recomputed with an exact decimal
intermediate and truncated toward zero.
*/
func (r Duration) MulFloat(f float64) (Duration, error) {
	switch {
	case math.IsNaN(f):
		return Duration{}, errorNaNFactor
	case f == 0:
		return Duration{}, nil
	case math.IsInf(f, 0):
		debugRange(errorInfiniteFactor, r, f)
		return Duration{}, errorInfiniteFactor
	case r.secs == 0:
		return Duration{}, nil
	}

	if p := float64(r.secs) * f; math.Abs(p) <= maxExactFloat {
		return Duration{int64(math.RoundToEven(p))}, nil
	}

	debugEnter(r, f)
	p := decimal.NewFromInt(r.secs).Mul(decimal.NewFromFloat(f))
	debugDecimal("mul", p.String())
	prod, err := durationFromDecimal(p.Truncate(0))
	debugExit(prod, err)

	return prod, err
}

/*
ScaleFloat returns d scaled by f. It is equivalent to [Duration.MulFloat]
and exists for callers who think of the factor as the left operand.
*/
func ScaleFloat(f float64, d Duration) (Duration, error) { return d.MulFloat(f) }

/*
DivFloat returns the receiver divided by the floating-point divisor f.

A zero divisor returns an error matching [ErrRange]; this is distinct
from the [ErrDivideByZero] condition of [Duration.DivInt]. A NaN
divisor returns an error matching [ErrInvalidArgument]. An infinite
divisor yields the zero duration.

As with [Duration.MulFloat], quotients above 2^53 in magnitude are
recomputed with an exact decimal intermediate and truncated.
*/
func (r Duration) DivFloat(f float64) (Duration, error) {
	switch {
	case math.IsNaN(f):
		return Duration{}, errorNaNDivisor
	case f == 0:
		debugRange(errorFloatDivideByZero, r)
		return Duration{}, errorFloatDivideByZero
	case math.IsInf(f, 0), r.secs == 0:
		return Duration{}, nil
	}

	q := float64(r.secs) / f
	if math.IsInf(q, 0) {
		debugRange(errorDurationTooLong, r, f)
		return Duration{}, errorDurationTooLong
	} else if math.Abs(q) <= maxExactFloat {
		return Duration{int64(math.RoundToEven(q))}, nil
	}

	debugEnter(r, f)
	dq, _ := decimal.NewFromInt(r.secs).QuoRem(decimal.NewFromFloat(f), 0)
	debugDecimal("div", dq.String())
	quo, err := durationFromDecimal(dq)
	debugExit(quo, err)

	return quo, err
}

func durationFromDecimal(v decimal.Decimal) (Duration, error) {
	if v.Abs().GreaterThan(maxDurationDecimal) {
		debugRange(errorDurationTooLong, v.String())
		return Duration{}, errorDurationTooLong
	}
	return Duration{v.IntPart()}, nil
}

/*
Compare returns -1, 0 or 1 if the receiver is shorter than, equal to
or longer than d respectively.
*/
func (r Duration) Compare(d Duration) int {
	switch {
	case r.secs < d.secs:
		return -1
	case r.secs > d.secs:
		return 1
	}
	return 0
}

/*
CompareAny compares the receiver with x, which may be a [Duration] or
a *[Duration]. A nil x (untyped, or a nil pointer) sorts before every
Duration, so a positive value is returned. Any other type returns an
error matching [ErrInvalidArgument].
*/
func (r Duration) CompareAny(x any) (int, error) {
	switch tv := x.(type) {
	case nil:
		return 1, nil
	case Duration:
		return r.Compare(tv), nil
	case *Duration:
		if tv == nil {
			return 1, nil
		}
		return r.Compare(*tv), nil
	}
	return 0, errorIncomparable(x)
}

/*
Eq returns a Boolean value indicative of the receiver equaling d.
*/
func (r Duration) Eq(d Duration) bool { return r.secs == d.secs }

/*
Ne returns a Boolean value indicative of the receiver not equaling d.
*/
func (r Duration) Ne(d Duration) bool { return r.secs != d.secs }

/*
Lt returns a Boolean value indicative of the receiver being shorter than d.
*/
func (r Duration) Lt(d Duration) bool { return r.secs < d.secs }

/*
Le returns a Boolean value indicative of the receiver being shorter than,
or equal to, d.
*/
func (r Duration) Le(d Duration) bool { return r.secs <= d.secs }

/*
Gt returns a Boolean value indicative of the receiver being longer than d.
*/
func (r Duration) Gt(d Duration) bool { return r.secs > d.secs }

/*
Ge returns a Boolean value indicative of the receiver being longer than,
or equal to, d.
*/
func (r Duration) Ge(d Duration) bool { return r.secs >= d.secs }

/*
String returns the string representation of the receiver instance.

Durations shorter than one whole day render as HH:MM:SS, all others as
D:HH:MM:SS with an unpadded day count. Negative durations carry a leading
hyphen, e.g.: "-00:00:01".
*/
func (r Duration) String() string {
	return string(r.appendText(make([]byte, 0, 24)))
}

func (r Duration) appendText(dst []byte) []byte {
	a := abs64(r.secs)
	if r.secs < 0 {
		dst = append(dst, '-')
	}
	if days := a / secondsPerDay; days != 0 {
		dst = appInt(dst, days, 10)
		dst = append(dst, ':')
	}

	a %= secondsPerDay
	dst = pad2(dst, a/secondsPerHour)
	dst = append(dst, ':')
	dst = pad2(dst, a/secondsPerMinute%60)
	dst = append(dst, ':')
	return pad2(dst, a%secondsPerMinute)
}
