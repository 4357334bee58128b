//go:build !gameclock_no_constr_pf

package gameclock

/*
constr_on.go contains prefabricated constraints. Build with the
"-tags gameclock_no_constr_pf" flag to leave them out.
*/

import (
	"time"

	"golang.org/x/exp/constraints"
)

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) error {
		for _, c := range cs {
			if c(x) == nil {
				return nil
			}
		}
		return constraintViolationf("union failed all ",
			len(cs), " constraints")
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(cs) && err == nil; i++ {
			err = cs[i](x)
		}
		return
	}
}

/*
RangeConstraint returns a [Constraint] which rejects any value less than
min or greater than max.
*/
func RangeConstraint[T Comparable[T]](min, max T) Constraint[T] {
	return func(val T) error {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			return constraintViolationf(val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
IntegerRangeConstraint returns a [Constraint] which extracts an integer
field from a value and rejects it when outside of [min, max].

	// only accept dates within the twentieth century
	c := IntegerRangeConstraint("year", Date.Year, 1901, 2000)
*/
func IntegerRangeConstraint[T any, I constraints.Integer](name string, field func(T) I, min, max I) Constraint[T] {
	return func(val T) error {
		if v := field(val); !inRange(v, min, max) {
			return constraintViolationf(name, " ", int64(v), " is not in the allowed range [",
				int64(min), ", ", int64(max), "]")
		}
		return nil
	}
}

/*
WeekdayConstraint returns a [Constraint] which only accepts dates falling
on one of the given days of the week.
*/
func WeekdayConstraint(days ...time.Weekday) Constraint[Date] {
	return func(val Date) error {
		wd := val.Weekday()
		for _, d := range days {
			if wd == d {
				return nil
			}
		}
		return constraintViolationf(val.String(), " falls on a ", wd.String())
	}
}

/*
TimeWindowConstraint returns a [Constraint] which only accepts times of
day within the window [start, end]. Should start follow end, the window
is taken to span midnight, e.g.: 22:00:00 through 06:00:00.
*/
func TimeWindowConstraint(start, end Time) Constraint[Time] {
	return func(val Time) error {
		var ok bool
		if start.Le(end) {
			ok = val.Ge(start) && val.Le(end)
		} else {
			ok = val.Ge(start) || val.Le(end)
		}

		if !ok {
			return constraintViolationf("time ", val.String(), " is not within the window [",
				start.String(), ", ", end.String(), "]")
		}
		return nil
	}
}

/*
DurationRangeConstraint returns a [Constraint] for [Duration] values which
ensures the given value is neither shorter than min nor longer than max.
*/
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return RangeConstraint(min, max)
}
