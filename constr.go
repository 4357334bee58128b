package gameclock

/*
constr.go contains constraint and constraint group components which
allow callers to narrow the values accepted by the factory functions
of this package.
*/

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance. Evaluation stops at the
first failure.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
			debugConstraint(x, err)
		}
	}

	return
}

/*
Comparable is qualified through any value type of this package, each of
which bears a Compare method and a String method.
*/
type Comparable[T any] interface {
	Compare(T) int
	String() string
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.

	// constrain a DateTime by its date alone
	c := LiftConstraint(DateTime.Date, WeekdayConstraint(time.Saturday, time.Sunday))
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined check
function. That function should return nil if the property is satisfied or
an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}
