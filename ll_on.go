//go:build gameclock_debug

package gameclock

/*
loglevels is a 16-bit mask of enabled [EventType] values, with an
optional map of names used when reading levels from the environment.
*/
type loglevels struct {
	v *uint16
	m map[int]string
}

func newLoglevels() (bv loglevels) {
	bv.v = new(uint16)
	bv.m = eventNames
	return
}

var eventNames = map[int]string{
	int(EventAll):        "all",
	int(EventNone):       "none",
	int(EventEnter):      "enter",
	int(EventInfo):       "info",
	int(EventExit):       "exit",
	int(EventRange):      "range",
	int(EventDecimal):    "decimal",
	int(EventCalendar):   "calendar",
	int(EventConstraint): "constraint",
	int(EventText):       "text",
}

func (r loglevels) enabled() (names []string) {
	switch r.Int() {
	case r.Min():
		return []string{"none"}
	case r.Max():
		return []string{"all"}
	}

	for i := 0; i < 16; i++ {
		if d := 1 << i; r.positive(d) {
			if name, ok := r.m[d]; ok {
				names = append(names, name)
			}
		}
	}

	return
}

func (r loglevels) Int() (i int) {
	if r.v != nil {
		i = int(*r.v)
	}
	return
}

func (r *loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok && r.v != nil {
			if X == r.Max() {
				*r.v = ^uint16(0)
			} else {
				*r.v |= uint16(X)
			}
		}
	}
	return *r
}

func (r *loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok && r.v != nil {
			if X == r.Max() {
				*r.v = 0
			} else {
				*r.v &^= uint16(X)
			}
		}
	}
	return *r
}

func (r loglevels) Positive(x any) bool {
	if X, ok := r.verifyShiftValue(x); ok {
		return r.positive(X)
	}
	return false
}

func (r loglevels) positive(x int) (posi bool) {
	if r.v != nil && x != 0 {
		posi = (*r.v)&uint16(x) != 0
	}
	return
}

func (r loglevels) Max() int { return int(^uint16(0)) }

func (r loglevels) Min() int { return 0 }

func (r loglevels) verifyShiftValue(x any) (int, bool) {
	var X int
	switch tv := x.(type) {
	case string:
		X = r.strIndex(tv)
	case int:
		X = tv
	case EventType:
		X = int(tv)
	default:
		return 0, false
	}

	return X, X >= r.Min() && X <= r.Max()
}

func (r loglevels) strIndex(name string) int {
	for k, v := range r.m {
		if streqf(v, name) {
			return k
		}
	}
	return -1
}
