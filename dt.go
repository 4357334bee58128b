package gameclock

/*
dt.go contains the DateTime type, the composition of Date and Time.
*/

/*
DateTime implements a [Date] paired with a [Time]. Ordering is
lexicographic: by date first, then by time of day. The zero value is
0001-01-01 00:00:00.

Instances are composed only through [Date.AndHms] or [Date.AndTime],
so the invariants of both parts always hold.
*/
type DateTime struct {
	date Date
	time Time
}

var (
	// MinDateTime is midnight of MinDate.
	MinDateTime = DateTime{date: MinDate, time: MinTime}

	// MaxDateTime is the last second of MaxDate.
	MaxDateTime = DateTime{date: MaxDate, time: MaxTime}
)

/*
Date returns the date component of the receiver.
*/
func (r DateTime) Date() Date { return r.date }

/*
Time returns the time of day component of the receiver.
*/
func (r DateTime) Time() Time { return r.time }

/*
Year returns the year of the receiver.
*/
func (r DateTime) Year() int32 { return r.date.Year() }

/*
Month returns the month of the receiver, within [1, 12].
*/
func (r DateTime) Month() int { return r.date.Month() }

/*
Day returns the day of the month of the receiver, within [1, 31].
*/
func (r DateTime) Day() int { return r.date.Day() }

/*
Hour returns the hour of the receiver, within [0, 23].
*/
func (r DateTime) Hour() int { return r.time.Hour() }

/*
Minute returns the minute of the receiver, within [0, 59].
*/
func (r DateTime) Minute() int { return r.time.Minute() }

/*
Second returns the second of the receiver, within [0, 59].
*/
func (r DateTime) Second() int { return r.time.Second() }

/*
TryAdd returns the receiver advanced by d, carrying whole days into the
date component. A Boolean value of false, and the zero DateTime, are
returned should the resulting date fall outside of [MinDate, MaxDate].
*/
func (r DateTime) TryAdd(d Duration) (DateTime, bool) {
	// The time absorbs the sub-day remainder and reports at most one
	// midnight crossed; the date takes that plus the whole days of d.
	t, wrapped := r.time.OverflowingAddSigned(Duration{d.secs % secondsPerDay})
	date, ok := r.date.addDays(d.WholeDays() + wrapped)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{date: date, time: t}, true
}

/*
TrySub is equivalent to [DateTime.TryAdd] with the negation of d.
*/
func (r DateTime) TrySub(d Duration) (DateTime, bool) { return r.TryAdd(d.neg()) }

/*
Add returns the receiver advanced by d alongside an error matching
[ErrRange] should the resulting date fall out of range, even if the
time of day alone would have been representable.
*/
func (r DateTime) Add(d Duration) (DateTime, error) {
	if dt, ok := r.TryAdd(d); ok {
		return dt, nil
	}
	return DateTime{}, errorDateOutOfRange
}

/*
Sub returns the receiver moved back by d.
*/
func (r DateTime) Sub(d Duration) (DateTime, error) { return r.Add(d.neg()) }

/*
SignedDurationSince returns the distance from other to the receiver,
positive when the receiver is later. The distance from MinDateTime to
MaxDateTime is exactly [MaxDuration], so this cannot fail.
*/
func (r DateTime) SignedDurationSince(other DateTime) Duration {
	days := r.date.SignedDurationSince(other.date)
	return Duration{days.secs + r.time.SignedDurationSince(other.time).secs}
}

/*
Compare returns -1, 0 or 1 if the receiver is earlier than, equal to or
later than dt respectively.
*/
func (r DateTime) Compare(dt DateTime) int {
	if c := r.date.Compare(dt.date); c != 0 {
		return c
	}
	return r.time.Compare(dt.time)
}

/*
Eq returns a Boolean value indicative of the receiver equaling dt.
*/
func (r DateTime) Eq(dt DateTime) bool { return r == dt }

/*
Ne returns a Boolean value indicative of the receiver not equaling dt.
*/
func (r DateTime) Ne(dt DateTime) bool { return r != dt }

/*
Lt returns a Boolean value indicative of the receiver preceding dt.
*/
func (r DateTime) Lt(dt DateTime) bool { return r.Compare(dt) < 0 }

/*
Le returns a Boolean value indicative of the receiver preceding, or
equaling, dt.
*/
func (r DateTime) Le(dt DateTime) bool { return r.Compare(dt) <= 0 }

/*
Gt returns a Boolean value indicative of the receiver following dt.
*/
func (r DateTime) Gt(dt DateTime) bool { return r.Compare(dt) > 0 }

/*
Ge returns a Boolean value indicative of the receiver following, or
equaling, dt.
*/
func (r DateTime) Ge(dt DateTime) bool { return r.Compare(dt) >= 0 }

/*
String returns the representation of the receiver instance, being the
date and the time of day separated by a single space.
*/
func (r DateTime) String() string {
	return string(r.appendText(make([]byte, 0, 26)))
}

func (r DateTime) appendText(dst []byte) []byte {
	dst = r.date.appendText(dst)
	dst = append(dst, ' ')
	return r.time.appendText(dst)
}
