package gameclock

/*
tod.go contains the Time type, a wall-clock reading without a date.
*/

/*
Time implements a time of day with one second resolution, held as the
number of seconds elapsed since midnight in [0, 86399]. The zero value
is midnight.

Arithmetic upon a Time wraps around midnight and can never fail. Use
[Time.OverflowingAddSigned] to learn how many day boundaries were
crossed.
*/
type Time struct {
	secs int32
}

var (
	// MinTime is midnight, 00:00:00.
	MinTime = Time{0}

	// MaxTime is the last second of the day, 23:59:59.
	MaxTime = Time{int32(secondsPerDay - 1)}
)

/*
TimeFromHms returns an instance of [Time] alongside an error following
an attempt to validate the hour (0-23), minute (0-59) and second (0-59).

Optional constraints are evaluated only once the fields are valid.
*/
func TimeFromHms(hour, minute, second int, constraints ...Constraint[Time]) (t Time, err error) {
	if err = checkHms(hour, minute, second); err != nil {
		return
	}

	_t := Time{int32(hour*3600 + minute*60 + second)}
	if len(constraints) > 0 {
		var group ConstraintGroup[Time] = constraints
		err = group.Constrain(_t)
	}

	if err == nil {
		t = _t
	}

	return
}

/*
TimeFromSecondsFromMidnight returns an instance of [Time] that lies secs
seconds after midnight. secs must be within [0, 86399].
*/
func TimeFromSecondsFromMidnight(secs int) (Time, error) {
	if !inRange(secs, 0, int(secondsPerDay)-1) {
		return Time{}, errorFieldRange("seconds from midnight", secs, 0, int(secondsPerDay)-1)
	}
	return Time{int32(secs)}, nil
}

func checkHms(hour, minute, second int) (err error) {
	switch {
	case !inRange(hour, 0, 23):
		err = errorFieldRange("hour", hour, 0, 23)
	case !inRange(minute, 0, 59):
		err = errorFieldRange("minute", minute, 0, 59)
	case !inRange(second, 0, 59):
		err = errorFieldRange("second", second, 0, 59)
	}

	return
}

/*
Hour returns the hour of the receiver, within [0, 23].
*/
func (r Time) Hour() int { return int(r.secs) / 3600 }

/*
Minute returns the minute of the receiver, within [0, 59].
*/
func (r Time) Minute() int { return int(r.secs) / 60 % 60 }

/*
Second returns the second of the receiver, within [0, 59].
*/
func (r Time) Second() int { return int(r.secs) % 60 }

/*
Hms returns the hour, minute and second of the receiver.
*/
func (r Time) Hms() (hour, minute, second int) {
	return r.Hour(), r.Minute(), r.Second()
}

/*
SecondsFromMidnight returns the number of seconds elapsed since midnight.
*/
func (r Time) SecondsFromMidnight() int { return int(r.secs) }

/*
WithHour returns a copy of the receiver with the hour replaced.
*/
func (r Time) WithHour(hour int) (Time, error) {
	return TimeFromHms(hour, r.Minute(), r.Second())
}

/*
WithMinute returns a copy of the receiver with the minute replaced.
*/
func (r Time) WithMinute(minute int) (Time, error) {
	return TimeFromHms(r.Hour(), minute, r.Second())
}

/*
WithSecond returns a copy of the receiver with the second replaced.
*/
func (r Time) WithSecond(second int) (Time, error) {
	return TimeFromHms(r.Hour(), r.Minute(), second)
}

/*
Add returns the receiver advanced by d, wrapping around midnight.
*/
func (r Time) Add(d Duration) Time {
	t, _ := r.OverflowingAddSigned(d)
	return t
}

/*
Sub returns the receiver moved back by d, wrapping around midnight.
*/
func (r Time) Sub(d Duration) Time {
	t, _ := r.OverflowingSubSigned(d)
	return t
}

/*
OverflowingAddSigned returns the receiver advanced by d alongside the
signed number of midnights crossed: positive when wrapping forward past
midnight, negative when wrapping backward.

	t, _ := TimeFromHms(3, 4, 59)
	day, _ := DurationFromDays(1)
	t.OverflowingAddSigned(day) // 03:04:59, 1
*/
func (r Time) OverflowingAddSigned(d Duration) (Time, int64) {
	// |d| < 2^57, so the sum cannot overflow int64.
	sum := int64(r.secs) + d.secs
	return Time{int32(floorMod(sum, secondsPerDay))}, floorDiv(sum, secondsPerDay)
}

/*
OverflowingSubSigned returns the receiver moved back by d alongside the
number of midnights crossed. It is computed as [Time.OverflowingAddSigned]
of -d with the day count negated, so moving back past one midnight
reports 1.
*/
func (r Time) OverflowingSubSigned(d Duration) (Time, int64) {
	t, days := r.OverflowingAddSigned(d.neg())
	return t, -days
}

/*
SignedDurationSince returns the distance from other to the receiver
within the same nominal day. It is positive when the receiver is later
than other, and always lies within [-86399, 86399] seconds.
*/
func (r Time) SignedDurationSince(other Time) Duration {
	return Duration{int64(r.secs) - int64(other.secs)}
}

/*
Compare returns -1, 0 or 1 if the receiver is earlier than, equal to or
later than t respectively.
*/
func (r Time) Compare(t Time) int {
	switch {
	case r.secs < t.secs:
		return -1
	case r.secs > t.secs:
		return 1
	}
	return 0
}

/*
Eq returns a Boolean value indicative of the receiver equaling t.
*/
func (r Time) Eq(t Time) bool { return r.secs == t.secs }

/*
Ne returns a Boolean value indicative of the receiver not equaling t.
*/
func (r Time) Ne(t Time) bool { return r.secs != t.secs }

/*
Lt returns a Boolean value indicative of the receiver preceding t.
*/
func (r Time) Lt(t Time) bool { return r.secs < t.secs }

/*
Le returns a Boolean value indicative of the receiver preceding, or
equaling, t.
*/
func (r Time) Le(t Time) bool { return r.secs <= t.secs }

/*
Gt returns a Boolean value indicative of the receiver following t.
*/
func (r Time) Gt(t Time) bool { return r.secs > t.secs }

/*
Ge returns a Boolean value indicative of the receiver following, or
equaling, t.
*/
func (r Time) Ge(t Time) bool { return r.secs >= t.secs }

/*
String returns the HH:MM:SS representation of the receiver instance.
*/
func (r Time) String() string {
	return string(r.appendText(make([]byte, 0, 8)))
}

func (r Time) appendText(dst []byte) []byte {
	dst = pad2(dst, int64(r.Hour()))
	dst = append(dst, ':')
	dst = pad2(dst, int64(r.Minute()))
	dst = append(dst, ':')
	return pad2(dst, int64(r.Second()))
}
