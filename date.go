package gameclock

/*
date.go contains the Date type and the proleptic Gregorian calendar
conversions upon which it relies.
*/

import "time"

const (
	// day numbers, counted from 0001-01-01, of MinDate and MaxDate.
	minDateDays int64 = -784352296671 // -2147483648-01-01
	maxDateDays int64 = 784352295938  // 2147483647-12-31

	daysPer400Years int64 = 146097

	// days from 0000-03-01 to 0001-01-01.
	marchEpochOffset int64 = 306
)

/*
Date implements a proleptic Gregorian calendar date spanning every year
representable by an int32. The zero value is 0001-01-01.

Internally a Date is a linear day number, which keeps comparison and
difference arithmetic separate from calendar decomposition.
*/
type Date struct {
	days int64
}

var (
	// MinDate is the first day of year math.MinInt32.
	MinDate = Date{minDateDays}

	// MaxDate is the last day of year math.MaxInt32.
	MaxDate = Date{maxDateDays}
)

/*
DateFromYmd returns an instance of [Date] alongside an error following
an attempt to validate the month (1-12) and the day against the length
of that month in the given year.

Optional constraints are evaluated only once the date is valid.
*/
func DateFromYmd(year int32, month, day int, constraints ...Constraint[Date]) (d Date, err error) {
	if !inRange(month, 1, 12) {
		err = errorFieldRange("month", month, 1, 12)
		return
	} else if !inRange(day, 1, DaysInMonth(year, month)) {
		err = errorDayOfMonth(year, month, day)
		return
	}

	_d := Date{daysFromCivil(int64(year), month, day)}
	if len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(_d)
	}

	if err == nil {
		d = _d
	}

	return
}

/*
IsLeapYear returns a Boolean value indicative of year being a leap year:
divisible by four, except centuries not divisible by four hundred.
*/
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysInMonth returns the number of days in the given month of year, or
zero if month is not within [1, 12].
*/
func DaysInMonth(year int32, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

/*
daysFromCivil returns the day number, counted from 0001-01-01, of the
given proleptic Gregorian date. Years are reckoned from March so that
the leap day falls at the end of each computational year.
*/
func daysFromCivil(year int64, month, day int) int64 {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400                  // [0, 399]
	mp := int64((month + 9) % 12)          // March == 0
	doy := (153*mp+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPer400Years + doe - marchEpochOffset
}

/*
civilFromDays is the inverse of daysFromCivil.
*/
func civilFromDays(days int64) (year int64, month, day int) {
	z := days + marchEpochOffset
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	year = yoe + era*400
	day = int(doy - (153*mp+2)/5 + 1)
	if month = int(mp + 3); month > 12 {
		month -= 12
	}
	if month <= 2 {
		year++
	}

	return
}

/*
Year returns the year of the receiver.
*/
func (r Date) Year() int32 {
	y, _, _ := civilFromDays(r.days)
	return int32(y)
}

/*
Month returns the month of the receiver, within [1, 12].
*/
func (r Date) Month() int {
	_, m, _ := civilFromDays(r.days)
	return m
}

/*
Day returns the day of the month of the receiver, within [1, 31].
*/
func (r Date) Day() int {
	_, _, d := civilFromDays(r.days)
	return d
}

/*
Ymd deconstructs the receiver into its year, month and day, which will
reconstruct the receiver exactly when passed to [DateFromYmd].
*/
func (r Date) Ymd() (year int32, month, day int) {
	y, m, d := civilFromDays(r.days)
	return int32(y), m, d
}

/*
Ordinal returns the day of the year of the receiver, within [1, 366].
*/
func (r Date) Ordinal() int {
	y, _, _ := civilFromDays(r.days)
	return int(r.days-daysFromCivil(y, 1, 1)) + 1
}

/*
Weekday returns the day of the week of the receiver.
*/
func (r Date) Weekday() time.Weekday {
	// 0001-01-01 was a Monday.
	return time.Weekday(floorMod(r.days+1, 7))
}

/*
AddDays returns the receiver moved by n days, alongside an error should
the result fall outside of [MinDate, MaxDate].
*/
func (r Date) AddDays(n int64) (Date, error) {
	if d, ok := r.addDays(n); ok {
		return d, nil
	}
	return Date{}, errorDateOutOfRange
}

func (r Date) addDays(n int64) (Date, bool) {
	days, ok := checkedAdd(r.days, n)
	if !ok || !inRange(days, minDateDays, maxDateDays) {
		debugCalendar("date out of range", r, n)
		return Date{}, false
	}
	return Date{days}, true
}

/*
TryAdd returns the receiver moved by the whole days of d, alongside a
Boolean value of false (and the zero Date) should the result fall
outside of [MinDate, MaxDate]. The sub-day part of d is ignored.
*/
func (r Date) TryAdd(d Duration) (Date, bool) { return r.addDays(d.WholeDays()) }

/*
TrySub is equivalent to [Date.TryAdd] with the negation of d.
*/
func (r Date) TrySub(d Duration) (Date, bool) { return r.addDays(-d.WholeDays()) }

/*
Add returns the receiver moved by the whole days of d, alongside an
error matching [ErrRange] should the result fall out of range.
*/
func (r Date) Add(d Duration) (Date, error) { return r.AddDays(d.WholeDays()) }

/*
Sub returns the receiver moved back by the whole days of d.
*/
func (r Date) Sub(d Duration) (Date, error) { return r.AddDays(-d.WholeDays()) }

/*
SignedDurationSince returns the whole-day distance from other to the
receiver, positive when the receiver is the later date. The span from
MinDate to MaxDate is exactly representable, so this cannot fail.
*/
func (r Date) SignedDurationSince(other Date) Duration {
	return Duration{(r.days - other.days) * secondsPerDay}
}

/*
AndHms returns a [DateTime] composed of the receiver and the given time
of day, alongside an error should the time fields be invalid.

Optional constraints are evaluated against the composed value once the
time fields are valid.

	weekday := LiftConstraint(DateTime.Date, WeekdayConstraint(time.Monday))
	dt, err := d.AndHms(9, 0, 0, weekday)
*/
func (r Date) AndHms(hour, minute, second int, constraints ...Constraint[DateTime]) (dt DateTime, err error) {
	var t Time
	if t, err = TimeFromHms(hour, minute, second); err != nil {
		return
	}

	_dt := DateTime{date: r, time: t}
	if len(constraints) > 0 {
		var group ConstraintGroup[DateTime] = constraints
		err = group.Constrain(_dt)
	}

	if err == nil {
		dt = _dt
	}

	return
}

/*
AndTime returns a [DateTime] composed of the receiver and t.
*/
func (r Date) AndTime(t Time) DateTime { return DateTime{date: r, time: t} }

/*
Compare returns -1, 0 or 1 if the receiver is earlier than, equal to or
later than d respectively.
*/
func (r Date) Compare(d Date) int {
	switch {
	case r.days < d.days:
		return -1
	case r.days > d.days:
		return 1
	}
	return 0
}

/*
Eq returns a Boolean value indicative of the receiver equaling d.
*/
func (r Date) Eq(d Date) bool { return r.days == d.days }

/*
Ne returns a Boolean value indicative of the receiver not equaling d.
*/
func (r Date) Ne(d Date) bool { return r.days != d.days }

/*
Lt returns a Boolean value indicative of the receiver preceding d.
*/
func (r Date) Lt(d Date) bool { return r.days < d.days }

/*
Le returns a Boolean value indicative of the receiver preceding, or
equaling, d.
*/
func (r Date) Le(d Date) bool { return r.days <= d.days }

/*
Gt returns a Boolean value indicative of the receiver following d.
*/
func (r Date) Gt(d Date) bool { return r.days > d.days }

/*
Ge returns a Boolean value indicative of the receiver following, or
equaling, d.
*/
func (r Date) Ge(d Date) bool { return r.days >= d.days }

/*
String returns the YYYY-MM-DD representation of the receiver instance.
Years are zero-padded to at least four digits, and negative years carry
a leading hyphen, e.g.: "-0044-03-15".
*/
func (r Date) String() string {
	return string(r.appendText(make([]byte, 0, 17)))
}

func (r Date) appendText(dst []byte) []byte {
	y, m, d := civilFromDays(r.days)
	dst = padN(dst, y, 4)
	dst = append(dst, '-')
	dst = pad2(dst, int64(m))
	dst = append(dst, '-')
	return pad2(dst, int64(d))
}
