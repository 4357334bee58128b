package gameclock

/*
text.go implements the text round trip of all value types. Only the
exact forms produced by the String methods are accepted; this is not
a general calendar parser.
*/

import "encoding"

var (
	_ encoding.TextMarshaler   = Duration{}
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ encoding.TextMarshaler   = Time{}
	_ encoding.TextUnmarshaler = (*Time)(nil)
	_ encoding.TextMarshaler   = Date{}
	_ encoding.TextUnmarshaler = (*Date)(nil)
	_ encoding.TextMarshaler   = DateTime{}
	_ encoding.TextUnmarshaler = (*DateTime)(nil)
)

/*
MarshalText implements [encoding.TextMarshaler].
*/
func (r Duration) MarshalText() ([]byte, error) { return r.appendText(nil), nil }

/*
MarshalText implements [encoding.TextMarshaler].
*/
func (r Time) MarshalText() ([]byte, error) { return r.appendText(nil), nil }

/*
MarshalText implements [encoding.TextMarshaler].
*/
func (r Date) MarshalText() ([]byte, error) { return r.appendText(nil), nil }

/*
MarshalText implements [encoding.TextMarshaler].
*/
func (r DateTime) MarshalText() ([]byte, error) { return r.appendText(nil), nil }

/*
UnmarshalText implements [encoding.TextUnmarshaler]. The receiver is
left untouched upon error.
*/
func (r *Duration) UnmarshalText(b []byte) (err error) {
	var d Duration
	if d, err = ParseDuration(string(b)); err == nil {
		*r = d
	}
	return
}

/*
UnmarshalText implements [encoding.TextUnmarshaler]. The receiver is
left untouched upon error.
*/
func (r *Time) UnmarshalText(b []byte) (err error) {
	var t Time
	if t, err = ParseTime(string(b)); err == nil {
		*r = t
	}
	return
}

/*
UnmarshalText implements [encoding.TextUnmarshaler]. The receiver is
left untouched upon error.
*/
func (r *Date) UnmarshalText(b []byte) (err error) {
	var d Date
	if d, err = ParseDate(string(b)); err == nil {
		*r = d
	}
	return
}

/*
UnmarshalText implements [encoding.TextUnmarshaler]. The receiver is
left untouched upon error.
*/
func (r *DateTime) UnmarshalText(b []byte) (err error) {
	var dt DateTime
	if dt, err = ParseDateTime(string(b)); err == nil {
		*r = dt
	}
	return
}

/*
ParseDuration returns an instance of [Duration] read from s, which must
be in the form returned by [Duration.String]: [-][D:]HH:MM:SS.
*/
func ParseDuration(s string) (d Duration, err error) {
	debugText("duration", s)
	if len(s) == 0 {
		err = errorEmptyText
		return
	}

	neg := s[0] == '-'
	body := trimPfx(s, "-")

	var days int64
	if len(body) > 8 {
		i := len(body) - 9
		if body[i] != ':' || !isDigits(body[:i]) {
			return d, errorBadText("duration", s)
		}
		if days, err = pint(body[:i], 10, 64); err != nil {
			return d, errorBadText("duration", s)
		}
		body = body[i+1:]
	}

	var h, m, sec int
	if h, m, sec, err = splitHms(body); err != nil {
		return d, errorBadText("duration", s)
	} else if err = checkHms(h, m, sec); err != nil {
		return
	}

	secs, ok := checkedMul(days, secondsPerDay)
	if ok {
		secs, ok = checkedAdd(secs, int64(h*3600+m*60+sec))
	}
	if !ok || !validSeconds(secs) {
		return d, errorDurationTooLong
	}
	if neg {
		secs = -secs
	}

	if _d := (Duration{secs}); string(_d.appendText(nil)) != s {
		err = errorNonCanonical
	} else {
		d = _d
	}

	return
}

/*
ParseTime returns an instance of [Time] read from s, which must be in
the form returned by [Time.String]: HH:MM:SS.
*/
func ParseTime(s string) (t Time, err error) {
	debugText("time", s)
	if len(s) == 0 {
		err = errorEmptyText
		return
	}

	var h, m, sec int
	if h, m, sec, err = splitHms(s); err != nil {
		err = errorBadText("time", s)
		return
	}

	return TimeFromHms(h, m, sec)
}

/*
ParseDate returns an instance of [Date] read from s, which must be in
the form returned by [Date.String]: [-]YYYY-MM-DD.
*/
func ParseDate(s string) (d Date, err error) {
	debugText("date", s)
	if len(s) == 0 {
		err = errorEmptyText
		return
	}

	body := trimPfx(s, "-")
	i := len(body) - 6
	if i < 4 || body[i] != '-' || body[i+3] != '-' ||
		!isDigits(body[:i]) || !isDigits(body[i+1:i+3]) || !isDigits(body[i+4:]) {
		err = errorBadText("date", s)
		return
	}

	var year int64
	if year, err = pint(s[:len(s)-6], 10, 32); err != nil {
		err = rangeErrorf("year ", s[:len(s)-6], " is out of range")
		return
	}
	month, _ := atoi(body[i+1 : i+3])
	day, _ := atoi(body[i+4:])

	var _d Date
	if _d, err = DateFromYmd(int32(year), month, day); err == nil {
		if string(_d.appendText(nil)) != s {
			err = errorNonCanonical
		} else {
			d = _d
		}
	}

	return
}

/*
ParseDateTime returns an instance of [DateTime] read from s, which must
be in the form returned by [DateTime.String]: a date and a time of day
separated by a single space.
*/
func ParseDateTime(s string) (dt DateTime, err error) {
	i := stridxb(s, ' ')
	if i < 0 {
		err = errorBadText("datetime", s)
		return
	}

	var d Date
	var t Time
	if d, err = ParseDate(s[:i]); err == nil {
		if t, err = ParseTime(s[i+1:]); err == nil {
			dt = d.AndTime(t)
		}
	}

	return
}

// splitHms reads exactly eight bytes of the form HH:MM:SS.
func splitHms(s string) (h, m, sec int, err error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' ||
		!isDigits(s[:2]) || !isDigits(s[3:5]) || !isDigits(s[6:]) {
		err = errorNonCanonical
		return
	}

	h, _ = atoi(s[:2])
	m, _ = atoi(s[3:5])
	sec, _ = atoi(s[6:])
	return
}
