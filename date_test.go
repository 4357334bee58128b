package gameclock

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"
)

func mustDate(y int32, m, d int) Date {
	date, err := DateFromYmd(y, m, d)
	if err != nil {
		panic(err)
	}
	return date
}

func ExampleDate_SignedDurationSince() {
	a := mustDate(2024, 3, 1)
	b := mustDate(2024, 2, 1)
	fmt.Println(a.SignedDurationSince(b).WholeDays())
	fmt.Println(b.SignedDurationSince(a).WholeDays())
	// Output:
	// 29
	// -29
}

func ExampleDate_String() {
	fmt.Println(Date{})
	fmt.Println(mustDate(-44, 3, 15))
	fmt.Println(mustDate(12345, 6, 7))
	// Output:
	// 0001-01-01
	// -0044-03-15
	// 12345-06-07
}

func TestDate_roundTrip(t *testing.T) {
	for idx, ymd := range [][3]int64{
		{1, 1, 1},
		{0, 2, 29},
		{-1, 12, 31},
		{1970, 1, 1},
		{1999, 12, 31},
		{2000, 2, 29},
		{2024, 2, 29},
		{2100, 3, 1},
		{-400, 2, 29},
		{math.MinInt32, 1, 1},
		{math.MaxInt32, 12, 31},
	} {
		d, err := DateFromYmd(int32(ymd[0]), int(ymd[1]), int(ymd[2]))
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		y, m, day := d.Ymd()
		if int64(y) != ymd[0] || int64(m) != ymd[1] || int64(day) != ymd[2] {
			t.Fatalf("%s[%d] failed:\n\twant: %v\n\tgot:  %d-%d-%d", t.Name(), idx, ymd, y, m, day)
		}
		if d.Year() != y || d.Month() != m || d.Day() != day {
			t.Fatalf("%s[%d] failed: accessor mismatch", t.Name(), idx)
		}
	}

	// every day across several leap cycles
	d := mustDate(1895, 1, 1)
	for i := 0; i < 366*12; i++ {
		y, m, day := d.Ymd()
		if back := mustDate(y, m, day); back != d {
			t.Fatalf("%s failed: %s did not round trip", t.Name(), d)
		}
		d, _ = d.AddDays(1)
	}
}

func TestDate_dayNumbers(t *testing.T) {
	if got := mustDate(1970, 1, 1).days; got != 719162 {
		t.Fatalf("%s failed: unix epoch day %d", t.Name(), got)
	}
	if (Date{}) != mustDate(1, 1, 1) {
		t.Fatalf("%s failed: zero value is not 0001-01-01", t.Name())
	}
	if MinDate != mustDate(math.MinInt32, 1, 1) || MaxDate != mustDate(math.MaxInt32, 12, 31) {
		t.Fatalf("%s failed: bounds", t.Name())
	}
}

func TestDate_invalid(t *testing.T) {
	for idx, ymd := range [][3]int{
		{2023, 2, 29},
		{1900, 2, 29},
		{2024, 2, 30},
		{2024, 4, 31},
		{2024, 0, 1},
		{2024, 13, 1},
		{2024, 1, 0},
		{2024, 1, 32},
	} {
		if _, err := DateFromYmd(int32(ymd[0]), ymd[1], ymd[2]); !errors.Is(err, ErrRange) {
			t.Fatalf("%s[%d] failed: expected range error, got %v", t.Name(), idx, err)
		}
	}
}

func TestDate_leapYears(t *testing.T) {
	for year, want := range map[int32]bool{
		2000: true, 1900: false, 2024: true, 2023: false,
		0: true, -4: true, -100: false, -400: true,
		math.MinInt32: true, math.MaxInt32: false,
	} {
		if got := IsLeapYear(year); got != want {
			t.Fatalf("%s failed: %d want %t got %t", t.Name(), year, want, got)
		}
	}

	if DaysInMonth(2024, 2) != 29 || DaysInMonth(2023, 2) != 28 ||
		DaysInMonth(2023, 9) != 30 || DaysInMonth(2023, 12) != 31 || DaysInMonth(2023, 13) != 0 {
		t.Fatalf("%s failed: DaysInMonth", t.Name())
	}
}

func TestDate_weekdayOrdinal(t *testing.T) {
	for idx, tc := range []struct {
		d       Date
		wd      time.Weekday
		ordinal int
	}{
		{mustDate(1, 1, 1), time.Monday, 1},
		{mustDate(1970, 1, 1), time.Thursday, 1},
		{mustDate(2000, 1, 1), time.Saturday, 1},
		{mustDate(2023, 3, 1), time.Wednesday, 60},
		{mustDate(2024, 12, 31), time.Tuesday, 366},
		{mustDate(0, 12, 31), time.Sunday, 366},
	} {
		if got := tc.d.Weekday(); got != tc.wd {
			t.Fatalf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.wd, got)
		}
		if got := tc.d.Ordinal(); got != tc.ordinal {
			t.Fatalf("%s[%d] failed:\n\twant: %d\n\tgot:  %d", t.Name(), idx, tc.ordinal, got)
		}
	}

	// agrees with the standard library for the era it covers
	start := time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC)
	d := mustDate(1600, 1, 1)
	for i := 0; i < 1000; i++ {
		st := start.AddDate(0, 0, i*151)
		dd, _ := d.AddDays(int64(i * 151))
		if int(dd.Year()) != st.Year() || dd.Month() != int(st.Month()) ||
			dd.Day() != st.Day() || dd.Weekday() != st.Weekday() || dd.Ordinal() != st.YearDay() {
			t.Fatalf("%s failed: %s disagrees with %s", t.Name(), dd, st.Format(time.DateOnly))
		}
	}
}

func TestDate_boundedAdd(t *testing.T) {
	if _, ok := MaxDate.TryAdd(mustDays(1)); ok {
		t.Fatalf("%s failed: MaxDate + 1 day succeeded", t.Name())
	}
	if _, ok := MinDate.TryAdd(mustDays(-1)); ok {
		t.Fatalf("%s failed: MinDate - 1 day succeeded", t.Name())
	}
	if _, ok := MinDate.TrySub(mustDays(1)); ok {
		t.Fatalf("%s failed: MinDate - 1 day succeeded", t.Name())
	}
	if _, err := MaxDate.Add(mustDays(1)); !errors.Is(err, ErrRange) {
		t.Fatalf("%s failed: expected range error, got %v", t.Name(), err)
	}
	if _, err := MinDate.Sub(mustDays(1)); !errors.Is(err, ErrRange) {
		t.Fatalf("%s failed: expected range error, got %v", t.Name(), err)
	}

	const threshold = 1568704592245
	for idx, d := range []Date{{}, mustDate(1970, 1, 1)} {
		for _, n := range []int64{threshold, -threshold} {
			if got, ok := d.TryAdd(mustDays(n)); ok || got != (Date{}) {
				t.Fatalf("%s[%d] failed: %d days from %s gave %s", t.Name(), idx, n, d, got)
			}
		}
	}

	if got, ok := MinDate.TryAdd(MaxDuration); !ok || got != MaxDate {
		t.Fatalf("%s failed: MinDate + MaxDuration = %s", t.Name(), got)
	}
	if got, ok := MaxDate.TrySub(MaxDuration); !ok || got != MinDate {
		t.Fatalf("%s failed: MaxDate - MaxDuration = %s", t.Name(), got)
	}

	// sub-day parts are ignored
	if got, _ := mustDate(2024, 1, 1).Add(mustSeconds(86399)); got != mustDate(2024, 1, 1) {
		t.Fatalf("%s failed: partial day moved the date to %s", t.Name(), got)
	}
	if got, _ := mustDate(2024, 1, 1).Add(mustSeconds(-86401)); got != mustDate(2023, 12, 31) {
		t.Fatalf("%s failed: -1 day 1 second gave %s", t.Name(), got)
	}
	if _, err := MaxDate.AddDays(math.MaxInt64); !errors.Is(err, ErrRange) {
		t.Fatalf("%s failed: expected range error, got %v", t.Name(), err)
	}
}

func TestDate_exactSpan(t *testing.T) {
	span := MaxDate.SignedDurationSince(MinDate)
	if got := span.WholeDays(); got != 1568704592609 {
		t.Fatalf("%s failed:\n\twant: %d\n\tgot:  %d", t.Name(), int64(1568704592609), got)
	}
	if _, err := span.Add(mustDays(1)); !errors.Is(err, ErrRange) {
		t.Fatalf("%s failed: span + 1 day did not overflow: %v", t.Name(), err)
	}
	if back := MinDate.SignedDurationSince(MaxDate); back.WholeDays() != -1568704592609 {
		t.Fatalf("%s failed: reverse span %d", t.Name(), back.WholeDays())
	}
}

func TestDate_compose(t *testing.T) {
	d := mustDate(2024, 5, 17)
	dt, err := d.AndHms(8, 30, 0)
	if err != nil || dt.Date() != d || dt.Hour() != 8 || dt.Minute() != 30 {
		t.Fatalf("%s failed: %s (%v)", t.Name(), dt, err)
	}
	if _, err = d.AndHms(24, 0, 0); !errors.Is(err, ErrRange) {
		t.Fatalf("%s failed: expected range error, got %v", t.Name(), err)
	}

	e := mustDate(2024, 5, 18)
	if !(d.Lt(e) && d.Le(e) && e.Gt(d) && e.Ge(d) && d.Ne(e) && d.Eq(d)) || d.Compare(e) != -1 {
		t.Fatalf("%s failed: ordering", t.Name())
	}
}
