package gameclock

import (
	"math"
	"testing"
)

func TestCommon_padding(t *testing.T) {
	for idx, tc := range []struct {
		n     int64
		width int
		want  string
	}{
		{0, 4, "0000"},
		{7, 2, "07"},
		{44, 4, "0044"},
		{-44, 4, "-0044"},
		{12345, 4, "12345"},
		{math.MinInt32, 4, "-2147483648"},
		{math.MinInt64, 4, "-9223372036854775808"},
	} {
		if got := string(padN(nil, tc.n, tc.width)); got != tc.want {
			t.Fatalf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}

	if got := string(pad2([]byte("x"), 5)); got != "x05" {
		t.Fatalf("%s failed: pad2 %s", t.Name(), got)
	}
}

func TestCommon_codecov(t *testing.T) {
	for s, want := range map[string]bool{
		"":    false,
		"0":   true,
		"09":  true,
		"1a":  false,
		"-1":  false,
		" 12": false,
	} {
		if isDigits(s) != want {
			t.Fatalf("%s failed: isDigits(%q)", t.Name(), s)
		}
	}

	if typeName(nil) != "<nil>" || typeName(Date{}) != "gameclock.Date" {
		t.Fatalf("%s failed: typeName", t.Name())
	}

	bld := newStrBuilder()
	bld.WriteString("ok")
	if bld.String() != "ok" {
		t.Fatalf("%s failed: builder", t.Name())
	}
}
