package commands

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/JesseCoretta/go-gameclock"
)

const (
	kindAuto     = "auto"
	kindDateTime = "datetime"
	kindDate     = "date"
	kindTime     = "time"
	kindDuration = "duration"
)

// value is one of gameclock.DateTime, Date, Time or Duration.
type value = fmt.Stringer

// parseValue reads s as the given kind. With kindAuto the first kind
// that accepts s wins, trying datetime, date, time and duration in turn,
// so "01:00:00" is read as a time of day.
func parseValue(k, s string) (v value, err error) {
	switch k {
	case kindDateTime:
		v, err = gameclock.ParseDateTime(s)
		return
	case kindDate:
		v, err = gameclock.ParseDate(s)
		return
	case kindTime:
		v, err = gameclock.ParseTime(s)
		return
	case kindDuration:
		v, err = gameclock.ParseDuration(s)
		return
	case kindAuto:
		var errs []error
		for _, try := range []string{kindDateTime, kindDate, kindTime, kindDuration} {
			v, err := parseValue(try, s)
			if err == nil {
				return v, nil
			}
			errs = append(errs, err)
		}
		return nil, fmt.Errorf("%q is not a date-time, date, time or duration: %w", s, errors.Join(errs...))
	}
	return nil, fmt.Errorf("unknown kind %q", k)
}

func kindOf(v value) string {
	switch v.(type) {
	case gameclock.DateTime:
		return kindDateTime
	case gameclock.Date:
		return kindDate
	case gameclock.Time:
		return kindTime
	case gameclock.Duration:
		return kindDuration
	}
	return kindAuto
}

// joinDateTimes returns exactly n values from args, rejoining a date and
// a time of day passed as two words into one date-time while there are
// more words than values wanted.
func joinDateTimes(args []string, n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < len(args); i++ {
		surplus := (len(args) - i) - (n - len(out))
		if surplus > 0 && i+1 < len(args) {
			if _, err := gameclock.ParseDate(args[i]); err == nil {
				if _, err = gameclock.ParseTime(args[i+1]); err == nil {
					out = append(out, args[i]+" "+args[i+1])
					i++
					continue
				}
			}
		}
		out = append(out, args[i])
	}

	if len(out) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(out))
	}
	return out, nil
}

// result is printed by every command. Values are marshaled by way of
// their MarshalText methods.
type result struct {
	Op      string `yaml:"op"`
	Kind    string `yaml:"kind"`
	Value   value  `yaml:"value"`
	Wrapped int64  `yaml:"wrapped_days,omitempty"`
}

func (r result) write(w io.Writer) error {
	if cfg.Output == outputYAML {
		return writeYAML(w, r)
	}

	if r.Wrapped != 0 {
		_, err := fmt.Fprintf(w, "%s (%+d days)\n", r.Value, r.Wrapped)
		return err
	}
	_, err := fmt.Fprintln(w, r.Value)
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
