package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JesseCoretta/go-gameclock"
)

// add <value> <duration>: carrying addition.
func addCmd() *cobra.Command {
	return shiftCmd("add", "Add a duration to a date-time, date, time or duration", false)
}

// sub <value> <duration>: the inverse of add.
func subCmd() *cobra.Command {
	return shiftCmd("sub", "Subtract a duration from a date-time, date, time or duration", true)
}

func shiftCmd(name, short string, negate bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " <value> <duration>",
		Short: short,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := joinDateTimes(args, 2)
			if err != nil {
				return err
			}
			v, err := parseValue(kind, words[0])
			if err != nil {
				return err
			}
			d, err := gameclock.ParseDuration(words[1])
			if err != nil {
				return err
			}

			res, err := shift(v, d, negate)
			if err != nil {
				return err
			}
			res.Op = name
			logger.Debug().
				Str("kind", res.Kind).
				Stringer("from", v).
				Stringer("by", d).
				Int64("wrapped", res.Wrapped).
				Msg("shifted")
			return res.write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", kindAuto, "kind of the first value: auto, datetime, date, time or duration")
	return cmd
}

// shift moves v by d, or by -d when negate is set. A time of day wraps
// and reports the midnights crossed.
func shift(v value, d gameclock.Duration, negate bool) (res result, err error) {
	res.Kind = kindOf(v)

	switch tv := v.(type) {
	case gameclock.DateTime:
		if negate {
			res.Value, err = tv.Sub(d)
		} else {
			res.Value, err = tv.Add(d)
		}
	case gameclock.Date:
		if negate {
			res.Value, err = tv.Sub(d)
		} else {
			res.Value, err = tv.Add(d)
		}
	case gameclock.Time:
		if negate {
			res.Value, res.Wrapped = tv.OverflowingSubSigned(d)
		} else {
			res.Value, res.Wrapped = tv.OverflowingAddSigned(d)
		}
	case gameclock.Duration:
		if negate {
			res.Value, err = tv.Sub(d)
		} else {
			res.Value, err = tv.Add(d)
		}
	default:
		err = fmt.Errorf("cannot shift %T", v)
	}

	return
}
