package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JesseCoretta/go-gameclock"
)

// since <a> <b>: a.SignedDurationSince(b) for two values of one kind.
func sinceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "since <a> <b>",
		Short: "Print the signed duration from b to a",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := joinDateTimes(args, 2)
			if err != nil {
				return err
			}
			a, err := parseValue(kind, words[0])
			if err != nil {
				return err
			}
			// b must be read as the kind a turned out to be.
			b, err := parseValue(kindOf(a), words[1])
			if err != nil {
				return err
			}

			d, err := since(a, b)
			if err != nil {
				return err
			}
			logger.Debug().Stringer("a", a).Stringer("b", b).Stringer("since", d).Msg("difference")
			return result{Op: "since", Kind: kindDuration, Value: d}.write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", kindAuto, "kind of both values: auto, datetime, date, time or duration")
	return cmd
}

func since(a, b value) (gameclock.Duration, error) {
	switch ta := a.(type) {
	case gameclock.DateTime:
		return ta.SignedDurationSince(b.(gameclock.DateTime)), nil
	case gameclock.Date:
		return ta.SignedDurationSince(b.(gameclock.Date)), nil
	case gameclock.Time:
		return ta.SignedDurationSince(b.(gameclock.Time)), nil
	case gameclock.Duration:
		return ta.Sub(b.(gameclock.Duration))
	}
	return gameclock.Duration{}, fmt.Errorf("cannot compute a difference of %T", a)
}
