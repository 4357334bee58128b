package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JesseCoretta/go-gameclock"
)

var divide bool

// scale <duration> <factor>: integer factors are exact, anything else
// goes through the floating-point path.
func scaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale <duration> <factor>",
		Short: "Multiply (or, with --div, divide) a duration by a factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := gameclock.ParseDuration(args[0])
			if err != nil {
				return err
			}

			res, err := scale(d, args[1], divide)
			if err != nil {
				return err
			}
			logger.Debug().Stringer("duration", d).Str("factor", args[1]).Bool("div", divide).Msg("scaled")
			return result{Op: "scale", Kind: kindDuration, Value: res}.write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&divide, "div", false, "divide by the factor instead of multiplying")
	return cmd
}

func scale(d gameclock.Duration, factor string, div bool) (gameclock.Duration, error) {
	if n, err := strconv.ParseInt(factor, 10, 64); err == nil {
		if div {
			return d.DivInt(n)
		}
		return d.MulInt(n)
	}

	f, err := strconv.ParseFloat(factor, 64)
	if err != nil {
		return gameclock.Duration{}, fmt.Errorf("invalid factor %q: %w", factor, err)
	}
	if div {
		return d.DivFloat(f)
	}
	return d.MulFloat(f)
}
