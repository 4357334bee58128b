package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JesseCoretta/go-gameclock"
)

type bound struct {
	Kind string `yaml:"kind"`
	Min  value  `yaml:"min"`
	Max  value  `yaml:"max"`
}

func bounds() []bound {
	return []bound{
		{kindDateTime, gameclock.MinDateTime, gameclock.MaxDateTime},
		{kindDate, gameclock.MinDate, gameclock.MaxDate},
		{kindTime, gameclock.MinTime, gameclock.MaxTime},
		{kindDuration, gameclock.MinDuration, gameclock.MaxDuration},
	}
}

func boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the minimum and maximum of every type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeBounds(cmd.OutOrStdout(), bounds())
		},
	}
}

func writeBounds(w io.Writer, rows []bound) error {
	if cfg.Output == outputYAML {
		return writeYAML(w, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Kind, b.Min, b.Max)
	}
	return tw.Flush()
}
