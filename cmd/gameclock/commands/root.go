package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// config is read from the environment; flags override it.
type config struct {
	LogLevel string `env:"GAMECLOCK_LOG_LEVEL" envDefault:"warn"`
	Output   string `env:"GAMECLOCK_OUTPUT" envDefault:"text"`
}

var (
	cfg       config
	kind      string
	logger, _ = newLogger(os.Stderr, zerolog.LevelWarnValue)
)

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).Level(lvl).With().Timestamp().Logger(), nil
}

func newRootCmd() *cobra.Command {
	cfg = config{}
	kind = kindAuto
	envErr := env.Parse(&cfg)

	root := &cobra.Command{
		Use:           "gameclock",
		Short:         "Calendar and clock arithmetic calculator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			l, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			logger = l

			switch cfg.Output {
			case outputText, outputYAML:
			default:
				return fmt.Errorf("invalid output %q, expected %s or %s", cfg.Output, outputText, outputYAML)
			}
			logger.Debug().
				Str("command", cmd.Name()).
				Strs("args", args).
				Str("output", cfg.Output).
				Msg("running")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format: text or yaml (env GAMECLOCK_OUTPUT)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (env GAMECLOCK_LOG_LEVEL)")

	root.AddCommand(addCmd(), subCmd(), sinceCmd(), scaleCmd(), boundsCmd())
	return root
}

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("gameclock failed")
		return err
	}
	return nil
}
