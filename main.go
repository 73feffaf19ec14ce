package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mrhaoxx/soj-doublecheck/checker"
)

var cfg = DefaultConfig()

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := NewApp().Run(os.Args)
	if err != nil {
		if _, ok := err.(cli.ExitCoder); !ok {
			log.Error().Err(err).Msg("checker exited with error")
			os.Exit(checker.Fail.ExitCode())
		}
	}
}

func NewApp() *cli.App {
	return &cli.App{
		Name:      "doublecheck",
		Usage:     "compare sequences of doubles with 10^-6 precision",
		UsageText: "doublecheck [options] <input> <output> <answer> [<result>]",
		HideHelp:  true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "specify the path of the config file",
			},
			&cli.Float64Flag{
				Name:  "epsilon",
				Usage: "maximum absolute or relative error",
				Value: checker.DefaultEpsilon,
			},
			&cli.StringFlag{
				Name:  "result",
				Usage: "write the judge result json to this file",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "colorize the verdict line",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "set the log level (trace, debug, info, warn, error)",
				Value: "warn",
			},
		},
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return cli.Exit(checker.Quitf(checker.Fail, 0, "%v", err).String(), checker.Fail.ExitCode())
		},
		Before: setup,
		Action: runCheck,
	}
}

func setup(c *cli.Context) error {
	cfg = DefaultConfig()

	if path := c.String("config"); path != "" {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return cli.Exit(checker.Quitf(checker.Fail, 0, "%v", err).String(), checker.Fail.ExitCode())
		}
	}

	if c.IsSet("epsilon") {
		cfg.Epsilon = c.Float64("epsilon")
	}
	if c.IsSet("result") {
		cfg.Result = c.String("result")
	}
	if c.IsSet("color") {
		cfg.Color = c.Bool("color")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cli.Exit(checker.Quitf(checker.Fail, 0, "invalid log level %q", cfg.LogLevel).String(), checker.Fail.ExitCode())
	}
	zerolog.SetGlobalLevel(level)

	log.Debug().Float64("epsilon", cfg.Epsilon).Str("result", cfg.Result).Bool("color", cfg.Color).Msg("config resolved")
	return nil
}

func runCheck(c *cli.Context) error {
	args := c.Args()
	if args.Len() < 3 || args.Len() > 4 {
		return cli.Exit(checker.Quitf(checker.Fail, 0, "usage: %s", c.App.UsageText).String(), checker.Fail.ExitCode())
	}
	if args.Len() == 4 {
		cfg.Result = args.Get(3)
	}

	v := Check(args.Get(0), args.Get(1), args.Get(2), cfg.Epsilon)

	if cfg.Result != "" {
		if err := WriteJudgeResult(cfg.Result, v); err != nil {
			log.Error().Err(err).Str("result", cfg.Result).Msg("failed to write result file")
			v = checker.Quitf(checker.Fail, v.Checked, "%v", err)
		}
	}

	WriteVerdict(c.App.ErrWriter, v, cfg.Color)

	return cli.Exit("", v.Outcome.ExitCode())
}

// Check opens the three testlib streams and compares output against answer.
func Check(input, output, answer string, eps float64) checker.Verdict {
	inf, err := os.Open(input)
	if err != nil {
		return checker.Quitf(checker.Fail, 0, "%v", errors.Wrap(err, "failed to open input"))
	}
	defer inf.Close()

	ans, err := os.Open(answer)
	if err != nil {
		return checker.Quitf(checker.Fail, 0, "%v", errors.Wrap(err, "failed to open answer"))
	}
	defer ans.Close()

	ouf, err := os.Open(output)
	if err != nil {
		log.Info().Str("output", output).AnErr("err", err).Msg("output file not found")
		return checker.Quitf(checker.PresentationError, 0, "Output file not found: %q", output)
	}
	defer ouf.Close()

	log.Debug().Str("input", input).Str("output", output).Str("answer", answer).Msg("streams opened")

	v := checker.Compare(ans, ouf, eps)

	log.Debug().Str("verdict", v.Outcome.String()).Int("checked", v.Checked).Str("msg", v.Message).Msg("check finished")
	return v
}
