package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/daqfloat"
	"github.com/calebcase/daqfloat/config"
	"github.com/calebcase/daqfloat/record"
)

const (
	// Global flags.
	flagConfig = "config"
	flagDebug  = "debug"

	// Capture flags.
	flagTime           = "time"
	flagVoltage        = "voltage"
	flagResistance     = "resistance"
	flagCapacitance    = "capacitance"
	flagInitialVoltage = "initial-voltage"
	flagPrecision      = "precision"

	// Output flags.
	flagOutput = "output"
	flagTitle  = "title"
)

type app struct {
	in     io.Reader
	errOut io.Writer

	cfg *config.Config
	log *zap.SugaredLogger
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	a := &app{
		in:     in,
		errOut: errOut,
		log:    zap.NewNop().Sugar(),
	}

	return &cli.App{
		Name:      "daqfloat",
		Usage:     "decode acquisition captures and compare them with an RC discharge",
		Writer:    out,
		ErrWriter: errOut,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		}, captureFlags()...),
		Before: a.setup,
		After: func(c *cli.Context) error {
			_ = a.log.Sync()

			return nil
		},
		Action: a.convert,
		Commands: []*cli.Command{
			{
				Name:   "convert",
				Usage:  "print time, voltage and reference columns",
				Flags:  captureFlags(),
				Action: a.convert,
			},
			{
				Name:   "stats",
				Usage:  "print residual statistics of the voltage against the reference",
				Flags:  captureFlags(),
				Action: a.stats,
			},
			{
				Name:  "plot",
				Usage: "draw the voltage and the reference curve",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     flagOutput,
						Aliases:  []string{"o"},
						Usage:    "write the chart to `FILE` (png, svg, pdf)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  flagTitle,
						Usage: "chart title",
						Value: "RC discharge",
					},
				}, captureFlags()...),
				Action: a.plot,
			},
			{
				Name:      "encode",
				Usage:     "write values as a capture file",
				ArgsUsage: "[VALUE...]",
				Description: "Values are taken from the arguments, or from standard input " +
					"separated by whitespace when no arguments are given.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagOutput,
						Aliases:  []string{"o"},
						Usage:    "write the capture to `FILE`",
						Required: true,
					},
				},
				Action: a.encode,
			},
		},
	}
}

func captureFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagTime,
			Usage: "time capture `FILE`",
		},
		&cli.StringFlag{
			Name:  flagVoltage,
			Usage: "voltage capture `FILE`",
		},
		&cli.Float64Flag{
			Name:    flagResistance,
			Aliases: []string{"r"},
			Usage:   "resistance in ohms",
		},
		&cli.Float64Flag{
			Name:  flagCapacitance,
			Usage: "capacitance in farads",
		},
		&cli.Float64Flag{
			Name:    flagInitialVoltage,
			Aliases: []string{"u0"},
			Usage:   "voltage at t=0",
		},
		&cli.IntFlag{
			Name:  flagPrecision,
			Usage: "decimals kept for voltages",
		},
	}
}

func (a *app) setup(c *cli.Context) (err error) {
	a.cfg = config.Default()

	if path := c.String(flagConfig); path != "" {
		a.cfg, err = config.Load(path)
		if err != nil {
			return oops.Trace(err)
		}
	}

	level, err := a.cfg.LogLevel()
	if err != nil {
		return err
	}

	if c.Bool(flagDebug) {
		level = zapcore.DebugLevel
	}

	a.log = newLogger(a.errOut, level)

	a.log.Debugw("configured",
		"config", c.String(flagConfig),
		"level", level,
	)

	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core).Named("daqfloat").Sugar()
}

// flagContext returns the innermost context in which name was set on the
// command line, so capture flags given before a subcommand still apply.
func flagContext(c *cli.Context, name string) (*cli.Context, bool) {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx, true
		}
	}

	return nil, false
}

// resolve applies flag overrides on top of the loaded configuration.
func (a *app) resolve(c *cli.Context) (*config.Config, error) {
	cfg := *a.cfg

	if ctx, ok := flagContext(c, flagTime); ok {
		cfg.Inputs.Time = ctx.String(flagTime)
	}
	if ctx, ok := flagContext(c, flagVoltage); ok {
		cfg.Inputs.Voltage = ctx.String(flagVoltage)
	}
	if ctx, ok := flagContext(c, flagResistance); ok {
		cfg.Circuit.Resistance = ctx.Float64(flagResistance)
	}
	if ctx, ok := flagContext(c, flagCapacitance); ok {
		cfg.Circuit.Capacitance = ctx.Float64(flagCapacitance)
	}
	if ctx, ok := flagContext(c, flagInitialVoltage); ok {
		cfg.Circuit.InitialVoltage = ctx.Float64(flagInitialVoltage)
	}
	if ctx, ok := flagContext(c, flagPrecision); ok {
		cfg.Output.Precision = ctx.Int(flagPrecision)
	}

	err := cfg.Validate()
	if err != nil {
		return nil, oops.Trace(err)
	}

	return &cfg, nil
}

func (a *app) samples(c *cli.Context) ([]daqfloat.Sample, error) {
	cfg, err := a.resolve(c)
	if err != nil {
		return nil, err
	}

	conv := daqfloat.NewConverter(cfg.Circuit.Discharge(), cfg.Output.Precision, a.log)

	return conv.Convert(cfg.Inputs.Time, cfg.Inputs.Voltage)
}

func (a *app) convert(c *cli.Context) error {
	samples, err := a.samples(c)
	if err != nil {
		return err
	}

	return daqfloat.WriteSamples(c.App.Writer, samples)
}

func (a *app) stats(c *cli.Context) error {
	samples, err := a.samples(c)
	if err != nil {
		return err
	}

	summary, err := daqfloat.Compare(samples)
	if err != nil {
		return err
	}

	return daqfloat.WriteSummary(c.App.Writer, summary)
}

func (a *app) plot(c *cli.Context) error {
	samples, err := a.samples(c)
	if err != nil {
		return err
	}

	path := c.String(flagOutput)

	err = daqfloat.Plot(samples, path, c.String(flagTitle))
	if err != nil {
		return oops.Trace(err)
	}

	a.log.Infow("wrote chart", "path", path, "samples", len(samples))

	return nil
}

func (a *app) encode(c *cli.Context) error {
	tokens := c.Args().Slice()

	if len(tokens) == 0 {
		scanner := bufio.NewScanner(a.in)
		scanner.Split(bufio.ScanWords)

		for scanner.Scan() {
			tokens = append(tokens, scanner.Text())
		}

		err := scanner.Err()
		if err != nil {
			return err
		}
	}

	values := make([]float64, len(tokens))
	for i, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return err
		}

		values[i] = v
	}

	buf, err := record.EncodeBuffer(values)
	if err != nil {
		return oops.Trace(err)
	}

	path := c.String(flagOutput)

	err = os.WriteFile(path, buf, 0o644)
	if err != nil {
		return err
	}

	a.log.Infow("wrote capture", "path", path, "records", len(values))

	return nil
}
