// Package config loads the settings of the daqfloat tool.
package config

import (
	"os"

	"github.com/zeebo/errs"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/daqfloat/discharge"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("config")

// MaxPrecision is the largest number of decimals a float64 can honor.
const MaxPrecision = 15

// Config represents the daqfloat configuration.
type Config struct {
	Inputs  Inputs  `yaml:"inputs"`
	Circuit Circuit `yaml:"circuit"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Inputs names the capture files.
type Inputs struct {
	Time    string `yaml:"time"`
	Voltage string `yaml:"voltage"`
}

// Circuit holds the reference curve parameters.
type Circuit struct {
	Resistance     float64 `yaml:"resistance"`
	Capacitance    float64 `yaml:"capacitance"`
	InitialVoltage float64 `yaml:"initial_voltage"`
}

// Discharge returns the circuit as used by the discharge package.
func (c Circuit) Discharge() discharge.Circuit {
	return discharge.Circuit{
		R:  c.Resistance,
		C:  c.Capacitance,
		U0: c.InitialVoltage,
	}
}

// Output contains output formatting settings.
type Output struct {
	Precision int `yaml:"precision"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	d := discharge.Default()

	return &Config{
		Inputs: Inputs{
			Time:    "t",
			Voltage: "u",
		},
		Circuit: Circuit{
			Resistance:     d.R,
			Capacitance:    d.C,
			InitialVoltage: d.U0,
		},
		Output: Output{
			Precision: 3,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. Keys missing from the file keep their
// default values.
func Load(path string) (cfg *Config, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg = Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errs.New("parse %q: %v", path, err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) (err error) {
	defer Error.WrapP(&err)

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() (err error) {
	defer Error.WrapP(&err)

	return c.validate()
}

func (c *Config) validate() (err error) {
	if c.Inputs.Time == "" {
		return errs.New("inputs.time is empty")
	}

	if c.Inputs.Voltage == "" {
		return errs.New("inputs.voltage is empty")
	}

	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return errs.New(
			"output.precision %d outside [0, %d]",
			c.Output.Precision,
			MaxPrecision,
		)
	}

	_, err = c.LogLevel()
	if err != nil {
		return err
	}

	return c.Circuit.Discharge().Validate()
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return level, errs.New("logging.level: %v", err)
	}

	return level, nil
}
