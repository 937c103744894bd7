package daqfloat

import (
	"github.com/calebcase/oops"
	"go.uber.org/zap"

	"github.com/calebcase/daqfloat/discharge"
)

// Converter loads captures from disk and pairs them against a circuit.
type Converter struct {
	circuit   discharge.Circuit
	precision int
	log       *zap.SugaredLogger
}

// NewConverter returns a converter. A nil logger discards all output.
func NewConverter(circuit discharge.Circuit, precision int, log *zap.SugaredLogger) *Converter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Converter{
		circuit:   circuit,
		precision: precision,
		log:       log,
	}
}

// Convert reads the capture files and returns the paired samples.
func (c *Converter) Convert(timePath, voltagePath string) (samples []Sample, err error) {
	c.log.Debugw("loading capture",
		"time", timePath,
		"voltage", voltagePath,
	)

	capture, err := Load(timePath, voltagePath)
	if err != nil {
		return nil, oops.Trace(err)
	}

	c.log.Debugw("loaded capture",
		"time_bytes", len(capture.Time),
		"voltage_bytes", len(capture.Voltage),
	)

	samples, err = Pair(capture.Time, capture.Voltage, c.circuit, c.precision)
	if err != nil {
		c.log.Debugw("pairing failed",
			"time", timePath,
			"voltage", voltagePath,
			"error", err,
		)

		return nil, oops.Trace(err)
	}

	c.log.Debugw("paired capture",
		"samples", len(samples),
		"r", c.circuit.R,
		"c", c.circuit.C,
		"u0", c.circuit.U0,
		"precision", c.precision,
	)

	return samples, nil
}
