package daqfloat

import (
	"math"
	"strconv"

	"github.com/calebcase/daqfloat/discharge"
	"github.com/calebcase/daqfloat/record"
)

// DefaultPrecision is the number of decimals kept for voltages.
const DefaultPrecision = 3

// Sample is one time step of a capture paired with the reference curve.
type Sample struct {
	// Time is the elapsed time in seconds.
	Time float64

	// Voltage is the measured voltage.
	Voltage float64

	// Reference is the voltage of the discharge curve at Time.
	Reference float64
}

// Pair decodes the time and voltage buffers and evaluates circuit at every
// time sample. Voltage and reference are rounded to precision decimals; a
// negative precision keeps them as decoded.
//
// The buffers must hold the same number of records.
func Pair(timeBuf, voltageBuf []byte, circuit discharge.Circuit, precision int) (samples []Sample, err error) {
	defer Error.WrapP(&err)

	err = circuit.Validate()
	if err != nil {
		return nil, err
	}

	times, err := record.DecodeBuffer(timeBuf)
	if err != nil {
		return nil, err
	}

	voltages, err := record.DecodeBuffer(voltageBuf)
	if err != nil {
		return nil, err
	}

	if len(times) != len(voltages) {
		return nil, ErrRecordCountMismatch.New(
			"%d time records, %d voltage records",
			len(times),
			len(voltages),
		)
	}

	samples = make([]Sample, len(times))
	for i, t := range times {
		samples[i] = Sample{
			Time:      t,
			Voltage:   Round(voltages[i], precision),
			Reference: Round(circuit.Voltage(t), precision),
		}
	}

	return samples, nil
}

// Round rounds the exact binary value of v to the given number of decimals,
// ties to even. A negative number of decimals returns v unchanged.
func Round(v float64, decimals int) float64 {
	if decimals < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}

	return r
}
