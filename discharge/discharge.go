// Package discharge provides the analytical voltage curve of a capacitor
// discharging through a resistor.
//
// The equation for the curve is:
//
//  U(t) = U0 * e ^ (-t / (R * C))
//
// Where R is the resistance in ohms, C is the capacitance in farads, U0 is
// the voltage at t = 0 and t is the elapsed time in seconds.
package discharge

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("discharge")

// ErrDomain is returned when the curve is undefined for the parameters.
var ErrDomain = errs.Class("domain error")

// Circuit is an RC circuit with its initial voltage.
type Circuit struct {
	R  float64
	C  float64
	U0 float64
}

// Default returns the reference circuit used to check device captures.
func Default() Circuit {
	return Circuit{
		R:  20.0,
		C:  0.1,
		U0: 9.0,
	}
}

// TimeConstant returns R*C in seconds.
func (c Circuit) TimeConstant() float64 {
	return c.R * c.C
}

// Validate returns an error if the curve is undefined for the circuit.
func (c Circuit) Validate() (err error) {
	defer Error.WrapP(&err)

	if c.TimeConstant() == 0 {
		return ErrDomain.New("time constant is zero: R=%v C=%v", c.R, c.C)
	}

	return nil
}

// Voltage returns the voltage at time t. The circuit must be valid.
func (c Circuit) Voltage(t float64) float64 {
	return c.U0 * math.Exp(-1/c.TimeConstant()*t)
}

// ExponentialDischarge returns the voltage of a capacitor C charged to u0
// after discharging through r for t seconds.
func ExponentialDischarge(r, c, t, u0 float64) (v float64, err error) {
	circuit := Circuit{R: r, C: c, U0: u0}

	err = circuit.Validate()
	if err != nil {
		return 0, err
	}

	return circuit.Voltage(t), nil
}
