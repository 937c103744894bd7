package daqfloat

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	for _, tc := range []struct {
		v    float64
		want string
	}{
		{0, "0.0"},
		{9, "9.0"},
		{8.982, "8.982"},
		{0.004, "0.004"},
		{0.00390625, "0.00390625"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{2.0 / 4194304, "4.76837158203125e-07"},
		{1.9999998807907104, "1.9999998807907104"},
		{123456789, "123456789.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{-2.5, "-2.5"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	} {
		require.Equal(t, tc.want, FormatFloat(tc.v), "%v", tc.v)
	}
}

func TestWriteSamples(t *testing.T) {
	var buf bytes.Buffer

	err := WriteSamples(&buf, nil)
	require.NoError(t, err)
	require.Empty(t, buf.String())

	err = WriteSamples(&buf, []Sample{
		{Time: 0.5, Voltage: 7.5, Reference: 7.0},
		{Time: 1, Voltage: 0, Reference: 5.459},
	})
	require.NoError(t, err)
	require.Equal(t, "0.5 7.5 7.0\n1.0 0.0 5.459\n", buf.String())
}
