package daqfloat_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/daqfloat"
	"github.com/calebcase/daqfloat/discharge"
	"github.com/calebcase/daqfloat/record"
)

var (
	timeRecords = []byte{
		128, 0, 64, 0,
		129, 0, 0, 1,
	}
	voltageRecords = []byte{
		130, 0x90, 0, 0,
		128, 0, 64, 0,
	}
)

func TestPair(t *testing.T) {
	samples, err := daqfloat.Pair(timeRecords, voltageRecords, discharge.Default(), daqfloat.DefaultPrecision)
	require.NoError(t, err)

	t.Logf("Samples: %s\n", spew.Sdump(samples))

	require.Len(t, samples, 2)

	circuit := discharge.Default()
	for i, s := range samples {
		tv, err := record.Decode(timeRecords[i*4 : i*4+4])
		require.NoError(t, err)
		vv, err := record.Decode(voltageRecords[i*4 : i*4+4])
		require.NoError(t, err)
		ref, err := discharge.ExponentialDischarge(circuit.R, circuit.C, tv, circuit.U0)
		require.NoError(t, err)

		require.Equal(t, tv, s.Time)
		require.Equal(t, daqfloat.Round(vv, 3), s.Voltage)
		require.Equal(t, daqfloat.Round(ref, 3), s.Reference)
	}

	require.Equal(t, []daqfloat.Sample{
		{Time: 0.00390625, Voltage: 9, Reference: 8.982},
		{Time: 2.0 / 4194304, Voltage: 0.004, Reference: 9},
	}, samples)
}

func TestPairErrors(t *testing.T) {
	type TC struct {
		Name    string
		Time    []byte
		Voltage []byte
		Circuit discharge.Circuit
		Has     func(error) bool
		Mark    error
	}

	tcs := []TC{
		{
			Name:    "time length",
			Time:    timeRecords[:5],
			Voltage: voltageRecords,
			Circuit: discharge.Default(),
			Has:     record.ErrInvalidBufferLength.Has,
			Mark:    oops.New("unexpected"),
		},
		{
			Name:    "voltage length",
			Time:    timeRecords,
			Voltage: voltageRecords[:7],
			Circuit: discharge.Default(),
			Has:     record.ErrInvalidBufferLength.Has,
			Mark:    oops.New("unexpected"),
		},
		{
			Name:    "fewer voltages",
			Time:    timeRecords,
			Voltage: voltageRecords[:4],
			Circuit: discharge.Default(),
			Has:     daqfloat.ErrRecordCountMismatch.Has,
			Mark:    oops.New("unexpected"),
		},
		{
			Name:    "more voltages",
			Time:    timeRecords[:4],
			Voltage: voltageRecords,
			Circuit: discharge.Default(),
			Has:     daqfloat.ErrRecordCountMismatch.Has,
			Mark:    oops.New("unexpected"),
		},
		{
			Name:    "domain",
			Time:    timeRecords,
			Voltage: voltageRecords,
			Circuit: discharge.Circuit{R: 0, C: 0.1, U0: 9},
			Has:     discharge.ErrDomain.Has,
			Mark:    oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			samples, err := daqfloat.Pair(tc.Time, tc.Voltage, tc.Circuit, 3)
			require.Error(t, err, tc.Mark)
			require.True(t, tc.Has(err), err)
			require.Nil(t, samples, tc.Mark)
		})
	}
}

func TestPairEmpty(t *testing.T) {
	samples, err := daqfloat.Pair(nil, nil, discharge.Default(), 3)
	require.NoError(t, err)
	require.Empty(t, samples)
}

func TestRound(t *testing.T) {
	require.Equal(t, 8.955, daqfloat.Round(8.9552, 3))
	require.Equal(t, 8.956, daqfloat.Round(8.9558, 3))
	require.Equal(t, 9.0, daqfloat.Round(8.99999785, 3))
	require.Equal(t, 0.004, daqfloat.Round(0.00390625, 3))
	require.Equal(t, 0.0, daqfloat.Round(2.0/4194304, 3))
	require.Equal(t, 1.5, daqfloat.Round(1.46, 1))
	require.Equal(t, 0.00390625, daqfloat.Round(0.00390625, -1))

	// Sixteenths with an odd numerator sit exactly on a tie at 3 decimals.
	require.Equal(t, 0.062, daqfloat.Round(0.0625, 3))
	require.Equal(t, 0.188, daqfloat.Round(0.1875, 3))
	require.Equal(t, 65.312, daqfloat.Round(65.3125, 3))
	require.Equal(t, 2.0, daqfloat.Round(2.5, 0))
	require.Equal(t, 4.0, daqfloat.Round(3.5, 0))

	// Large precisions keep the value instead of overflowing.
	require.Equal(t, 6.8e38, daqfloat.Round(6.8e38, 300))
	require.Equal(t, 0.1, daqfloat.Round(0.1, 400))
}

func TestPairTies(t *testing.T) {
	samples, err := daqfloat.Pair(
		[]byte{
			128, 0, 0, 0,
			133, 0x82, 0xA0, 0,
		},
		[]byte{
			123, 0x80, 0, 0,
			133, 0x82, 0xA0, 0,
		},
		discharge.Default(),
		daqfloat.DefaultPrecision,
	)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	require.Equal(t, 0.062, samples[0].Voltage)
	require.Equal(t, 65.312, samples[1].Voltage)

	var out bytes.Buffer
	require.NoError(t, daqfloat.WriteSamples(&out, samples))
	require.Equal(t, "0.0 0.062 9.0\n65.3125 65.312 0.0\n", out.String())
}

func TestConverter(t *testing.T) {
	dir := t.TempDir()

	timePath := filepath.Join(dir, "t")
	voltagePath := filepath.Join(dir, "u")

	require.NoError(t, os.WriteFile(timePath, timeRecords, 0o644))
	require.NoError(t, os.WriteFile(voltagePath, voltageRecords, 0o644))

	c := daqfloat.NewConverter(discharge.Default(), daqfloat.DefaultPrecision, nil)

	samples, err := c.Convert(timePath, voltagePath)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, daqfloat.WriteSamples(&out, samples))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Len(t, strings.Fields(line), 3, line)
	}

	require.Equal(t, "0.00390625 9.0 8.982\n4.76837158203125e-07 0.004 9.0\n", out.String())

	t.Run("record count", func(t *testing.T) {
		short := filepath.Join(dir, "short")
		require.NoError(t, os.WriteFile(short, timeRecords[:4], 0o644))

		_, err := c.Convert(short, voltagePath)
		require.Error(t, err)
		require.Contains(t, err.Error(), "record count mismatch")
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(dir, "missing")

		_, err := c.Convert(timePath, missing)
		require.Error(t, err)
		require.Contains(t, err.Error(), "file read")
		require.Contains(t, err.Error(), missing)

		_, err = daqfloat.Load(timePath, missing)
		require.Error(t, err)
		require.True(t, daqfloat.ErrFileRead.Has(err), err)
	})
}
