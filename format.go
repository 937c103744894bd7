package daqfloat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the shortest decimal string that parses back to v.
//
// Integral values keep a trailing ".0" and values with a decimal exponent
// below -4 or at least 16 use exponent notation, e.g. "9.0" and
// "4.76837158203125e-07".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)

	exp, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return s
	}

	s = strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// WriteSamples writes one line per sample: time, voltage and reference
// separated by spaces.
func WriteSamples(w io.Writer, samples []Sample) (err error) {
	defer Error.WrapP(&err)

	bw := bufio.NewWriter(w)

	for _, s := range samples {
		_, err = fmt.Fprintf(bw, "%s %s %s\n",
			FormatFloat(s.Time),
			FormatFloat(s.Voltage),
			FormatFloat(s.Reference),
		)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
