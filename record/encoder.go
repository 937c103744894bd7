package record

import "math"

// headroomBits is the number of mantissa bits above the normalization
// shift.
const headroomBits = MantissaBits - MantissaScaleBits

// FromFloat64 returns the block closest to v.
//
// Non-zero values are stored with the mantissa in [2^23, 2^24). Values too
// small for the minimum exponent are flushed to it, losing precision and
// possibly rounding to zero. Negative, non-finite and overly large values
// can not be represented.
func FromFloat64(v float64) (b Block, err error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return b, ErrUnrepresentable.New("non-finite value %v", v)
	case v < 0:
		return b, ErrUnrepresentable.New("negative value %v", v)
	case v == 0:
		return b, nil
	}

	// v = frac * 2^exp with frac in [0.5, 1).
	frac, exp := math.Frexp(v)

	m := math.Round(math.Ldexp(frac, MantissaBits))
	e := exp - headroomBits

	// Rounding up may carry into bit 24.
	if m > MaxMantissa {
		m = math.Ldexp(m, -1)
		e++
	}

	if e > MaxExponent {
		return b, ErrUnrepresentable.New("value %v overflows exponent %d", v, MaxExponent)
	}

	if e < MinExponent {
		e = MinExponent
		m = math.Round(math.Ldexp(v, MantissaScaleBits-MinExponent))
	}

	b.Exponent = e
	b.Mantissa = uint32(m)

	return b, nil
}

// Encode returns the record closest to v.
func Encode(v float64) (data []byte, err error) {
	defer Error.WrapP(&err)

	b, err := FromFloat64(v)
	if err != nil {
		return nil, err
	}

	return b.MarshalBinary()
}

// EncodeBuffer encodes vs as a capture.
func EncodeBuffer(vs []float64) (buf []byte, err error) {
	defer Error.WrapP(&err)

	buf = make([]byte, 0, len(vs)*Size)

	for _, v := range vs {
		b, err := FromFloat64(v)
		if err != nil {
			return nil, err
		}

		data, err := b.MarshalBinary()
		if err != nil {
			return nil, err
		}

		buf = append(buf, data...)
	}

	return buf, nil
}
