package record

import "math"

// Record layout constants.
const (
	// Size is the number of bytes in a record.
	Size = 4

	// Bias is subtracted from the stored exponent byte.
	Bias = 128

	// MantissaBits is the width of the unsigned mantissa.
	MantissaBits = 24

	// MantissaScaleBits is the fixed normalization shift applied after
	// scaling the mantissa by its exponent.
	MantissaScaleBits = 22

	MaxMantissa = 1<<MantissaBits - 1
	MinExponent = -Bias
	MaxExponent = math.MaxUint8 - Bias
)

// Block is a parsed record before normalization.
type Block struct {
	Exponent int
	Mantissa uint32
}

// Parse returns the block stored in data. Data must be exactly Size bytes.
func Parse(data []byte) (b Block, err error) {
	err = b.UnmarshalBinary(data)
	if err != nil {
		return Block{}, err
	}

	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Exponent < MinExponent || b.Exponent > MaxExponent {
		return nil, ErrUnrepresentable.New(
			"exponent %d outside [%d, %d]",
			b.Exponent,
			MinExponent,
			MaxExponent,
		)
	}

	if b.Mantissa > MaxMantissa {
		return nil, ErrUnrepresentable.New(
			"mantissa %d exceeds %d bits",
			b.Mantissa,
			MantissaBits,
		)
	}

	return []byte{
		byte(b.Exponent + Bias),
		byte(b.Mantissa >> 16),
		byte(b.Mantissa >> 8),
		byte(b.Mantissa),
	}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) != Size {
		return ErrInvalidRecordLength.New("got %d bytes, want %d", len(data), Size)
	}

	*b = parse(data)

	return nil
}

// parse decodes a record of exactly Size bytes.
func parse(data []byte) Block {
	return Block{
		Exponent: int(data[0]) - Bias,
		Mantissa: uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]),
	}
}

// Raw returns mantissa * 2^exponent without the normalization shift.
func (b Block) Raw() float64 {
	return math.Ldexp(float64(b.Mantissa), b.Exponent)
}

// Float64 returns the decoded value of the block.
//
// Every block is exactly representable as a float64 so no rounding occurs.
func (b Block) Float64() float64 {
	return math.Ldexp(float64(b.Mantissa), b.Exponent-MantissaScaleBits)
}
