package record

// Decode returns the value of the record in data.
func Decode(data []byte) (v float64, err error) {
	defer Error.WrapP(&err)

	b, err := Parse(data)
	if err != nil {
		return 0, err
	}

	return b.Float64(), nil
}

// DecodeBuffer decodes every record in buf in order.
//
// An empty buffer decodes to an empty slice. A buffer whose length is not a
// multiple of Size fails without decoding anything.
func DecodeBuffer(buf []byte) (vs []float64, err error) {
	defer Error.WrapP(&err)

	err = checkBuffer(buf)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		buf:   buf,
		index: -1,
	}

	vs = make([]float64, 0, d.Len())
	for d.Next() {
		vs = append(vs, d.Value())
	}

	return vs, nil
}

func checkBuffer(buf []byte) error {
	if len(buf)%Size != 0 {
		return ErrInvalidBufferLength.New(
			"length %d is not a multiple of %d",
			len(buf),
			Size,
		)
	}

	return nil
}

// Decoder walks the records of an in-memory capture one at a time.
type Decoder struct {
	buf []byte

	index int
	blk   Block
}

// NewDecoder returns a decoder over buf. The whole buffer is validated before
// any record is returned.
func NewDecoder(buf []byte) (_ *Decoder, err error) {
	defer Error.WrapP(&err)

	err = checkBuffer(buf)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		buf:   buf,
		index: -1,
	}, nil
}

// Len returns the number of records in the buffer.
func (d *Decoder) Len() int {
	return len(d.buf) / Size
}

// Next advances to the next record. It returns false when the records are
// exhausted.
func (d *Decoder) Next() (ok bool) {
	next := d.index + 1
	if next >= d.Len() {
		return false
	}

	offset := next * Size

	d.index = next
	d.blk = parse(d.buf[offset : offset+Size])

	return true
}

// Index returns the position of the current record.
func (d *Decoder) Index() int {
	return d.index
}

// Block returns the current record before normalization.
func (d *Decoder) Block() Block {
	return d.blk
}

// Value returns the decoded value of the current record.
func (d *Decoder) Value() float64 {
	return d.blk.Float64()
}
