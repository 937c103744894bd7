// Package daqfloat pairs the time and voltage captures of the acquisition
// device and compares the measured voltage against an RC discharge curve.
package daqfloat

import (
	"io"
	"os"
)

// Capture holds the raw time and voltage records of one acquisition.
type Capture struct {
	Time    []byte
	Voltage []byte
}

// ReadCapture reads the whole file at path.
func ReadCapture(path string) (data []byte, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrFileRead.New("%q: %v", path, err)
	}
	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = ErrFileRead.New("%q: %v", path, cerr)
		}
	}()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, ErrFileRead.New("%q: %v", path, err)
	}

	return data, nil
}

// Load reads the time and voltage capture files.
func Load(timePath, voltagePath string) (c Capture, err error) {
	c.Time, err = ReadCapture(timePath)
	if err != nil {
		return Capture{}, err
	}

	c.Voltage, err = ReadCapture(voltagePath)
	if err != nil {
		return Capture{}, err
	}

	return c, nil
}
