package daqfloat

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("daqfloat")

// Error classes for capture handling.
var (
	ErrFileRead            = errs.Class("file read")
	ErrRecordCountMismatch = errs.Class("record count mismatch")
	ErrNoSamples           = errs.Class("no samples")
)
