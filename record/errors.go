package record

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("record")

// Error classes for the failure modes of the record format.
var (
	ErrInvalidRecordLength = errs.Class("invalid record length")
	ErrInvalidBufferLength = errs.Class("invalid buffer length")
	ErrUnrepresentable     = errs.Class("unrepresentable value")
)
