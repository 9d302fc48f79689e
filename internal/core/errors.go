package core

import "errors"

var (
	// ErrPatternNotFound is returned when a pattern source does not exist or
	// cannot be read.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrDimensionOverflow is returned when a grid would exceed MaxRows x MaxCols.
	ErrDimensionOverflow = errors.New("grid dimension overflow")
	// ErrAddressOutOfRange is returned when a memory read targets an invalid
	// address.
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrShapeMismatch is returned when grids of different dimensions are
	// compared.
	ErrShapeMismatch = errors.New("grid shape mismatch")
)
