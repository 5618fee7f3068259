package region

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDimensionMismatch = errors.New("region dimensions differ")
	ErrEmptyRegion       = errors.New("region has no cells")
)
