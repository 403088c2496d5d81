package ltc5599

import "errors"

var (
	// ErrInvalidChannel is returned for channel indexes other than 0 or 1.
	// No bus traffic is performed.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrOutOfRange is returned when a requested value falls outside the
	// parameter's accepted range. No bus traffic is performed.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidParam is returned for an unknown parameter kind.
	ErrInvalidParam = errors.New("invalid parameter")
)
