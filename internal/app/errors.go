package app

import "errors"

var (
	// ErrAllocation reports that the display surface could not be set up.
	ErrAllocation = errors.New("screen buffer allocation failed")
	// ErrInputDeviceFault reports an unrecoverable input device error.
	ErrInputDeviceFault = errors.New("input device fault")
)
