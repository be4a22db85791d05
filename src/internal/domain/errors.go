package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("record not found")

// Failure kinds. Every rejection below wraps exactly one of them.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")
)

var (
	ErrNonPositiveAmount      = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)
	ErrNegativeOpeningBalance = fmt.Errorf("%w: openingBalance cannot be negative", ErrInvalidArgument)
	ErrAccountNumberRequired  = fmt.Errorf("%w: accountNumber is required", ErrInvalidArgument)
	ErrPinRequired            = fmt.Errorf("%w: pin is required", ErrInvalidArgument)
	ErrPinNotNumeric          = fmt.Errorf("%w: pin is not a number", ErrInvalidArgument)
	ErrPinNegative            = fmt.Errorf("%w: pin must be a positive integer", ErrInvalidArgument)
	ErrInvalidPin             = fmt.Errorf("%w: invalid pin specified", ErrInvalidArgument)
)

var ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance, no overdraft facility", ErrInvalidOperation)
