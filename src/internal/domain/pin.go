package domain

import (
	"strconv"
	"strings"
)

// ValidatePin accepts a string of decimal digits that fits a 32-bit signed
// integer, ignoring surrounding whitespace.
func ValidatePin(pin string) error {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return ErrPinRequired
	}

	digits := pin
	negative := strings.HasPrefix(pin, "-")
	if negative {
		digits = pin[1:]
	}
	if !isDigits(digits) {
		return ErrPinNotNumeric
	}
	if _, err := strconv.ParseInt(digits, 10, 32); err != nil {
		return ErrPinNotNumeric
	}
	if negative {
		return ErrPinNegative
	}

	return nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}

	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return true
}
