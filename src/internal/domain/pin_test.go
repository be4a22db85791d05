package domain_test

import (
	"testing"

	"github.com/api-sage/magic-card/src/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidatePin(t *testing.T) {
	tests := []struct {
		name string
		pin  string
		want error
	}{
		{name: "four digits", pin: "1234"},
		{name: "leading zeros", pin: "0007"},
		{name: "surrounding whitespace", pin: " 4321 "},
		{name: "empty", pin: "", want: domain.ErrPinRequired},
		{name: "blank", pin: "   ", want: domain.ErrPinRequired},
		{name: "letters", pin: "ABCD", want: domain.ErrPinNotNumeric},
		{name: "mixed", pin: "12a4", want: domain.ErrPinNotNumeric},
		{name: "decimal point", pin: "12.4", want: domain.ErrPinNotNumeric},
		{name: "plus sign", pin: "+123", want: domain.ErrPinNotNumeric},
		{name: "overflows int32", pin: "99999999999", want: domain.ErrPinNotNumeric},
		{name: "negative", pin: "-234", want: domain.ErrPinNegative},
		{name: "bare minus", pin: "-", want: domain.ErrPinNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePin(tt.pin)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}
