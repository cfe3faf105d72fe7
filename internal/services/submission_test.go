package services

import (
	"errors"
	"strings"
	"testing"
)

func TestSubmitErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := &SubmitError{Step: StepCreateLines, Err: cause}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is failed to unwrap the cause")
	}
	if !strings.Contains(err.Error(), StepCreateLines) {
		t.Errorf("Error() = %q, want the failed step named", err.Error())
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1500, "UZS", "1,500 UZS"},
		{1234567, "UZS", "1,234,567 UZS"},
		{42, "", "42 UZS"},
		{0, "USD", "0 USD"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatPrice(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}
