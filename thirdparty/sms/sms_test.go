package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        string
	}{
		{name: "local number gets default prefix", phone: "9876543210", countryCode: "", want: "+919876543210"},
		{name: "configured country code", phone: "4155550100", countryCode: "+1", want: "+14155550100"},
		{name: "already international", phone: "+447700900123", countryCode: "+91", want: "+447700900123"},
		{name: "already international with blank code", phone: "+919876543210", countryCode: "", want: "+919876543210"},
		{name: "surrounding whitespace is trimmed", phone: "  9876543210 ", countryCode: "", want: "+919876543210"},
		{name: "whitespace before plus", phone: " +14155550100", countryCode: "+91", want: "+14155550100"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.phone, tt.countryCode))
		})
	}
}

func TestVerificationText(t *testing.T) {
	assert.Equal(t,
		"Your HoardSpace verification code is: 482913. Valid for 10 minutes. Do not share this code with anyone.",
		verificationText("482913"),
	)
}
