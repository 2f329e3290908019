package sms

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers text messages to a phone number.
type Sender interface {
	SendVerificationCode(ctx context.Context, phone, code string) error
}

const defaultCountryCode = "+91"

func verificationText(code string) string {
	return fmt.Sprintf("Your HoardSpace verification code is: %s. Valid for 10 minutes. Do not share this code with anyone.", code)
}

// FormatPhone prefixes numbers that carry no country code.
func FormatPhone(phone, countryCode string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if countryCode == "" {
		countryCode = defaultCountryCode
	}
	return countryCode + phone
}
