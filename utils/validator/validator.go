package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/hoardspace/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	otpPattern      = regexp.MustCompile(`^\d{6}$`)
	phonePattern    = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)
	pincodePattern  = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	nv := gpvalidator.New()
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = nv.RegisterValidation("otp", func(fl gpvalidator.FieldLevel) bool {
		return otpPattern.MatchString(fl.Field().String())
	})
	_ = nv.RegisterValidation("kycphone", func(fl gpvalidator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = nv.RegisterValidation("pincode", func(fl gpvalidator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	_ = nv.RegisterValidation("hoardingtype", func(fl gpvalidator.FieldLevel) bool {
		return contains(constant.HoardingTypes, fl.Field().String())
	})
	_ = nv.RegisterValidation("lightingtype", func(fl gpvalidator.FieldLevel) bool {
		return contains(constant.LightingTypes, fl.Field().String())
	})
	v = nv
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// NormalizePhone strips the separators accepted by the kycphone rule.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

func IsValidPincode(pin string) bool {
	return pincodePattern.MatchString(pin)
}

// Message turns the first validation failure into a single sentence.
func Message(err error) string {
	var ves gpvalidator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return "invalid request"
	}
	fe := ves[0]
	field := label(fe.Field())

	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "otp":
		return "OTP must be exactly 6 digits"
	case "kycphone":
		return "Invalid phone number format"
	case "pincode":
		return "Invalid pincode"
	case "hoardingtype":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(constant.HoardingTypes, ", "))
	case "lightingtype":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(constant.LightingTypes, ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), "'", ""))
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

func label(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
