package errors

import "github.com/muhammadheryan/hoardspace/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
	data    any
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Data carries extra machine-readable fields for the response body.
func (c CustomError) Data() any {
	return c.data
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithMessage overrides the default message, e.g. for validation details.
func SetCustomErrorWithMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

func SetCustomErrorWithData(errorType constant.ErrorType, data any) CustomError {
	return CustomError{
		errType: errorType,
		data:    data,
	}
}

// Is matches on error type so errors.Is(err, SetCustomError(t)) works.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}
	return t.errType == c.errType
}
