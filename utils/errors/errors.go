package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/warung-order/constant"
)

type CustomError struct {
	errType constant.ErrorType
	field   string
	detail  string
	cause   error
}

func (c CustomError) Error() string {
	msg := constant.ErrorTypeMessage[c.errType]
	if c.field != "" {
		msg += ": " + c.field
	}
	if c.detail != "" {
		msg += " (" + c.detail + ")"
	}
	return msg
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Field names the request field that failed validation, if any.
func (c CustomError) Field() string {
	return c.field
}

func (c CustomError) Detail() string {
	return c.detail
}

func (c CustomError) Unwrap() error {
	return c.cause
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetFieldError builds a validation style error pointing at one field.
func SetFieldError(errorType constant.ErrorType, field, detail string) CustomError {
	return CustomError{
		errType: errorType,
		field:   field,
		detail:  detail,
	}
}

// Wrap keeps the original cause for diagnostics while exposing only the error type to callers.
func Wrap(errorType constant.ErrorType, cause error) CustomError {
	return CustomError{
		errType: errorType,
		cause:   cause,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := As(err)
	return ok && ce.errType == errorType
}

// As finds the first CustomError in err's chain.
func As(err error) (CustomError, bool) {
	var ce CustomError
	ok := stderrors.As(err, &ce)
	return ce, ok
}
