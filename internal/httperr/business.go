package httperr

import (
	"errors"
	"strings"
)

type BusinessError struct {
	Code   string
	Fields []string
}

func (e BusinessError) Error() string {
	if len(e.Fields) == 0 {
		return e.Code
	}
	return e.Code + ": " + strings.Join(e.Fields, ", ")
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrInvalidInput reports which request fields were missing or unusable.
func ErrInvalidInput(code string, fields ...string) error {
	return BusinessError{Code: code, Fields: fields}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" if there is none.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
