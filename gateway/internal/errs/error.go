package errs

import (
	"errors"
)

var (
	ErrUserID      = errors.New("user id header is required")
	ErrDefault     = errors.New("some error")
	ErrInvalidDate = errors.New("booking dates are invalid")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
