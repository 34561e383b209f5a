package errs

import (
	"errors"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email is already in use")

	ErrItemNotFound        = errors.New("item not found")
	ErrItemNotBelongToUser = errors.New("item does not belong to user")
	ErrItemNotAvailable    = errors.New("item is not available for booking")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingNotBelong = errors.New("user has no access to the booking")
	ErrInvalidDate      = errors.New("invalid booking start/end dates")
	ErrAlreadyApproved  = errors.New("booking is already approved")
	// ErrUnsupportedState carries the exact message clients match on.
	ErrUnsupportedState = errors.New("Unknown state: UNSUPPORTED_STATUS")

	ErrRequestNotFound = errors.New("item request not found")

	ErrCommentWithoutBooking   = errors.New("comment requires a completed booking")
	ErrCommentBeforeBookingEnd = errors.New("comment is not allowed until the booking has ended")
)
