package model

import (
	"time"
)

// Booking state keywords accepted by the listing endpoints.
const (
	StateAll      = "ALL"
	StateCurrent  = "CURRENT"
	StatePast     = "PAST"
	StateFuture   = "FUTURE"
	StateWaiting  = "WAITING"
	StateRejected = "REJECTED"
)

var knownStates = map[string]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

func ValidState(state string) bool {
	_, ok := knownStates[state]
	return ok
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

// InPast reports whether the requested interval begins or ends before now.
func (r CreateBookingRequest) InPast(now time.Time) bool {
	return r.Start.Before(now) || r.End.Before(now)
}

type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"required"`
}
