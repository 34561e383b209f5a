package model

import (
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// Booking state filter keywords. Anything else is rejected.
const (
	StateAll      = "ALL"
	StateCurrent  = "CURRENT"
	StatePast     = "PAST"
	StateFuture   = "FUTURE"
	StateWaiting  = "WAITING"
	StateRejected = "REJECTED"
)

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"-" db:"owner_id"`
	RequestID   *int64 `json:"requestId,omitempty" db:"request_id"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemDetails is the item as presented to its owner: comments always, nearest
// approved bookings only when the caller owns the item.
type ItemDetails struct {
	Item
	LastBooking *BookingBrief `json:"lastBooking,omitempty"`
	NextBooking *BookingBrief `json:"nextBooking,omitempty"`
	Comments    []Comment     `json:"comments"`
}

type BookingBrief struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// Booking is the stored record joined with the names the DTO layer needs.
type Booking struct {
	ID       int64         `json:"id" db:"id"`
	Start    time.Time     `json:"start" db:"start_date"`
	End      time.Time     `json:"end" db:"end_date"`
	ItemID   int64         `json:"-" db:"item_id"`
	BookerID int64         `json:"-" db:"booker_id"`
	Status   BookingStatus `json:"status" db:"status"`

	ItemName   string `json:"-" db:"item_name"`
	OwnerID    int64  `json:"-" db:"owner_id"`
	BookerName string `json:"-" db:"booker_name"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`

	BookerID int64 `json:"-"`
}

type ItemBrief struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserBrief struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingDetails struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
	Item   ItemBrief     `json:"item"`
	Booker UserBrief     `json:"booker"`
}

type Comment struct {
	ID         int64     `json:"id" db:"id"`
	Text       string    `json:"text" db:"text"`
	ItemID     int64     `json:"-" db:"item_id"`
	AuthorID   int64     `json:"-" db:"author_id"`
	AuthorName string    `json:"authorName" db:"author_name"`
	Created    time.Time `json:"created" db:"created"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type ItemRequest struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	RequestorID int64     `json:"-" db:"requestor_id"`
	Created     time.Time `json:"created" db:"created"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"required"`
}

type ItemRequestDetails struct {
	ItemRequest
	Items []Item `json:"items"`
}

// BookingEvent is the audit record published to Kafka on every booking
// lifecycle change.
type BookingEvent struct {
	EventID    string        `json:"eventId"`
	BookingID  int64         `json:"bookingId"`
	ItemID     int64         `json:"itemId"`
	Status     BookingStatus `json:"status"`
	OccurredAt time.Time     `json:"occurredAt"`
}
