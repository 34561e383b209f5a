package handler

import (
	"context"

	"github.com/practicum/shareit-service/server/internal/model"
	"github.com/practicum/shareit-service/server/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ UserService    = (*service.Service)(nil)
	_ ItemService    = (*service.Service)(nil)
	_ BookingService = (*service.Service)(nil)
	_ RequestService = (*service.Service)(nil)
)

type UserService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	UpdateUser(ctx context.Context, id int64, upd model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error)
	UpdateItem(ctx context.Context, itemID, ownerID int64, upd model.UpdateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, itemID, userID int64) (model.ItemDetails, error)
	ListItems(ctx context.Context, ownerID, from, size int64) ([]model.ItemDetails, error)
	SearchItems(ctx context.Context, text string, from, size int64) ([]model.Item, error)
	CreateComment(ctx context.Context, itemID, authorID int64, text string) (model.Comment, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.BookingDetails, error)
	SetApproval(ctx context.Context, bookingID, userID int64, approved bool) (model.BookingDetails, error)
	GetBooking(ctx context.Context, bookingID, userID int64) (model.BookingDetails, error)
	ListBookingsOfBooker(ctx context.Context, bookerID int64, state string, from, size int64) ([]model.BookingDetails, error)
	ListBookingsOfOwner(ctx context.Context, ownerID int64, state string, from, size int64) ([]model.BookingDetails, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error)
	ListRequestsOfUser(ctx context.Context, requestorID int64) ([]model.ItemRequestDetails, error)
	ListAllRequests(ctx context.Context, userID, from, size int64) ([]model.ItemRequestDetails, error)
	GetRequest(ctx context.Context, requestID, userID int64) (model.ItemRequestDetails, error)
}
