package handler

import (
	"context"

	"github.com/practicum/shareit-service/gateway/internal/model"
	"github.com/practicum/shareit-service/gateway/internal/service/booking"
	"github.com/practicum/shareit-service/gateway/internal/service/item"
	"github.com/practicum/shareit-service/gateway/internal/service/request"
	"github.com/practicum/shareit-service/gateway/internal/service/user"
	"github.com/practicum/shareit-service/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ UserService    = (*user.Service)(nil)
	_ ItemService    = (*item.Service)(nil)
	_ BookingService = (*booking.Service)(nil)
	_ RequestService = (*request.Service)(nil)
)

type UserService interface {
	CB() circuit_breaker.CircuitBreaker
	Create(ctx context.Context, request model.CreateUserRequest) ([]byte, int, error)
	List(ctx context.Context) ([]byte, int, error)
	Get(ctx context.Context, userID int64) ([]byte, int, error)
	Update(ctx context.Context, userID int64, request model.UpdateUserRequest) ([]byte, int, error)
	Delete(ctx context.Context, userID int64) ([]byte, int, error)
}

type ItemService interface {
	CB() circuit_breaker.CircuitBreaker
	Create(ctx context.Context, userID int64, request model.CreateItemRequest) ([]byte, int, error)
	Update(ctx context.Context, userID, itemID int64, request model.UpdateItemRequest) ([]byte, int, error)
	Get(ctx context.Context, userID, itemID int64) ([]byte, int, error)
	List(ctx context.Context, userID, from, size int64) ([]byte, int, error)
	Search(ctx context.Context, userID int64, text string, from, size int64) ([]byte, int, error)
	Comment(ctx context.Context, userID, itemID int64, request model.CreateCommentRequest) ([]byte, int, error)
}

type BookingService interface {
	CB() circuit_breaker.CircuitBreaker
	Create(ctx context.Context, userID int64, request model.CreateBookingRequest) ([]byte, int, error)
	SetApproval(ctx context.Context, userID, bookingID int64, approved bool) ([]byte, int, error)
	Get(ctx context.Context, userID, bookingID int64) ([]byte, int, error)
	ListOfBooker(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error)
	ListOfOwner(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error)
}

type RequestService interface {
	CB() circuit_breaker.CircuitBreaker
	Create(ctx context.Context, userID int64, request model.CreateItemRequestRequest) ([]byte, int, error)
	ListOwn(ctx context.Context, userID int64) ([]byte, int, error)
	ListAll(ctx context.Context, userID, from, size int64) ([]byte, int, error)
	Get(ctx context.Context, userID, requestID int64) ([]byte, int, error)
}
