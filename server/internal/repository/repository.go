package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/server/internal/model"
)

type Repository interface {
	// users
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	UpdateUser(ctx context.Context, id int64, upd model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// items
	CreateItem(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	UpdateItem(ctx context.Context, itemID, ownerID int64, upd model.UpdateItemRequest) (model.Item, error)
	ListItemsOfOwner(ctx context.Context, ownerID, page, size int64) ([]model.Item, error)
	SearchItems(ctx context.Context, text string, page, size int64) ([]model.Item, error)
	OwnedItemIDs(ctx context.Context, ownerID int64) ([]int64, error)
	ListItemsForRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error)

	// bookings
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	UpdateBookingStatusIfNotApproved(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error)
	ListBookingsOfBooker(ctx context.Context, bookerID int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error)
	ListBookingsOfItems(ctx context.Context, itemIDs []int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error)
	ApprovedBookingsOfItems(ctx context.Context, itemIDs []int64) ([]model.Booking, error)
	EarliestApprovedBooking(ctx context.Context, itemID, bookerID int64) (model.Booking, error)

	// comments
	CreateComment(ctx context.Context, itemID, authorID int64, text string) (model.Comment, error)
	ListCommentsOfItems(ctx context.Context, itemIDs []int64) ([]model.Comment, error)

	// item requests
	CreateRequest(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequestsOfUser(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListRequestsOfOthers(ctx context.Context, requestorID, page, size int64) ([]model.ItemRequest, error)

	// booking events
	InsertBookingEvent(ctx context.Context, ev model.BookingEvent) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName         = `users`
	itemsTableName         = `items`
	bookingsTableName      = `bookings`
	commentsTableName      = `comments`
	itemRequestsTableName  = `item_requests`
	bookingEventsTableName = `booking_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
