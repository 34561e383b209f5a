package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit-service/server/internal/model"
)

func TestPageIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		from, size int64
		want       int64
	}{
		{"first page", 0, 20, 0},
		{"exact boundary", 20, 20, 1},
		{"offset inside a page rounds down", 7, 3, 2},
		{"one past boundary rounds down", 21, 20, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, pageIndex(tt.from, tt.size))
		})
	}
}

// fakeRepo lets each test plug in just the calls it expects.
type fakeRepo struct {
	createUserFn func(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	listUsersFn  func(ctx context.Context) ([]model.User, error)
	getUserFn    func(ctx context.Context, id int64) (model.User, error)
	updateUserFn func(ctx context.Context, id int64, upd model.UpdateUserRequest) (model.User, error)
	deleteUserFn func(ctx context.Context, id int64) error

	createItemFn           func(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error)
	getItemFn              func(ctx context.Context, id int64) (model.Item, error)
	updateItemFn           func(ctx context.Context, itemID, ownerID int64, upd model.UpdateItemRequest) (model.Item, error)
	listItemsOfOwnerFn     func(ctx context.Context, ownerID, page, size int64) ([]model.Item, error)
	searchItemsFn          func(ctx context.Context, text string, page, size int64) ([]model.Item, error)
	ownedItemIDsFn         func(ctx context.Context, ownerID int64) ([]int64, error)
	listItemsForRequestsFn func(ctx context.Context, requestIDs []int64) ([]model.Item, error)

	createBookingFn           func(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	getBookingFn              func(ctx context.Context, id int64) (model.Booking, error)
	updateBookingStatusFn     func(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error)
	listBookingsOfBookerFn    func(ctx context.Context, bookerID int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error)
	listBookingsOfItemsFn     func(ctx context.Context, itemIDs []int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error)
	approvedBookingsFn        func(ctx context.Context, itemIDs []int64) ([]model.Booking, error)
	earliestApprovedBookingFn func(ctx context.Context, itemID, bookerID int64) (model.Booking, error)

	createCommentFn       func(ctx context.Context, itemID, authorID int64, text string) (model.Comment, error)
	listCommentsOfItemsFn func(ctx context.Context, itemIDs []int64) ([]model.Comment, error)

	createRequestFn        func(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error)
	getRequestFn           func(ctx context.Context, id int64) (model.ItemRequest, error)
	listRequestsOfUserFn   func(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	listRequestsOfOthersFn func(ctx context.Context, requestorID, page, size int64) ([]model.ItemRequest, error)

	insertBookingEventFn func(ctx context.Context, ev model.BookingEvent) error
}

func (f *fakeRepo) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	return f.createUserFn(ctx, req)
}

func (f *fakeRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeRepo) GetUser(ctx context.Context, id int64) (model.User, error) {
	if f.getUserFn == nil {
		return model.User{ID: id}, nil
	}
	return f.getUserFn(ctx, id)
}

func (f *fakeRepo) UpdateUser(ctx context.Context, id int64, upd model.UpdateUserRequest) (model.User, error) {
	return f.updateUserFn(ctx, id, upd)
}

func (f *fakeRepo) DeleteUser(ctx context.Context, id int64) error {
	return f.deleteUserFn(ctx, id)
}

func (f *fakeRepo) CreateItem(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error) {
	return f.createItemFn(ctx, req, ownerID)
}

func (f *fakeRepo) GetItem(ctx context.Context, id int64) (model.Item, error) {
	return f.getItemFn(ctx, id)
}

func (f *fakeRepo) UpdateItem(ctx context.Context, itemID, ownerID int64, upd model.UpdateItemRequest) (model.Item, error) {
	return f.updateItemFn(ctx, itemID, ownerID, upd)
}

func (f *fakeRepo) ListItemsOfOwner(ctx context.Context, ownerID, page, size int64) ([]model.Item, error) {
	return f.listItemsOfOwnerFn(ctx, ownerID, page, size)
}

func (f *fakeRepo) SearchItems(ctx context.Context, text string, page, size int64) ([]model.Item, error) {
	return f.searchItemsFn(ctx, text, page, size)
}

func (f *fakeRepo) OwnedItemIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	return f.ownedItemIDsFn(ctx, ownerID)
}

func (f *fakeRepo) ListItemsForRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error) {
	return f.listItemsForRequestsFn(ctx, requestIDs)
}

func (f *fakeRepo) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	return f.createBookingFn(ctx, req)
}

func (f *fakeRepo) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	return f.getBookingFn(ctx, id)
}

func (f *fakeRepo) UpdateBookingStatusIfNotApproved(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error) {
	return f.updateBookingStatusFn(ctx, bookingID, status)
}

func (f *fakeRepo) ListBookingsOfBooker(ctx context.Context, bookerID int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error) {
	return f.listBookingsOfBookerFn(ctx, bookerID, state, asOf, page, size)
}

func (f *fakeRepo) ListBookingsOfItems(ctx context.Context, itemIDs []int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error) {
	return f.listBookingsOfItemsFn(ctx, itemIDs, state, asOf, page, size)
}

func (f *fakeRepo) ApprovedBookingsOfItems(ctx context.Context, itemIDs []int64) ([]model.Booking, error) {
	return f.approvedBookingsFn(ctx, itemIDs)
}

func (f *fakeRepo) EarliestApprovedBooking(ctx context.Context, itemID, bookerID int64) (model.Booking, error) {
	return f.earliestApprovedBookingFn(ctx, itemID, bookerID)
}

func (f *fakeRepo) CreateComment(ctx context.Context, itemID, authorID int64, text string) (model.Comment, error) {
	return f.createCommentFn(ctx, itemID, authorID, text)
}

func (f *fakeRepo) ListCommentsOfItems(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
	return f.listCommentsOfItemsFn(ctx, itemIDs)
}

func (f *fakeRepo) CreateRequest(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error) {
	return f.createRequestFn(ctx, requestorID, description)
}

func (f *fakeRepo) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	return f.getRequestFn(ctx, id)
}

func (f *fakeRepo) ListRequestsOfUser(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	return f.listRequestsOfUserFn(ctx, requestorID)
}

func (f *fakeRepo) ListRequestsOfOthers(ctx context.Context, requestorID, page, size int64) ([]model.ItemRequest, error) {
	return f.listRequestsOfOthersFn(ctx, requestorID, page, size)
}

func (f *fakeRepo) InsertBookingEvent(ctx context.Context, ev model.BookingEvent) error {
	return f.insertBookingEventFn(ctx, ev)
}
