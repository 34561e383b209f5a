package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func TestNearestBookingsByItem(t *testing.T) {
	t.Parallel()
	asOf := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	bookings := []model.Booking{
		{ID: 1, ItemID: 7, BookerID: 100, Start: asOf.Add(-10 * day)},
		{ID: 2, ItemID: 7, BookerID: 101, Start: asOf.Add(-1 * day)},
		{ID: 3, ItemID: 7, BookerID: 102, Start: asOf.Add(5 * day)},
		{ID: 4, ItemID: 7, BookerID: 103, Start: asOf.Add(9 * day)},
		{ID: 5, ItemID: 9, BookerID: 104, Start: asOf.Add(2 * day)},
	}

	nearest := nearestBookingsByItem(bookings, asOf)

	require.Len(t, nearest, 2)
	require.Equal(t, int64(2), nearest[7].last.ID)
	require.Equal(t, int64(3), nearest[7].next.ID)
	require.Nil(t, nearest[9].last)
	require.Equal(t, int64(5), nearest[9].next.ID)
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	item := model.Item{ID: 7, Name: "drill", Available: true, OwnerID: 1}

	tests := []struct {
		name    string
		req     model.CreateBookingRequest
		item    model.Item
		wantErr error
	}{
		{
			name:    "end equal to start is rejected",
			req:     model.CreateBookingRequest{ItemID: 7, BookerID: 2, Start: now, End: now},
			item:    item,
			wantErr: errs.ErrInvalidDate,
		},
		{
			name:    "end before start is rejected",
			req:     model.CreateBookingRequest{ItemID: 7, BookerID: 2, Start: now.Add(time.Hour), End: now},
			item:    item,
			wantErr: errs.ErrInvalidDate,
		},
		{
			name: "unavailable item is rejected",
			req:  model.CreateBookingRequest{ItemID: 7, BookerID: 2, Start: now, End: now.Add(time.Hour)},
			item: model.Item{ID: 7, Available: false, OwnerID: 1},

			wantErr: errs.ErrItemNotAvailable,
		},
		{
			name:    "booking own item looks like a missing item",
			req:     model.CreateBookingRequest{ItemID: 7, BookerID: 1, Start: now, End: now.Add(time.Hour)},
			item:    item,
			wantErr: errs.ErrItemNotFound,
		},
		{
			name: "one second is long enough",
			req:  model.CreateBookingRequest{ItemID: 7, BookerID: 2, Start: now, End: now.Add(time.Second)},
			item: item,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepo{
				getItemFn: func(ctx context.Context, id int64) (model.Item, error) {
					return tt.item, nil
				},
				createBookingFn: func(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
					return model.Booking{
						ID: 42, ItemID: req.ItemID, BookerID: req.BookerID,
						Start: req.Start, End: req.End, Status: model.StatusWaiting,
					}, nil
				},
			}
			svc := NewService(repo, nil, zap.NewNop())

			got, err := svc.CreateBooking(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(42), got.ID)
			require.Equal(t, model.StatusWaiting, got.Status)
		})
	}
}

func TestService_SetApproval(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		booking  model.Booking
		userID   int64
		approved bool
		wantErr  error
		want     model.BookingStatus
	}{
		{
			name:     "waiting approved by owner",
			booking:  model.Booking{ID: 5, OwnerID: 1, Status: model.StatusWaiting},
			userID:   1,
			approved: true,
			want:     model.StatusApproved,
		},
		{
			name:     "waiting rejected by owner",
			booking:  model.Booking{ID: 5, OwnerID: 1, Status: model.StatusWaiting},
			userID:   1,
			approved: false,
			want:     model.StatusRejected,
		},
		{
			name:     "rejected may still be approved",
			booking:  model.Booking{ID: 5, OwnerID: 1, Status: model.StatusRejected},
			userID:   1,
			approved: true,
			want:     model.StatusApproved,
		},
		{
			name:     "approved is terminal",
			booking:  model.Booking{ID: 5, OwnerID: 1, Status: model.StatusApproved},
			userID:   1,
			approved: false,
			wantErr:  errs.ErrAlreadyApproved,
		},
		{
			name:     "only the owner decides",
			booking:  model.Booking{ID: 5, OwnerID: 1, Status: model.StatusWaiting},
			userID:   2,
			approved: true,
			wantErr:  errs.ErrBookingNotBelong,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepo{
				getBookingFn: func(ctx context.Context, id int64) (model.Booking, error) {
					return tt.booking, nil
				},
				updateBookingStatusFn: func(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error) {
					b := tt.booking
					b.Status = status
					return b, nil
				},
			}
			svc := NewService(repo, nil, zap.NewNop())

			got, err := svc.SetApproval(context.Background(), tt.booking.ID, tt.userID, tt.approved)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Status)
		})
	}
}

func TestService_SetApproval_Race(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		booking = model.Booking{ID: 5, OwnerID: 1, Status: model.StatusWaiting}
	)
	repo := &fakeRepo{
		getBookingFn: func(ctx context.Context, id int64) (model.Booking, error) {
			mu.Lock()
			defer mu.Unlock()
			return booking, nil
		},
		updateBookingStatusFn: func(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error) {
			mu.Lock()
			defer mu.Unlock()
			if booking.Status == model.StatusApproved {
				return model.Booking{}, errs.ErrAlreadyApproved
			}
			booking.Status = status
			return booking, nil
		},
	}
	svc := NewService(repo, nil, zap.NewNop())

	const callers = 8
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SetApproval(context.Background(), 5, 1, true)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, errs.ErrAlreadyApproved)
	}
	require.Equal(t, 1, wins)
}

func TestService_ListBookingsOfOwner_NoItems(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		ownedItemIDsFn: func(ctx context.Context, ownerID int64) ([]int64, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, nil, zap.NewNop())

	got, err := svc.ListBookingsOfOwner(context.Background(), 1, model.StateAll, 0, 20)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestService_GetBooking_Visibility(t *testing.T) {
	t.Parallel()
	booking := model.Booking{ID: 5, OwnerID: 1, BookerID: 2, Status: model.StatusWaiting}
	repo := &fakeRepo{
		getBookingFn: func(ctx context.Context, id int64) (model.Booking, error) {
			return booking, nil
		},
	}
	svc := NewService(repo, nil, zap.NewNop())

	_, err := svc.GetBooking(context.Background(), 5, 1)
	require.NoError(t, err)
	_, err = svc.GetBooking(context.Background(), 5, 2)
	require.NoError(t, err)
	_, err = svc.GetBooking(context.Background(), 5, 3)
	require.ErrorIs(t, err, errs.ErrBookingNotBelong)
}
