package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func TestService_SearchItems_EmptyText(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		searchItemsFn: func(ctx context.Context, text string, page, size int64) ([]model.Item, error) {
			t.Fatal("search must not reach the repository for empty text")
			return nil, nil
		},
	}
	svc := NewService(repo, nil, zap.NewNop())

	got, err := svc.SearchItems(context.Background(), "", 0, 20)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestService_GetItem_NearestBookingsOwnerOnly(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	item := model.Item{ID: 7, Name: "drill", Available: true, OwnerID: 1}
	approved := []model.Booking{
		{ID: 11, ItemID: 7, BookerID: 3, Start: now.Add(-48 * time.Hour), Status: model.StatusApproved},
		{ID: 12, ItemID: 7, BookerID: 4, Start: now.Add(48 * time.Hour), Status: model.StatusApproved},
	}

	newRepo := func() *fakeRepo {
		return &fakeRepo{
			getItemFn: func(ctx context.Context, id int64) (model.Item, error) {
				return item, nil
			},
			approvedBookingsFn: func(ctx context.Context, itemIDs []int64) ([]model.Booking, error) {
				return approved, nil
			},
			listCommentsOfItemsFn: func(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
				return []model.Comment{{ID: 1, ItemID: 7, Text: "works"}}, nil
			},
		}
	}

	svc := NewService(newRepo(), nil, zap.NewNop())
	asOwner, err := svc.GetItem(context.Background(), 7, 1)
	require.NoError(t, err)
	require.NotNil(t, asOwner.LastBooking)
	require.NotNil(t, asOwner.NextBooking)
	require.Equal(t, int64(11), asOwner.LastBooking.ID)
	require.Equal(t, int64(12), asOwner.NextBooking.ID)
	require.Len(t, asOwner.Comments, 1)

	asStranger, err := svc.GetItem(context.Background(), 7, 2)
	require.NoError(t, err)
	require.Nil(t, asStranger.LastBooking)
	require.Nil(t, asStranger.NextBooking)
	require.Len(t, asStranger.Comments, 1)
}

func TestService_CreateComment(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	item := model.Item{ID: 7, Available: true, OwnerID: 1}

	tests := []struct {
		name       string
		bookingErr error
		bookingEnd time.Time
		wantErr    error
	}{
		{
			name:       "no approved booking",
			bookingErr: errs.ErrCommentWithoutBooking,
			wantErr:    errs.ErrCommentWithoutBooking,
		},
		{
			name:       "booking not finished yet",
			bookingEnd: now.Add(time.Hour),
			wantErr:    errs.ErrCommentBeforeBookingEnd,
		},
		{
			name:       "finished booking allows the comment",
			bookingEnd: now.Add(-time.Hour),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepo{
				getItemFn: func(ctx context.Context, id int64) (model.Item, error) {
					return item, nil
				},
				earliestApprovedBookingFn: func(ctx context.Context, itemID, bookerID int64) (model.Booking, error) {
					if tt.bookingErr != nil {
						return model.Booking{}, tt.bookingErr
					}
					return model.Booking{ID: 11, ItemID: itemID, BookerID: bookerID, End: tt.bookingEnd, Status: model.StatusApproved}, nil
				},
				createCommentFn: func(ctx context.Context, itemID, authorID int64, text string) (model.Comment, error) {
					return model.Comment{ID: 1, ItemID: itemID, AuthorID: authorID, Text: text}, nil
				},
			}
			svc := NewService(repo, nil, zap.NewNop())

			got, err := svc.CreateComment(context.Background(), 7, 2, "nice drill")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "nice drill", got.Text)
		})
	}
}
