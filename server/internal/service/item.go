package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func (s *Service) CreateItem(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error) {
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return model.Item{}, err
	}
	if req.RequestID != nil {
		if _, err := s.repo.GetRequest(ctx, *req.RequestID); err != nil {
			return model.Item{}, err
		}
	}
	item, err := s.repo.CreateItem(ctx, req, ownerID)
	if err != nil {
		return model.Item{}, err
	}
	s.log.Info("item created", zap.Int64("id", item.ID), zap.Int64("ownerId", ownerID))
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, itemID, ownerID int64, upd model.UpdateItemRequest) (model.Item, error) {
	return s.repo.UpdateItem(ctx, itemID, ownerID, upd)
}

func (s *Service) GetItem(ctx context.Context, itemID, userID int64) (model.ItemDetails, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemDetails{}, err
	}
	details := []model.ItemDetails{{Item: item, Comments: []model.Comment{}}}

	// Nearest bookings are owner-only information.
	if item.OwnerID == userID {
		approved, err := s.repo.ApprovedBookingsOfItems(ctx, []int64{item.ID})
		if err != nil {
			return model.ItemDetails{}, err
		}
		attachNearestBookings(details, approved, time.Now().UTC())
	}

	comments, err := s.repo.ListCommentsOfItems(ctx, []int64{item.ID})
	if err != nil {
		return model.ItemDetails{}, err
	}
	attachComments(details, comments)

	return details[0], nil
}

func (s *Service) ListItems(ctx context.Context, ownerID, from, size int64) ([]model.ItemDetails, error) {
	items, err := s.repo.ListItemsOfOwner(ctx, ownerID, pageIndex(from, size), size)
	if err != nil {
		return nil, err
	}
	itemIDs := make([]int64, 0, len(items))
	details := make([]model.ItemDetails, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
		details = append(details, model.ItemDetails{Item: item, Comments: []model.Comment{}})
	}

	var (
		approved []model.Booking
		comments []model.Comment
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		approved, err = s.repo.ApprovedBookingsOfItems(gctx, itemIDs)
		return err
	})
	gg.Go(func() error {
		var err error
		comments, err = s.repo.ListCommentsOfItems(gctx, itemIDs)
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}

	attachNearestBookings(details, approved, time.Now().UTC())
	attachComments(details, comments)
	return details, nil
}

func (s *Service) SearchItems(ctx context.Context, text string, from, size int64) ([]model.Item, error) {
	// Empty search text means an empty result, not a full scan.
	if text == "" {
		return []model.Item{}, nil
	}
	return s.repo.SearchItems(ctx, text, pageIndex(from, size), size)
}

func (s *Service) CreateComment(ctx context.Context, itemID, authorID int64, text string) (model.Comment, error) {
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return model.Comment{}, err
	}
	if _, err := s.repo.GetUser(ctx, authorID); err != nil {
		return model.Comment{}, err
	}
	booking, err := s.repo.EarliestApprovedBooking(ctx, itemID, authorID)
	if err != nil {
		return model.Comment{}, err
	}
	if booking.End.After(time.Now().UTC()) {
		return model.Comment{}, errs.ErrCommentBeforeBookingEnd
	}
	comment, err := s.repo.CreateComment(ctx, itemID, authorID, text)
	if err != nil {
		return model.Comment{}, err
	}
	s.log.Info("comment created", zap.Int64("id", comment.ID), zap.Int64("itemId", itemID))
	return comment, nil
}

func attachNearestBookings(details []model.ItemDetails, approved []model.Booking, asOf time.Time) {
	nearest := nearestBookingsByItem(approved, asOf)
	for i := range details {
		n, ok := nearest[details[i].ID]
		if !ok {
			continue
		}
		if n.last != nil {
			details[i].LastBooking = &model.BookingBrief{ID: n.last.ID, BookerID: n.last.BookerID}
		}
		if n.next != nil {
			details[i].NextBooking = &model.BookingBrief{ID: n.next.ID, BookerID: n.next.BookerID}
		}
	}
}

func attachComments(details []model.ItemDetails, comments []model.Comment) {
	byItem := make(map[int64][]model.Comment)
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}
	for i := range details {
		if list, ok := byItem[details[i].ID]; ok {
			details[i].Comments = list
		}
	}
}
