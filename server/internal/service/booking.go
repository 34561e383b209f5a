package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/pkg/kafka"
	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.BookingDetails, error) {
	if req.End.Before(req.Start) || req.Start.Equal(req.End) {
		return model.BookingDetails{}, errs.ErrInvalidDate
	}
	item, err := s.repo.GetItem(ctx, req.ItemID)
	if err != nil {
		return model.BookingDetails{}, err
	}
	if !item.Available {
		return model.BookingDetails{}, errs.ErrItemNotAvailable
	}
	// An owner booking their own item gets the same answer as a missing item,
	// so probing cannot reveal who owns what.
	if item.OwnerID == req.BookerID {
		return model.BookingDetails{}, errs.ErrItemNotFound
	}
	if _, err := s.repo.GetUser(ctx, req.BookerID); err != nil {
		return model.BookingDetails{}, err
	}

	booking, err := s.repo.CreateBooking(ctx, req)
	if err != nil {
		return model.BookingDetails{}, err
	}
	s.log.Info("booking created",
		zap.Int64("id", booking.ID), zap.Int64("itemId", booking.ItemID))
	s.publishBookingEvent(booking)

	return toBookingDetails(booking), nil
}

func (s *Service) SetApproval(ctx context.Context, bookingID, userID int64, approved bool) (model.BookingDetails, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingDetails{}, err
	}
	if booking.OwnerID != userID {
		return model.BookingDetails{}, errs.ErrBookingNotBelong
	}
	if booking.Status == model.StatusApproved {
		return model.BookingDetails{}, errs.ErrAlreadyApproved
	}

	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}
	// The conditional update re-checks the status at write time, so two racing
	// approvals cannot both win.
	updated, err := s.repo.UpdateBookingStatusIfNotApproved(ctx, bookingID, status)
	if err != nil {
		return model.BookingDetails{}, err
	}
	s.log.Info("booking decided",
		zap.Int64("id", updated.ID), zap.String("status", string(updated.Status)))
	s.publishBookingEvent(updated)

	return toBookingDetails(updated), nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID, userID int64) (model.BookingDetails, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingDetails{}, err
	}
	if booking.BookerID != userID && booking.OwnerID != userID {
		return model.BookingDetails{}, errs.ErrBookingNotBelong
	}
	return toBookingDetails(booking), nil
}

func (s *Service) ListBookingsOfBooker(ctx context.Context, bookerID int64, state string, from, size int64) ([]model.BookingDetails, error) {
	if _, err := s.repo.GetUser(ctx, bookerID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListBookingsOfBooker(ctx, bookerID, state, time.Now().UTC(), pageIndex(from, size), size)
	if err != nil {
		return nil, err
	}
	return toBookingDetailsList(bookings), nil
}

func (s *Service) ListBookingsOfOwner(ctx context.Context, ownerID int64, state string, from, size int64) ([]model.BookingDetails, error) {
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}
	itemIDs, err := s.repo.OwnedItemIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	// An owner with no items has nothing to show; that is not an error.
	if len(itemIDs) == 0 {
		return []model.BookingDetails{}, nil
	}
	bookings, err := s.repo.ListBookingsOfItems(ctx, itemIDs, state, time.Now().UTC(), pageIndex(from, size), size)
	if err != nil {
		return nil, err
	}
	return toBookingDetailsList(bookings), nil
}

type nearestBookings struct {
	last *model.Booking
	next *model.Booking
}

// nearestBookingsByItem partitions approved bookings per item into those that
// started before asOf and those starting after, keeping the latest of the
// former and the earliest of the latter.
func nearestBookingsByItem(bookings []model.Booking, asOf time.Time) map[int64]nearestBookings {
	nearest := make(map[int64]nearestBookings)
	for i := range bookings {
		b := bookings[i]
		n := nearest[b.ItemID]
		switch {
		case b.Start.Before(asOf):
			if n.last == nil || b.Start.After(n.last.Start) {
				n.last = &b
			}
		case b.Start.After(asOf):
			if n.next == nil || b.Start.Before(n.next.Start) {
				n.next = &b
			}
		}
		nearest[b.ItemID] = n
	}
	return nearest
}

func toBookingDetails(b model.Booking) model.BookingDetails {
	return model.BookingDetails{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item:   model.ItemBrief{ID: b.ItemID, Name: b.ItemName},
		Booker: model.UserBrief{ID: b.BookerID, Name: b.BookerName},
	}
}

func toBookingDetailsList(bookings []model.Booking) []model.BookingDetails {
	details := make([]model.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, toBookingDetails(b))
	}
	return details
}

// publishBookingEvent is fire-and-forget: the audit feed must never fail a
// request.
func (s *Service) publishBookingEvent(b model.Booking) {
	if s.producer == nil {
		return
	}
	ev := model.BookingEvent{
		EventID:    uuid.NewString(),
		BookingID:  b.ID,
		ItemID:     b.ItemID,
		Status:     b.Status,
		OccurredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("marshal booking event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.BookingEventsTopic, Value: sarama.ByteEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Error("publish booking event", zap.Error(err))
	}
}

// RecordBookingEvent folds a consumed booking event into the audit table.
func (s *Service) RecordBookingEvent(ctx context.Context, ev model.BookingEvent) error {
	return s.repo.InsertBookingEvent(ctx, ev)
}
