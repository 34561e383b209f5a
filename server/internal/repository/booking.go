package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

// bookingStateFilter maps a state keyword to its predicate and ordering, with
// asOf as the evaluation instant. CURRENT deliberately includes REJECTED
// bookings alongside APPROVED ones, same as the API always has.
func bookingStateFilter(state string, asOf time.Time) (cond sq.Sqlizer, orderBy string, err error) {
	switch state {
	case model.StateAll:
		return nil, "b.end_date DESC", nil
	case model.StateCurrent:
		return sq.And{
			sq.Lt{"b.start_date": asOf},
			sq.Gt{"b.end_date": asOf},
			sq.Eq{"b.status": []model.BookingStatus{model.StatusApproved, model.StatusRejected}},
		}, "b.start_date DESC", nil
	case model.StatePast:
		return sq.Lt{"b.end_date": asOf}, "b.start_date DESC", nil
	case model.StateFuture:
		return sq.Gt{"b.start_date": asOf}, "b.start_date DESC", nil
	case model.StateWaiting:
		return sq.Eq{"b.status": model.StatusWaiting}, "b.start_date DESC", nil
	case model.StateRejected:
		return sq.Eq{"b.status": model.StatusRejected}, "b.start_date DESC", nil
	default:
		return nil, "", errs.ErrUnsupportedState
	}
}

func bookingSelect() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.start_date", "b.end_date", "b.item_id", "b.booker_id", "b.status",
		"i.name as item_name", "i.owner_id", "u.name as booker_name").
		From(bookingsTableName + " b").
		Join(fmt.Sprintf("%s i on i.id = b.item_id", itemsTableName)).
		Join(fmt.Sprintf("%s u on u.id = b.booker_id", usersTableName))
}

// CreateBooking re-checks availability and ownership atomically with the
// insert: the select feeding the insert sees the item row under the statement
// snapshot, so a concurrent availability flip cannot slip a booking through.
func (r *repository) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	q := fmt.Sprintf(`
	insert into %s (start_date, end_date, item_id, booker_id, status)
	select $1, $2, i.id, $3, $4
	from %s i
	where i.id = $5 and i.available and i.owner_id <> $3
	returning id`, bookingsTableName, itemsTableName)

	var id int64
	err := r.db.QueryRowContext(ctx, q,
		req.Start, req.End, req.BookerID, model.StatusWaiting, req.ItemID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrItemNotAvailable
		}
		r.log.Error("CreateBooking", zap.Error(err))
		return model.Booking{}, err
	}
	return r.GetBooking(ctx, id)
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	q, args, err := bookingSelect().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// UpdateBookingStatusIfNotApproved is the single atomic transition of the
// booking state machine: APPROVED is terminal, REJECTED may still be flipped
// to APPROVED. Under two concurrent approvals exactly one UPDATE matches.
func (r *repository) UpdateBookingStatusIfNotApproved(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error) {
	q := fmt.Sprintf(`
	update %s set status = $2
	where id = $1 and status <> $3
	returning id`, bookingsTableName)

	var id int64
	err := r.db.QueryRowContext(ctx, q, bookingID, status, model.StatusApproved).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrAlreadyApproved
		}
		return model.Booking{}, err
	}
	return r.GetBooking(ctx, id)
}

func (r *repository) ListBookingsOfBooker(ctx context.Context, bookerID int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error) {
	cond, orderBy, err := bookingStateFilter(state, asOf)
	if err != nil {
		return nil, err
	}
	b := bookingSelect().
		Where(sq.Eq{"b.booker_id": bookerID})
	if cond != nil {
		b = b.Where(cond)
	}
	q, args, err := b.OrderBy(orderBy).
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBookingsOfBooker", zap.String("query", q), zap.Any("args", args))

	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, q, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListBookingsOfItems(ctx context.Context, itemIDs []int64, state string, asOf time.Time, page, size int64) ([]model.Booking, error) {
	cond, orderBy, err := bookingStateFilter(state, asOf)
	if err != nil {
		return nil, err
	}
	b := bookingSelect().
		Where(sq.Eq{"b.item_id": itemIDs})
	if cond != nil {
		b = b.Where(cond)
	}
	q, args, err := b.OrderBy(orderBy).
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, q, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ApprovedBookingsOfItems(ctx context.Context, itemIDs []int64) ([]model.Booking, error) {
	if len(itemIDs) == 0 {
		return []model.Booking{}, nil
	}
	q, args, err := bookingSelect().
		Where(sq.Eq{"b.item_id": itemIDs}).
		Where(sq.Eq{"b.status": model.StatusApproved}).
		ToSql()
	if err != nil {
		return nil, err
	}
	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, q, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

// EarliestApprovedBooking returns the first approved booking the booker ever
// had on the item; comment eligibility is decided against that one booking.
func (r *repository) EarliestApprovedBooking(ctx context.Context, itemID, bookerID int64) (model.Booking, error) {
	q, args, err := bookingSelect().
		Where(sq.Eq{"b.item_id": itemID}).
		Where(sq.Eq{"b.booker_id": bookerID}).
		Where(sq.Eq{"b.status": model.StatusApproved}).
		OrderBy("b.start_date ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrCommentWithoutBooking
		}
		return model.Booking{}, err
	}
	return b, nil
}
