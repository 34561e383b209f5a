package repository

import (
	"context"

	"github.com/practicum/shareit-service/server/internal/model"
)

// InsertBookingEvent is idempotent on the event uid so redelivered Kafka
// messages do not duplicate audit rows.
func (r *repository) InsertBookingEvent(ctx context.Context, ev model.BookingEvent) error {
	q, args, err := qb.Insert(bookingEventsTableName).
		Columns("event_uid", "booking_id", "item_id", "status", "occurred_at").
		Values(ev.EventID, ev.BookingID, ev.ItemID, ev.Status, ev.OccurredAt).
		Suffix("on conflict (event_uid) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
