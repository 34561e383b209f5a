package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func TestBookingStateFilter(t *testing.T) {
	t.Parallel()
	asOf := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		state     string
		wantSQL   string
		wantArgs  []any
		wantOrder string
	}{
		{
			name:      "all has no predicate and orders by end date",
			state:     model.StateAll,
			wantOrder: "b.end_date DESC",
		},
		{
			name:      "current spans asOf and keeps decided statuses",
			state:     model.StateCurrent,
			wantSQL:   "(b.start_date < ? AND b.end_date > ? AND b.status IN (?,?))",
			wantArgs:  []any{asOf, asOf, model.StatusApproved, model.StatusRejected},
			wantOrder: "b.start_date DESC",
		},
		{
			name:      "past ended before asOf",
			state:     model.StatePast,
			wantSQL:   "b.end_date < ?",
			wantArgs:  []any{asOf},
			wantOrder: "b.start_date DESC",
		},
		{
			name:      "future starts after asOf",
			state:     model.StateFuture,
			wantSQL:   "b.start_date > ?",
			wantArgs:  []any{asOf},
			wantOrder: "b.start_date DESC",
		},
		{
			name:      "waiting filters by status",
			state:     model.StateWaiting,
			wantSQL:   "b.status = ?",
			wantArgs:  []any{model.StatusWaiting},
			wantOrder: "b.start_date DESC",
		},
		{
			name:      "rejected filters by status",
			state:     model.StateRejected,
			wantSQL:   "b.status = ?",
			wantArgs:  []any{model.StatusRejected},
			wantOrder: "b.start_date DESC",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cond, orderBy, err := bookingStateFilter(tt.state, asOf)
			require.NoError(t, err)
			require.Equal(t, tt.wantOrder, orderBy)

			if tt.wantSQL == "" {
				require.Nil(t, cond)
				return
			}
			sql, args, err := cond.ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBookingStateFilter_Unknown(t *testing.T) {
	t.Parallel()
	_, _, err := bookingStateFilter("UNSUPPORTED_STATUS", time.Now())
	require.ErrorIs(t, err, errs.ErrUnsupportedState)
}
