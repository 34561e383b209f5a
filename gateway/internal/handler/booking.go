package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/practicum/shareit-service/gateway/internal/errs"
	"github.com/practicum/shareit-service/gateway/internal/model"
	"github.com/practicum/shareit-service/pkg/auth"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.InPast(time.Now().UTC()) {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrInvalidDate.Error())
	}
	return forward(c, h.bookingSvc.CB(), func() ([]byte, int, error) {
		return h.bookingSvc.Create(c.Request().Context(), userID, req)
	})
}

func (h *Handler) SetApproval(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("approved is invalid"))
	}
	return forward(c, h.bookingSvc.CB(), func() ([]byte, int, error) {
		return h.bookingSvc.SetApproval(c.Request().Context(), userID, bookingID, approved)
	})
}

func (h *Handler) GetBooking(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.bookingSvc.CB(), func() ([]byte, int, error) {
		return h.bookingSvc.Get(c.Request().Context(), userID, bookingID)
	})
}

func (h *Handler) ListBookingsOfBooker(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	state, from, size, err := bookingListParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.bookingSvc.CB(), func() ([]byte, int, error) {
		return h.bookingSvc.ListOfBooker(c.Request().Context(), userID, state, from, size)
	})
}

func (h *Handler) ListBookingsOfOwner(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	state, from, size, err := bookingListParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.bookingSvc.CB(), func() ([]byte, int, error) {
		return h.bookingSvc.ListOfOwner(c.Request().Context(), userID, state, from, size)
	})
}

// bookingListParams rejects unknown state keywords before anything is
// forwarded downstream.
func bookingListParams(c echo.Context) (state string, from, size int64, err error) {
	state = c.QueryParam("state")
	if state == "" {
		state = model.StateAll
	}
	if !model.ValidState(state) {
		return "", 0, 0, errors.New("Unknown state: " + state)
	}
	from, size, err = paging(c)
	return state, from, size, err
}
