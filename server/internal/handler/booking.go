package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/practicum/shareit-service/pkg/auth"
	"github.com/practicum/shareit-service/server/internal/model"
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
	req.BookerID = userID
	booking, err := h.bookingSvc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, booking)
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
	booking, err := h.bookingSvc.SetApproval(c.Request().Context(), bookingID, userID, approved)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
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
	booking, err := h.bookingSvc.GetBooking(c.Request().Context(), bookingID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
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
	bookings, err := h.bookingSvc.ListBookingsOfBooker(c.Request().Context(), userID, state, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
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
	bookings, err := h.bookingSvc.ListBookingsOfOwner(c.Request().Context(), userID, state, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func bookingListParams(c echo.Context) (state string, from, size int64, err error) {
	state = c.QueryParam("state")
	if state == "" {
		state = model.StateAll
	}
	from, size, err = paging(c)
	return state, from, size, err
}
