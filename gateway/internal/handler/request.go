package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit-service/gateway/internal/model"
	"github.com/practicum/shareit-service/pkg/auth"
)

func (h *Handler) CreateRequest(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.requestSvc.CB(), func() ([]byte, int, error) {
		return h.requestSvc.Create(c.Request().Context(), userID, req)
	})
}

func (h *Handler) ListRequestsOfUser(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.requestSvc.CB(), func() ([]byte, int, error) {
		return h.requestSvc.ListOwn(c.Request().Context(), userID)
	})
}

func (h *Handler) ListAllRequests(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	from, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.requestSvc.CB(), func() ([]byte, int, error) {
		return h.requestSvc.ListAll(c.Request().Context(), userID, from, size)
	})
}

func (h *Handler) GetRequest(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.requestSvc.CB(), func() ([]byte, int, error) {
		return h.requestSvc.Get(c.Request().Context(), userID, requestID)
	})
}
