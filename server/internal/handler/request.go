package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit-service/pkg/auth"
	"github.com/practicum/shareit-service/server/internal/model"
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
	itemReq, err := h.requestSvc.CreateRequest(c.Request().Context(), userID, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, itemReq)
}

func (h *Handler) ListRequestsOfUser(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reqs, err := h.requestSvc.ListRequestsOfUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reqs)
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
	reqs, err := h.requestSvc.ListAllRequests(c.Request().Context(), userID, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reqs)
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
	req, err := h.requestSvc.GetRequest(c.Request().Context(), requestID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, req)
}
