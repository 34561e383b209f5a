package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit-service/gateway/internal/model"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.userSvc.CB(), func() ([]byte, int, error) {
		return h.userSvc.Create(c.Request().Context(), req)
	})
}

func (h *Handler) ListUsers(c echo.Context) error {
	return forward(c, h.userSvc.CB(), func() ([]byte, int, error) {
		return h.userSvc.List(c.Request().Context())
	})
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.userSvc.CB(), func() ([]byte, int, error) {
		return h.userSvc.Get(c.Request().Context(), id)
	})
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var upd model.UpdateUserRequest
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.userSvc.CB(), func() ([]byte, int, error) {
		return h.userSvc.Update(c.Request().Context(), id, upd)
	})
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.userSvc.CB(), func() ([]byte, int, error) {
		return h.userSvc.Delete(c.Request().Context(), id)
	})
}
