package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/practicum/shareit-service/gateway/internal/model"
	"github.com/practicum/shareit-service/pkg/auth"
)

func (h *Handler) CreateItem(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.itemSvc.CB(), func() ([]byte, int, error) {
		return h.itemSvc.Create(c.Request().Context(), userID, req)
	})
}

func (h *Handler) UpdateItem(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var upd model.UpdateItemRequest
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.itemSvc.CB(), func() ([]byte, int, error) {
		return h.itemSvc.Update(c.Request().Context(), userID, itemID, upd)
	})
}

func (h *Handler) GetItem(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.itemSvc.CB(), func() ([]byte, int, error) {
		return h.itemSvc.Get(c.Request().Context(), userID, itemID)
	})
}

func (h *Handler) ListItems(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	from, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.itemSvc.CB(), func() ([]byte, int, error) {
		return h.itemSvc.List(c.Request().Context(), userID, from, size)
	})
}

func (h *Handler) SearchItems(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	from, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.itemSvc.CB(), func() ([]byte, int, error) {
		return h.itemSvc.Search(c.Request().Context(), userID, c.QueryParam("text"), from, size)
	})
}

func (h *Handler) CreateComment(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return forward(c, h.itemSvc.CB(), func() ([]byte, int, error) {
		return h.itemSvc.Comment(c.Request().Context(), userID, itemID, req)
	})
}
