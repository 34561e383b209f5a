package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/pkg/auth"
	md "github.com/practicum/shareit-service/pkg/middleware"
	"github.com/practicum/shareit-service/pkg/validate"
	"github.com/practicum/shareit-service/server/internal/errs"
)

const (
	defaultFrom = 0
	defaultSize = 20
)

type Handler struct {
	userSvc    UserService
	itemSvc    ItemService
	bookingSvc BookingService
	requestSvc RequestService
	log        *zap.Logger
}

func New(userSvc UserService, itemSvc ItemService, bookingSvc BookingService, requestSvc RequestService, log *zap.Logger) *Handler {
	return &Handler{
		userSvc:    userSvc,
		itemSvc:    itemSvc,
		bookingSvc: bookingSvc,
		requestSvc: requestSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	common := []echo.MiddlewareFunc{
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	}

	users := e.Group("/users", common...)
	users.POST("", h.CreateUser)
	users.GET("", h.ListUsers)
	users.GET("/:userId", h.GetUser)
	users.PATCH("/:userId", h.UpdateUser)
	users.DELETE("/:userId", h.DeleteUser)

	items := e.Group("/items", append(common, auth.Middleware)...)
	items.POST("", h.CreateItem)
	items.GET("", h.ListItems)
	items.GET("/search", h.SearchItems)
	items.GET("/:itemId", h.GetItem)
	items.PATCH("/:itemId", h.UpdateItem)
	items.POST("/:itemId/comment", h.CreateComment)

	bookings := e.Group("/bookings", append(common, auth.Middleware)...)
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookingsOfBooker)
	bookings.GET("/owner", h.ListBookingsOfOwner)
	bookings.GET("/:bookingId", h.GetBooking)
	bookings.PATCH("/:bookingId", h.SetApproval)

	requests := e.Group("/requests", append(common, auth.Middleware)...)
	requests.POST("", h.CreateRequest)
	requests.GET("", h.ListRequestsOfUser)
	requests.GET("/all", h.ListAllRequests)
	requests.GET("/:requestId", h.GetRequest)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto transport codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrItemNotBelongToUser),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrBookingNotBelong),
		errors.Is(err, errs.ErrRequestNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidDate),
		errors.Is(err, errs.ErrItemNotAvailable),
		errors.Is(err, errs.ErrUnsupportedState),
		errors.Is(err, errs.ErrAlreadyApproved),
		errors.Is(err, errs.ErrCommentWithoutBooking),
		errors.Is(err, errs.ErrCommentBeforeBookingEnd):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrEmailAlreadyInUse):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%s is invalid", name)
	}
	return id, nil
}

func paging(c echo.Context) (from, size int64, err error) {
	from, size = defaultFrom, defaultSize
	if fromParam := c.QueryParam("from"); fromParam != "" {
		if from, err = strconv.ParseInt(fromParam, 10, 64); err != nil || from < 0 {
			return 0, 0, errors.New("from is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.ParseInt(sizeParam, 10, 64); err != nil || size <= 0 {
			return 0, 0, errors.New("size is invalid")
		}
	}
	return from, size, nil
}
