package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/gateway/config"
	"github.com/practicum/shareit-service/gateway/internal/service/booking"
	"github.com/practicum/shareit-service/gateway/internal/service/item"
	"github.com/practicum/shareit-service/gateway/internal/service/request"
	"github.com/practicum/shareit-service/gateway/internal/service/user"
	"github.com/practicum/shareit-service/pkg/auth"
	"github.com/practicum/shareit-service/pkg/circuit_breaker"
	md "github.com/practicum/shareit-service/pkg/middleware"
	"github.com/practicum/shareit-service/pkg/validate"
	_ "github.com/practicum/shareit-service/swagger"
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

func New(log *zap.Logger, cfg config.Config) *Handler {
	h := &Handler{
		userSvc:    user.NewService(log, cfg),
		itemSvc:    item.NewService(log, cfg),
		bookingSvc: booking.NewService(log, cfg),
		requestSvc: request.NewService(log, cfg),
		log:        log,
	}
	return h
}

// NewWithServices wires pre-built service clients.
func NewWithServices(userSvc UserService, itemSvc ItemService, bookingSvc BookingService, requestSvc RequestService, log *zap.Logger) *Handler {
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
	base.GET("/swagger/*", echoSwagger.WrapHandler)

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

// forward proxies a downstream call through a circuit breaker and relays the
// body and status as-is.
func forward(c echo.Context, cb circuit_breaker.CircuitBreaker, call func() ([]byte, int, error)) error {
	var (
		data []byte
		code int
	)
	if err := cb.Call(func() error {
		var err error
		data, code, err = call()
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}
	return c.JSONBlob(code, data)
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
