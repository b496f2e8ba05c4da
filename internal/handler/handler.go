package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/pkg/errors"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/pkg/validate"
	_ "github.com/bookswap/exchange-service/swagger"
)

type Handler struct {
	bookSvc     BookService
	exchangeSvc ExchangeService
	chatSvc     ChatService
	paymentsSvc PaymentsService
	enqueuer    Enqueuer
	log         *zap.Logger
}

func New(log *zap.Logger, book BookService, exchange ExchangeService, chat ChatService, pay PaymentsService, enq Enqueuer) *Handler {
	return &Handler{
		bookSvc:     book,
		exchangeSvc: exchange,
		chatSvc:     chat,
		paymentsSvc: pay,
		enqueuer:    enq,
		log:         log,
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

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		authContext,
	)

	api.GET("/books", h.ListAvailableBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/mine", h.ListMyBooks)
	api.GET("/books/:bookUid", h.GetBook)
	api.PATCH("/books/:bookUid", h.UpdateBook)
	api.DELETE("/books/:bookUid", h.DisableBook)

	api.POST("/books/:bookUid/rentals", h.CreateRental)
	api.POST("/books/:bookUid/purchases", h.CreatePurchase)

	api.GET("/transactions", h.GetTransactions)
	api.GET("/rentals/:rentalUid", h.GetRental)
	api.POST("/rentals/:rentalUid/approve", h.ApproveRental)
	api.POST("/rentals/:rentalUid/reject", h.RejectRental)
	api.POST("/rentals/:rentalUid/return", h.ReturnRental)
	api.GET("/purchases/:purchaseUid", h.GetPurchase)
	api.POST("/purchases/:purchaseUid/approve", h.ApprovePurchase)
	api.POST("/purchases/:purchaseUid/reject", h.RejectPurchase)

	api.POST("/transactions/:transactionUid/channel", h.ProvisionChannel)
	api.GET("/channels", h.ListChannels)
	api.GET("/channels/:channelUid/messages", h.GetMessages)
	api.POST("/channels/:channelUid/messages", h.SendMessage)
	api.GET("/channels/:channelUid/subscribe", h.SubscribeChannel)

	api.GET("/payments/:username", h.GetPaymentInfo)
	api.GET("/stats", h.GetStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// pathUUID reads a uuid path parameter. Rejecting malformed values here
// keeps them from reaching the database as a failed uuid cast.
func pathUUID(c echo.Context, name string) (string, error) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is not a valid uuid", name))
	}
	return v, nil
}

// httpError maps domain sentinels onto status codes. Inventory conflicts and
// stale transitions come back as 409 so the caller can retry or refresh.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrDuplicateRequest):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrOwnBook),
		errors.Is(err, errs.ErrBookDisabled),
		errors.Is(err, errs.ErrEmptyMessage):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrMissingParticipant):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
