package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/auth"
	"github.com/bookswap/exchange-service/pkg/kafka"
)

// publishEvent emits a lifecycle event to the stats pipeline. Best effort:
// a broker hiccup never fails the transaction itself.
func (h *Handler) publishEvent(eventType, transactionUid, bookUid, user string, amount float64) {
	ev := kafka.Event{
		Timestamp:      time.Now().UTC(),
		UserName:       user,
		TransactionUID: transactionUid,
		BookUID:        bookUid,
		EventType:      eventType,
		Amount:         amount,
	}
	if err := h.enqueuer.Enqueue(kafka.ExchangeTopic, ev); err != nil {
		h.log.Warn("enqueue event", zap.String("eventType", eventType), zap.Error(err))
	}
}

// CreateRental godoc
// @Summary  Request to rent a book
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Success  201 {object} model.Rental
// @Router   /api/v1/books/{bookUid}/rentals [post]
func (h *Handler) CreateRental(c echo.Context) error {
	ctx := c.Request().Context()
	renter, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookUid, err := pathUUID(c, "bookUid")
	if err != nil {
		return err
	}

	var req model.CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.BookUid = bookUid
	req.Renter = renter
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rental, err := h.exchangeSvc.CreateRental(ctx, req)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(kafka.EventRentalRequested, rental.RentalUid, rental.BookUid, renter, rental.TotalPrice)
	return c.JSON(http.StatusCreated, rental)
}

func (h *Handler) GetRental(c echo.Context) error {
	rentalUid, err := pathUUID(c, "rentalUid")
	if err != nil {
		return err
	}
	rental, err := h.exchangeSvc.GetRental(c.Request().Context(), rentalUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}

// ApproveRental claims one copy for the renter. Under contention the claim
// may fail: the handler reports 409 and the request stays PENDING.
func (h *Handler) ApproveRental(c echo.Context) error {
	ctx := c.Request().Context()
	owner, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentalUid, err := pathUUID(c, "rentalUid")
	if err != nil {
		return err
	}

	rental, err := h.exchangeSvc.ApproveRental(ctx, rentalUid, owner)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(kafka.EventRentalApproved, rental.RentalUid, rental.BookUid, owner, rental.TotalPrice)
	return c.JSON(http.StatusOK, rental)
}

func (h *Handler) RejectRental(c echo.Context) error {
	ctx := c.Request().Context()
	owner, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentalUid, err := pathUUID(c, "rentalUid")
	if err != nil {
		return err
	}

	rental, err := h.exchangeSvc.RejectRental(ctx, rentalUid, owner)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(kafka.EventRentalRejected, rental.RentalUid, rental.BookUid, owner, 0)
	return c.JSON(http.StatusOK, rental)
}

func (h *Handler) ReturnRental(c echo.Context) error {
	ctx := c.Request().Context()
	renter, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentalUid, err := pathUUID(c, "rentalUid")
	if err != nil {
		return err
	}

	rental, err := h.exchangeSvc.ReturnRental(ctx, rentalUid, renter)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(kafka.EventRentalReturned, rental.RentalUid, rental.BookUid, renter, 0)
	return c.JSON(http.StatusOK, rental)
}

func (h *Handler) GetTransactions(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	txs, err := h.exchangeSvc.GetTransactions(ctx, user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, txs)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.exchangeSvc.GetStats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
