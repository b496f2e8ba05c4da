package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/auth"
	"github.com/bookswap/exchange-service/pkg/kafka"
)

// CreatePurchase godoc
// @Summary  Request to buy a book
// @Tags     purchases
// @Produce  json
// @Success  201 {object} model.Purchase
// @Router   /api/v1/books/{bookUid}/purchases [post]
func (h *Handler) CreatePurchase(c echo.Context) error {
	ctx := c.Request().Context()
	buyer, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookUid, err := pathUUID(c, "bookUid")
	if err != nil {
		return err
	}

	req := model.CreatePurchaseRequest{BookUid: bookUid, Buyer: buyer}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchase, err := h.exchangeSvc.CreatePurchase(ctx, req)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(kafka.EventPurchaseRequested, purchase.PurchaseUid, purchase.BookUid, buyer, purchase.Price)
	return c.JSON(http.StatusCreated, purchase)
}

func (h *Handler) GetPurchase(c echo.Context) error {
	purchaseUid, err := pathUUID(c, "purchaseUid")
	if err != nil {
		return err
	}
	purchase, err := h.exchangeSvc.GetPurchase(c.Request().Context(), purchaseUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, purchase)
}

// ApprovePurchase completes the sale; the copy is gone for good.
func (h *Handler) ApprovePurchase(c echo.Context) error {
	ctx := c.Request().Context()
	seller, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	purchaseUid, err := pathUUID(c, "purchaseUid")
	if err != nil {
		return err
	}

	purchase, err := h.exchangeSvc.ApprovePurchase(ctx, purchaseUid, seller)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(kafka.EventPurchaseApproved, purchase.PurchaseUid, purchase.BookUid, seller, purchase.Price)
	return c.JSON(http.StatusOK, purchase)
}

func (h *Handler) RejectPurchase(c echo.Context) error {
	ctx := c.Request().Context()
	seller, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	purchaseUid, err := pathUUID(c, "purchaseUid")
	if err != nil {
		return err
	}

	purchase, err := h.exchangeSvc.RejectPurchase(ctx, purchaseUid, seller)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(kafka.EventPurchaseRejected, purchase.PurchaseUid, purchase.BookUid, seller, 0)
	return c.JSON(http.StatusOK, purchase)
}
