package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/auth"
)

// ProvisionChannel creates the chat channel for a transaction. Retrying the
// call lands on the same channel; the transaction itself is untouched either
// way.
func (h *Handler) ProvisionChannel(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	transactionUid, err := pathUUID(c, "transactionUid")
	if err != nil {
		return err
	}

	ch, err := h.chatSvc.ProvisionChannel(ctx, transactionUid, user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ch)
}

func (h *Handler) ListChannels(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	chs, err := h.chatSvc.ListChannels(ctx, user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, chs)
}

func (h *Handler) GetMessages(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	channelUid, err := pathUUID(c, "channelUid")
	if err != nil {
		return err
	}
	msgs, err := h.chatSvc.GetMessages(ctx, channelUid, user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *Handler) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	channelUid, err := pathUUID(c, "channelUid")
	if err != nil {
		return err
	}

	var req model.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Sender = user
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.chatSvc.SendMessage(ctx, channelUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// SubscribeChannel streams the channel over SSE: full history first, then
// every append until the client goes away.
func (h *Handler) SubscribeChannel(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	channelUid, err := pathUUID(c, "channelUid")
	if err != nil {
		return err
	}

	history, live, cancel, err := h.chatSvc.Subscribe(ctx, channelUid, user)
	if err != nil {
		return httpError(err)
	}
	defer cancel()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)

	writeMsg := func(msg model.Message) error {
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
			return err
		}
		resp.Flush()
		return nil
	}

	for _, msg := range history {
		if err := writeMsg(msg); err != nil {
			return nil
		}
	}
	for {
		select {
		case msg, ok := <-live:
			if !ok {
				return nil
			}
			if err := writeMsg(msg); err != nil {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *Handler) GetPaymentInfo(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := auth.UserName(ctx); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	username := c.Param("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is empty")
	}

	var info model.PaymentInfo
	if err := h.paymentsSvc.CB().Call(func() error {
		pi, code, err := h.paymentsSvc.GetPaymentInfo(ctx, username)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		info = pi
		return nil
	}); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, info)
}
