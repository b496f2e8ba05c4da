package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/auth"
)

// CreateBook godoc
// @Summary  List a book for rent or sale
// @Tags     books
// @Accept   json
// @Produce  json
// @Success  201 {object} model.Book
// @Router   /api/v1/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	ctx := c.Request().Context()
	owner, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Owner = owner
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.CreateBook(ctx, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) ListAvailableBooks(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	books, err := h.bookSvc.ListAvailableBooks(ctx, user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ListMyBooks(c echo.Context) error {
	ctx := c.Request().Context()
	owner, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	books, err := h.bookSvc.ListMyBooks(ctx, owner)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookUid, err := pathUUID(c, "bookUid")
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetBook(c.Request().Context(), bookUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	ctx := c.Request().Context()
	owner, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookUid, err := pathUUID(c, "bookUid")
	if err != nil {
		return err
	}

	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.UpdateBook(ctx, bookUid, owner, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DisableBook soft-disables a listing; transactions keep their reference.
func (h *Handler) DisableBook(c echo.Context) error {
	ctx := c.Request().Context()
	owner, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookUid, err := pathUUID(c, "bookUid")
	if err != nil {
		return err
	}
	if err := h.bookSvc.DisableBook(ctx, bookUid, owner); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
