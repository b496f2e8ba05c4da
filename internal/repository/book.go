package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
)

var bookColumns = []string{
	"id", "book_uid", "owner", "title", "author", "description",
	"available_copies", "price_per_day", "purchase_price", "disabled", "created_at",
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("book_uid", "owner", "title", "author", "description", "available_copies", "price_per_day", "purchase_price").
		Values(uuid.New(), req.Owner, req.Title, req.Author, req.Description, req.AvailableCopies, req.PricePerDay, req.PurchasePrice).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByID(ctx context.Context, id int) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// ListAvailableBooks returns books a user may request: not their own,
// not disabled, at least one copy on hand.
func (r *repository) ListAvailableBooks(ctx context.Context, user string) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.NotEq{"owner": user}).
		Where(sq.Eq{"disabled": false}).
		Where(sq.Gt{"available_copies": 0}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) ListBooksByOwner(ctx context.Context, owner string) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"owner": owner}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, bookUid, owner string, req model.UpdateBookRequest) (model.Book, error) {
	if req.Title == nil && req.Author == nil && req.Description == nil &&
		req.PricePerDay == nil && req.PurchasePrice == nil {
		// nothing to change, answer with the current row
		book, err := r.GetBook(ctx, bookUid)
		if err != nil {
			return model.Book{}, err
		}
		if book.Owner != owner {
			return model.Book{}, errs.ErrForbidden
		}
		return book, nil
	}

	upd := qb.Update(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Where(sq.Eq{"owner": owner}).
		Suffix("returning *")

	if req.Title != nil {
		upd = upd.Set("title", *req.Title)
	}
	if req.Author != nil {
		upd = upd.Set("author", *req.Author)
	}
	if req.Description != nil {
		upd = upd.Set("description", *req.Description)
	}
	if req.PricePerDay != nil {
		upd = upd.Set("price_per_day", *req.PricePerDay)
	}
	if req.PurchasePrice != nil {
		upd = upd.Set("purchase_price", *req.PurchasePrice)
	}

	q, args, err := upd.ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, r.ownershipErr(ctx, bookUid, owner)
		}
		return model.Book{}, err
	}
	return book, nil
}

// ownershipErr tells a missing book apart from somebody else's book after a
// zero-row owner-guarded update.
func (r *repository) ownershipErr(ctx context.Context, bookUid, owner string) error {
	book, err := r.GetBook(ctx, bookUid)
	if err != nil {
		return err
	}
	if book.Owner != owner {
		return errs.ErrForbidden
	}
	return errs.ErrNotFound
}

// DisableBook soft-disables the listing. Books referenced by transactions
// are never deleted.
func (r *repository) DisableBook(ctx context.Context, bookUid, owner string) error {
	q := `
update books set disabled = true
where book_uid = $1 and owner = $2`
	res, err := r.db.ExecContext(ctx, q, bookUid, owner)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return r.ownershipErr(ctx, bookUid, owner)
	}
	return nil
}
