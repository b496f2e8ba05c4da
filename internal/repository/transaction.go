package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
)

// decrementCopies is the ledger's only take-a-copy primitive: a conditional
// decrement that fails without side effect when no copy is left. Concurrent
// approvals of the same book serialize here.
func decrementCopies(ctx context.Context, tx *sqlx.Tx, bookID int) error {
	q := `
update books
    set available_copies = available_copies - 1
where id = $1 and available_copies > 0`
	res, err := tx.ExecContext(ctx, q, bookID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrOutOfStock
	}
	return nil
}

func incrementCopies(ctx context.Context, tx *sqlx.Tx, bookID int) error {
	q := `
update books
    set available_copies = available_copies + 1
where id = $1`
	_, err := tx.ExecContext(ctx, q, bookID)
	return err
}

var rentalColumns = []string{
	"r.id", "r.rental_uid", "b.book_uid", "r.book_id", "r.renter", "r.owner",
	"r.duration_days", "r.total_price", "r.status", "r.requested_at", "r.approved_at", "r.returned_at",
}

func (r *repository) CreateRental(ctx context.Context, book model.Book, req model.CreateRentalRequest) (model.Rental, error) {
	var open int
	dupQ := `
select count(*) from rentals
where book_id = $1 and renter = $2 and status in ('PENDING', 'ACTIVE')`
	if err := r.db.QueryRowContext(ctx, dupQ, book.ID, req.Renter).Scan(&open); err != nil {
		return model.Rental{}, err
	}
	if open > 0 {
		return model.Rental{}, errs.ErrDuplicateRequest
	}

	totalPrice := book.PricePerDay * float64(req.DurationDays)
	q, args, err := qb.Insert(rentalsTableName).
		Columns("rental_uid", "book_id", "renter", "owner", "duration_days", "total_price").
		Values(uuid.New(), book.ID, req.Renter, book.Owner, req.DurationDays, totalPrice).
		Suffix("returning id, rental_uid, book_id, renter, owner, duration_days, total_price, status, requested_at, approved_at, returned_at").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var rental model.Rental
	if err := r.db.GetContext(ctx, &rental, q, args...); err != nil {
		r.log.Error("CreateRental", zap.String("q", q), zap.Any("args", args))
		return model.Rental{}, err
	}
	rental.BookUid = book.BookUid
	return rental, nil
}

func (r *repository) GetRental(ctx context.Context, rentalUid string) (model.Rental, error) {
	q, args, err := qb.Select(rentalColumns...).
		From(rentalsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Where(sq.Eq{"rental_uid": rentalUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var rental model.Rental
	if err := r.db.GetContext(ctx, &rental, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errs.ErrNotFound
		}
		return model.Rental{}, err
	}
	return rental, nil
}

func (r *repository) ListRentals(ctx context.Context, user string) ([]model.Rental, error) {
	q, args, err := qb.Select(rentalColumns...).
		From(rentalsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Where(sq.Or{sq.Eq{"r.renter": user}, sq.Eq{"r.owner": user}}).
		OrderBy("r.requested_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rentals []model.Rental
	if err := r.db.SelectContext(ctx, &rentals, q, args...); err != nil {
		return nil, err
	}
	return rentals, nil
}

// lockRental loads the rental row under a row lock so status checks and the
// subsequent transition see a stable state.
func lockRental(ctx context.Context, tx *sqlx.Tx, rentalUid string) (model.Rental, error) {
	q := `
select r.id, r.rental_uid, b.book_uid, r.book_id, r.renter, r.owner,
       r.duration_days, r.total_price, r.status, r.requested_at, r.approved_at, r.returned_at
from rentals r
join books b on b.id = r.book_id
where r.rental_uid = $1
for update of r`
	var rental model.Rental
	if err := tx.GetContext(ctx, &rental, q, rentalUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errs.ErrNotFound
		}
		return model.Rental{}, err
	}
	return rental, nil
}

// ApproveRental moves PENDING -> ACTIVE and takes one copy in the same
// database transaction. On ErrOutOfStock everything rolls back and the
// request stays PENDING.
func (r *repository) ApproveRental(ctx context.Context, rentalUid, owner string) (model.Rental, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	rental, err := lockRental(ctx, tx, rentalUid)
	if err != nil {
		return model.Rental{}, err
	}
	if rental.Owner != owner {
		return model.Rental{}, errs.ErrForbidden
	}
	if rental.Status != model.RentalPending {
		return model.Rental{}, errs.ErrInvalidTransition
	}
	if err := decrementCopies(ctx, tx, rental.BookID); err != nil {
		return model.Rental{}, err
	}

	q := `
update rentals set status = 'ACTIVE', approved_at = now()
where id = $1
returning status, approved_at`
	if err := tx.QueryRowContext(ctx, q, rental.ID).Scan(&rental.Status, &rental.ApprovedAt); err != nil {
		return model.Rental{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}

func (r *repository) RejectRental(ctx context.Context, rentalUid, owner string) (model.Rental, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	rental, err := lockRental(ctx, tx, rentalUid)
	if err != nil {
		return model.Rental{}, err
	}
	if rental.Owner != owner {
		return model.Rental{}, errs.ErrForbidden
	}
	if rental.Status != model.RentalPending {
		return model.Rental{}, errs.ErrInvalidTransition
	}

	// no inventory effect: nothing was taken at request time
	q := `update rentals set status = 'REJECTED' where id = $1 returning status`
	if err := tx.QueryRowContext(ctx, q, rental.ID).Scan(&rental.Status); err != nil {
		return model.Rental{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}

// ReturnRental moves ACTIVE -> RETURNED and puts the copy back.
func (r *repository) ReturnRental(ctx context.Context, rentalUid, renter string) (model.Rental, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	rental, err := lockRental(ctx, tx, rentalUid)
	if err != nil {
		return model.Rental{}, err
	}
	if rental.Renter != renter {
		return model.Rental{}, errs.ErrForbidden
	}
	if rental.Status != model.RentalActive {
		return model.Rental{}, errs.ErrInvalidTransition
	}
	if err := incrementCopies(ctx, tx, rental.BookID); err != nil {
		return model.Rental{}, err
	}

	q := `
update rentals set status = 'RETURNED', returned_at = now()
where id = $1
returning status, returned_at`
	if err := tx.QueryRowContext(ctx, q, rental.ID).Scan(&rental.Status, &rental.ReturnedAt); err != nil {
		return model.Rental{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}

var purchaseColumns = []string{
	"p.id", "p.purchase_uid", "b.book_uid", "p.book_id", "p.buyer", "p.seller",
	"p.price", "p.status", "p.requested_at", "p.approved_at",
}

func (r *repository) CreatePurchase(ctx context.Context, book model.Book, req model.CreatePurchaseRequest) (model.Purchase, error) {
	var open int
	dupQ := `
select count(*) from purchases
where book_id = $1 and buyer = $2 and status in ('PENDING', 'COMPLETED')`
	if err := r.db.QueryRowContext(ctx, dupQ, book.ID, req.Buyer).Scan(&open); err != nil {
		return model.Purchase{}, err
	}
	if open > 0 {
		return model.Purchase{}, errs.ErrDuplicateRequest
	}

	q, args, err := qb.Insert(purchasesTableName).
		Columns("purchase_uid", "book_id", "buyer", "seller", "price").
		Values(uuid.New(), book.ID, req.Buyer, book.Owner, book.PurchasePrice).
		Suffix("returning id, purchase_uid, book_id, buyer, seller, price, status, requested_at, approved_at").
		ToSql()
	if err != nil {
		return model.Purchase{}, err
	}
	var purchase model.Purchase
	if err := r.db.GetContext(ctx, &purchase, q, args...); err != nil {
		r.log.Error("CreatePurchase", zap.String("q", q), zap.Any("args", args))
		return model.Purchase{}, err
	}
	purchase.BookUid = book.BookUid
	return purchase, nil
}

func (r *repository) GetPurchase(ctx context.Context, purchaseUid string) (model.Purchase, error) {
	q, args, err := qb.Select(purchaseColumns...).
		From(purchasesTableName + " p").
		Join(fmt.Sprintf("%s b on b.id = p.book_id", booksTableName)).
		Where(sq.Eq{"purchase_uid": purchaseUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Purchase{}, err
	}
	var purchase model.Purchase
	if err := r.db.GetContext(ctx, &purchase, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Purchase{}, errs.ErrNotFound
		}
		return model.Purchase{}, err
	}
	return purchase, nil
}

func (r *repository) ListPurchases(ctx context.Context, user string) ([]model.Purchase, error) {
	q, args, err := qb.Select(purchaseColumns...).
		From(purchasesTableName + " p").
		Join(fmt.Sprintf("%s b on b.id = p.book_id", booksTableName)).
		Where(sq.Or{sq.Eq{"p.buyer": user}, sq.Eq{"p.seller": user}}).
		OrderBy("p.requested_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var purchases []model.Purchase
	if err := r.db.SelectContext(ctx, &purchases, q, args...); err != nil {
		return nil, err
	}
	return purchases, nil
}

func lockPurchase(ctx context.Context, tx *sqlx.Tx, purchaseUid string) (model.Purchase, error) {
	q := `
select p.id, p.purchase_uid, b.book_uid, p.book_id, p.buyer, p.seller,
       p.price, p.status, p.requested_at, p.approved_at
from purchases p
join books b on b.id = p.book_id
where p.purchase_uid = $1
for update of p`
	var purchase model.Purchase
	if err := tx.GetContext(ctx, &purchase, q, purchaseUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Purchase{}, errs.ErrNotFound
		}
		return model.Purchase{}, err
	}
	return purchase, nil
}

// ApprovePurchase moves PENDING -> COMPLETED; the copy is gone for good.
func (r *repository) ApprovePurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Purchase{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	purchase, err := lockPurchase(ctx, tx, purchaseUid)
	if err != nil {
		return model.Purchase{}, err
	}
	if purchase.Seller != seller {
		return model.Purchase{}, errs.ErrForbidden
	}
	if purchase.Status != model.PurchasePending {
		return model.Purchase{}, errs.ErrInvalidTransition
	}
	if err := decrementCopies(ctx, tx, purchase.BookID); err != nil {
		return model.Purchase{}, err
	}

	q := `
update purchases set status = 'COMPLETED', approved_at = now()
where id = $1
returning status, approved_at`
	if err := tx.QueryRowContext(ctx, q, purchase.ID).Scan(&purchase.Status, &purchase.ApprovedAt); err != nil {
		return model.Purchase{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Purchase{}, err
	}
	return purchase, nil
}

func (r *repository) RejectPurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Purchase{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	purchase, err := lockPurchase(ctx, tx, purchaseUid)
	if err != nil {
		return model.Purchase{}, err
	}
	if purchase.Seller != seller {
		return model.Purchase{}, errs.ErrForbidden
	}
	if purchase.Status != model.PurchasePending {
		return model.Purchase{}, errs.ErrInvalidTransition
	}

	q := `update purchases set status = 'REJECTED' where id = $1 returning status`
	if err := tx.QueryRowContext(ctx, q, purchase.ID).Scan(&purchase.Status); err != nil {
		return model.Purchase{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Purchase{}, err
	}
	return purchase, nil
}
