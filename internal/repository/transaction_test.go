package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
)

const (
	testRentalUid   = "a1f0c2d3-4b5e-4f60-9182-7a6b5c4d3e2f"
	testPurchaseUid = "b2e1d3c4-5a6f-4071-8293-6b5a4c3d2e1f"
	testBookUid     = "9d9a67e9-7b28-4f95-a32c-83e165e7d3c4"
	testBookID      = 7
)

func newTestRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &repository{db: sqlx.NewDb(db, "sqlmock"), log: zap.NewNop()}, mock
}

var rentalLockColumns = []string{
	"id", "rental_uid", "book_uid", "book_id", "renter", "owner",
	"duration_days", "total_price", "status", "requested_at", "approved_at", "returned_at",
}

func rentalLockRow(status model.RentalStatus, renter, owner string) *sqlmock.Rows {
	return sqlmock.NewRows(rentalLockColumns).
		AddRow(1, testRentalUid, testBookUid, testBookID, renter, owner,
			14, 70.0, string(status), time.Now(), nil, nil)
}

var (
	lockRentalQ      = regexp.QuoteMeta("for update of r")
	lockPurchaseQ    = regexp.QuoteMeta("for update of p")
	decrementCopiesQ = regexp.QuoteMeta("available_copies - 1")
	incrementCopiesQ = regexp.QuoteMeta("available_copies + 1")
)

func TestRepository_ApproveRental(t *testing.T) {
	t.Parallel()

	t.Run("ok. takes one copy and activates", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalPending, "ivan", "maria"))
		mock.ExpectExec(decrementCopiesQ).
			WithArgs(testBookID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("status = 'ACTIVE'")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status", "approved_at"}).
				AddRow(string(model.RentalActive), time.Now()))
		mock.ExpectCommit()

		rental, err := r.ApproveRental(context.Background(), testRentalUid, "maria")
		require.NoError(t, err)
		require.Equal(t, model.RentalActive, rental.Status)
		require.NotNil(t, rental.ApprovedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. last copy gone, rolls back and stays pending", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalPending, "ivan", "maria"))
		mock.ExpectExec(decrementCopiesQ).
			WithArgs(testBookID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := r.ApproveRental(context.Background(), testRentalUid, "maria")
		require.ErrorIs(t, err, errs.ErrOutOfStock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. second approve does not touch inventory", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		// no decrement is expected: reaching it would fail the test
		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalActive, "ivan", "maria"))
		mock.ExpectRollback()

		_, err := r.ApproveRental(context.Background(), testRentalUid, "maria")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. not the owner", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalPending, "ivan", "maria"))
		mock.ExpectRollback()

		_, err := r.ApproveRental(context.Background(), testRentalUid, "ivan")
		require.ErrorIs(t, err, errs.ErrForbidden)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. unknown rental", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := r.ApproveRental(context.Background(), testRentalUid, "maria")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_RejectRental(t *testing.T) {
	t.Parallel()

	t.Run("ok. no inventory effect", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		// nothing was taken at request time, so no copies update is expected
		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalPending, "ivan", "maria"))
		mock.ExpectQuery(regexp.QuoteMeta("status = 'REJECTED'")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(model.RentalRejected)))
		mock.ExpectCommit()

		rental, err := r.RejectRental(context.Background(), testRentalUid, "maria")
		require.NoError(t, err)
		require.Equal(t, model.RentalRejected, rental.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. already rejected", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalRejected, "ivan", "maria"))
		mock.ExpectRollback()

		_, err := r.RejectRental(context.Background(), testRentalUid, "maria")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ReturnRental(t *testing.T) {
	t.Parallel()

	t.Run("ok. puts the copy back", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalActive, "ivan", "maria"))
		mock.ExpectExec(incrementCopiesQ).
			WithArgs(testBookID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("status = 'RETURNED'")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status", "returned_at"}).
				AddRow(string(model.RentalReturned), time.Now()))
		mock.ExpectCommit()

		rental, err := r.ReturnRental(context.Background(), testRentalUid, "ivan")
		require.NoError(t, err)
		require.Equal(t, model.RentalReturned, rental.Status)
		require.NotNil(t, rental.ReturnedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. second return does not touch inventory", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalReturned, "ivan", "maria"))
		mock.ExpectRollback()

		_, err := r.ReturnRental(context.Background(), testRentalUid, "ivan")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. not the renter", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockRentalQ).
			WithArgs(testRentalUid).
			WillReturnRows(rentalLockRow(model.RentalActive, "ivan", "maria"))
		mock.ExpectRollback()

		_, err := r.ReturnRental(context.Background(), testRentalUid, "maria")
		require.ErrorIs(t, err, errs.ErrForbidden)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func purchaseLockRow(status model.PurchaseStatus, buyer, seller string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "purchase_uid", "book_uid", "book_id", "buyer", "seller",
		"price", "status", "requested_at", "approved_at",
	}).AddRow(1, testPurchaseUid, testBookUid, testBookID, buyer, seller,
		250.0, string(status), time.Now(), nil)
}

func TestRepository_ApprovePurchase(t *testing.T) {
	t.Parallel()

	t.Run("ok. takes the copy for good", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPurchaseQ).
			WithArgs(testPurchaseUid).
			WillReturnRows(purchaseLockRow(model.PurchasePending, "ivan", "maria"))
		mock.ExpectExec(decrementCopiesQ).
			WithArgs(testBookID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("status = 'COMPLETED'")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status", "approved_at"}).
				AddRow(string(model.PurchaseCompleted), time.Now()))
		mock.ExpectCommit()

		purchase, err := r.ApprovePurchase(context.Background(), testPurchaseUid, "maria")
		require.NoError(t, err)
		require.Equal(t, model.PurchaseCompleted, purchase.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. last copy gone, stays pending", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPurchaseQ).
			WithArgs(testPurchaseUid).
			WillReturnRows(purchaseLockRow(model.PurchasePending, "ivan", "maria"))
		mock.ExpectExec(decrementCopiesQ).
			WithArgs(testBookID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := r.ApprovePurchase(context.Background(), testPurchaseUid, "maria")
		require.ErrorIs(t, err, errs.ErrOutOfStock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. second approve", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPurchaseQ).
			WithArgs(testPurchaseUid).
			WillReturnRows(purchaseLockRow(model.PurchaseCompleted, "ivan", "maria"))
		mock.ExpectRollback()

		_, err := r.ApprovePurchase(context.Background(), testPurchaseUid, "maria")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
