package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
)

func bookRow(owner string) *sqlmock.Rows {
	return sqlmock.NewRows(bookColumns).
		AddRow(testBookID, testBookUid, owner, "The Master and Margarita", "Mikhail Bulgakov", "",
			1, 5.0, 250.0, false, time.Now())
}

// A zero-row owner-guarded update is ambiguous: the book may be missing or
// belong to somebody else. The follow-up read tells the two apart.
func TestRepository_UpdateBook_Ownership(t *testing.T) {
	t.Parallel()

	title := "Heart of a Dog"
	req := model.UpdateBookRequest{Title: &title}

	t.Run("err. somebody else's book", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE books SET")).
			WillReturnRows(sqlmock.NewRows(bookColumns))
		mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE book_uid")).
			WithArgs(testBookUid).
			WillReturnRows(bookRow("maria"))

		_, err := r.UpdateBook(context.Background(), testBookUid, "ivan", req)
		require.ErrorIs(t, err, errs.ErrForbidden)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. unknown book", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE books SET")).
			WillReturnRows(sqlmock.NewRows(bookColumns))
		mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE book_uid")).
			WithArgs(testBookUid).
			WillReturnRows(sqlmock.NewRows(bookColumns))

		_, err := r.UpdateBook(context.Background(), testBookUid, "ivan", req)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DisableBook_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("err. somebody else's book", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("set disabled = true")).
			WithArgs(testBookUid, "ivan").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE book_uid")).
			WithArgs(testBookUid).
			WillReturnRows(bookRow("maria"))

		err := r.DisableBook(context.Background(), testBookUid, "ivan")
		require.ErrorIs(t, err, errs.ErrForbidden)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. unknown book", func(t *testing.T) {
		t.Parallel()
		r, mock := newTestRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("set disabled = true")).
			WithArgs(testBookUid, "ivan").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE book_uid")).
			WithArgs(testBookUid).
			WillReturnRows(sqlmock.NewRows(bookColumns))

		err := r.DisableBook(context.Background(), testBookUid, "ivan")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
