package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/bookswap/exchange-service/internal/model"
)

// A second insert for the same transaction lands on the unique constraint
// and answers with the row the first insert created.
func TestRepository_CreateChannel_DuplicateTransaction(t *testing.T) {
	t.Parallel()
	r, mock := newTestRepo(t)

	const (
		channelUid     = "f612da79-f70f-5a0e-942e-07e7c276eb46"
		transactionUid = "5417d834-86b9-4e5a-8ac4-2e7c77b2b5b6"
	)
	existing := sqlmock.NewRows(channelColumns).
		AddRow(3, channelUid, transactionUid, testBookID, "The Master and Margarita",
			"ivan", "maria", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO channels")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectQuery(regexp.QuoteMeta("FROM channels WHERE transaction_uid")).
		WithArgs(transactionUid).
		WillReturnRows(existing)

	ch, err := r.CreateChannel(context.Background(), model.Channel{
		ChannelUid:     channelUid,
		TransactionUid: transactionUid,
		BookID:         testBookID,
		BookTitle:      "The Master and Margarita",
		ParticipantA:   "ivan",
		ParticipantB:   "maria",
	})
	require.NoError(t, err)
	require.Equal(t, channelUid, ch.ChannelUid)
	require.Equal(t, 3, ch.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
