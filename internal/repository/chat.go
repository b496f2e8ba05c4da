package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
)

var channelColumns = []string{
	"id", "channel_uid", "transaction_uid", "book_id", "book_title",
	"participant_a", "participant_b", "created_at",
}

// CreateChannel inserts the channel keyed by its transaction uid. A second
// call for the same transaction lands on the unique constraint and returns
// the already existing channel.
func (r *repository) CreateChannel(ctx context.Context, ch model.Channel) (model.Channel, error) {
	q, args, err := qb.Insert(channelsTableName).
		Columns("channel_uid", "transaction_uid", "book_id", "book_title", "participant_a", "participant_b").
		Values(ch.ChannelUid, ch.TransactionUid, ch.BookID, ch.BookTitle, ch.ParticipantA, ch.ParticipantB).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Channel{}, err
	}

	var created model.Channel
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return r.getChannelByTransaction(ctx, ch.TransactionUid)
		}
		r.log.Error("CreateChannel", zap.String("q", q), zap.Any("args", args))
		return model.Channel{}, err
	}
	return created, nil
}

func (r *repository) getChannelByTransaction(ctx context.Context, transactionUid string) (model.Channel, error) {
	q, args, err := qb.Select(channelColumns...).
		From(channelsTableName).
		Where(sq.Eq{"transaction_uid": transactionUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Channel{}, err
	}
	var ch model.Channel
	if err := r.db.GetContext(ctx, &ch, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Channel{}, errs.ErrNotFound
		}
		return model.Channel{}, err
	}
	return ch, nil
}

func (r *repository) GetChannel(ctx context.Context, channelUid string) (model.Channel, error) {
	q, args, err := qb.Select(channelColumns...).
		From(channelsTableName).
		Where(sq.Eq{"channel_uid": channelUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Channel{}, err
	}
	var ch model.Channel
	if err := r.db.GetContext(ctx, &ch, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Channel{}, errs.ErrNotFound
		}
		return model.Channel{}, err
	}
	return ch, nil
}

func (r *repository) ListChannels(ctx context.Context, user string) ([]model.Channel, error) {
	q, args, err := qb.Select(channelColumns...).
		From(channelsTableName).
		Where(sq.Or{sq.Eq{"participant_a": user}, sq.Eq{"participant_b": user}}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var chs []model.Channel
	if err := r.db.SelectContext(ctx, &chs, q, args...); err != nil {
		return nil, err
	}
	return chs, nil
}

// CreateMessage appends to the channel log. The bigserial id is the
// channel's ordering: readers observe accept order, not sender clocks.
func (r *repository) CreateMessage(ctx context.Context, channelID int, sender, text string) (model.Message, error) {
	q, args, err := qb.Insert(messagesTableName).
		Columns("channel_id", "sender", "text").
		Values(channelID, sender, text).
		Suffix("returning id, channel_id, sender, text, sent_at").
		ToSql()
	if err != nil {
		return model.Message{}, err
	}
	var msg model.Message
	if err := r.db.GetContext(ctx, &msg, q, args...); err != nil {
		r.log.Error("CreateMessage", zap.String("q", q), zap.Any("args", args))
		return model.Message{}, err
	}
	return msg, nil
}

func (r *repository) ListMessages(ctx context.Context, channelID int) ([]model.Message, error) {
	q, args, err := qb.Select("id", "channel_id", "sender", "text", "sent_at").
		From(messagesTableName).
		Where(sq.Eq{"channel_id": channelID}).
		OrderBy("id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var msgs []model.Message
	if err := r.db.SelectContext(ctx, &msgs, q, args...); err != nil {
		return nil, err
	}
	return msgs, nil
}
