package repository

import (
	"context"

	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/kafka"
)

func (r *repository) RecordEvent(ctx context.Context, event kafka.Event) error {
	q := `
insert into events (timestamp, username, transaction_uid, book_uid, event_type, amount)
values ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, q,
		event.Timestamp, event.UserName, event.TransactionUID, event.BookUID, event.EventType, event.Amount)
	return err
}

func (r *repository) GetStats(ctx context.Context) ([]model.Stats, error) {
	const q = `
	select event_type, count(*) as count, coalesce(sum(amount), 0) as turnover
	from events
	group by event_type
	order by event_type
`
	var stats []model.Stats
	if err := r.db.SelectContext(ctx, &stats, q); err != nil {
		return nil, err
	}
	return stats, nil
}
