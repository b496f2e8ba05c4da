package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	ExchangeTopic         = "exchange-events"
	ExchangeConsumerGroup = "exchange-stats"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// Event is one transaction lifecycle record published to ExchangeTopic.
type Event struct {
	Timestamp      time.Time `json:"timestamp"`
	UserName       string    `json:"username"`
	TransactionUID string    `json:"transactionUid"`
	BookUID        string    `json:"bookUid"`
	EventType      string    `json:"eventType"`
	Amount         float64   `json:"amount"`
}

const (
	EventRentalRequested   = "RENTAL_REQUESTED"
	EventRentalApproved    = "RENTAL_APPROVED"
	EventRentalRejected    = "RENTAL_REJECTED"
	EventRentalReturned    = "RENTAL_RETURNED"
	EventPurchaseRequested = "PURCHASE_REQUESTED"
	EventPurchaseApproved  = "PURCHASE_APPROVED"
	EventPurchaseRejected  = "PURCHASE_REJECTED"
)

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is done.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
