package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	GetBookByID(ctx context.Context, id int) (model.Book, error)
	ListAvailableBooks(ctx context.Context, user string) ([]model.Book, error)
	ListBooksByOwner(ctx context.Context, owner string) ([]model.Book, error)
	UpdateBook(ctx context.Context, bookUid, owner string, req model.UpdateBookRequest) (model.Book, error)
	DisableBook(ctx context.Context, bookUid, owner string) error

	CreateRental(ctx context.Context, book model.Book, req model.CreateRentalRequest) (model.Rental, error)
	GetRental(ctx context.Context, rentalUid string) (model.Rental, error)
	ApproveRental(ctx context.Context, rentalUid, owner string) (model.Rental, error)
	RejectRental(ctx context.Context, rentalUid, owner string) (model.Rental, error)
	ReturnRental(ctx context.Context, rentalUid, renter string) (model.Rental, error)
	ListRentals(ctx context.Context, user string) ([]model.Rental, error)

	CreatePurchase(ctx context.Context, book model.Book, req model.CreatePurchaseRequest) (model.Purchase, error)
	GetPurchase(ctx context.Context, purchaseUid string) (model.Purchase, error)
	ApprovePurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error)
	RejectPurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error)
	ListPurchases(ctx context.Context, user string) ([]model.Purchase, error)

	CreateChannel(ctx context.Context, ch model.Channel) (model.Channel, error)
	GetChannel(ctx context.Context, channelUid string) (model.Channel, error)
	ListChannels(ctx context.Context, user string) ([]model.Channel, error)
	CreateMessage(ctx context.Context, channelID int, sender, text string) (model.Message, error)
	ListMessages(ctx context.Context, channelID int) ([]model.Message, error)

	RecordEvent(ctx context.Context, event kafka.Event) error
	GetStats(ctx context.Context) ([]model.Stats, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName     = `books`
	rentalsTableName   = `rentals`
	purchasesTableName = `purchases`
	channelsTableName  = `channels`
	messagesTableName  = `messages`
	eventsTableName    = `events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
