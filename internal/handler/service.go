package handler

import (
	"context"

	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/internal/service"
	"github.com/bookswap/exchange-service/internal/service/payments"
	cb "github.com/bookswap/exchange-service/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListAvailableBooks(ctx context.Context, user string) ([]model.Book, error)
	ListMyBooks(ctx context.Context, owner string) ([]model.Book, error)
	UpdateBook(ctx context.Context, bookUid, owner string, req model.UpdateBookRequest) (model.Book, error)
	DisableBook(ctx context.Context, bookUid, owner string) error
}

type ExchangeService interface {
	CreateRental(ctx context.Context, req model.CreateRentalRequest) (model.Rental, error)
	GetRental(ctx context.Context, rentalUid string) (model.Rental, error)
	ApproveRental(ctx context.Context, rentalUid, owner string) (model.Rental, error)
	RejectRental(ctx context.Context, rentalUid, owner string) (model.Rental, error)
	ReturnRental(ctx context.Context, rentalUid, renter string) (model.Rental, error)
	CreatePurchase(ctx context.Context, req model.CreatePurchaseRequest) (model.Purchase, error)
	GetPurchase(ctx context.Context, purchaseUid string) (model.Purchase, error)
	ApprovePurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error)
	RejectPurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error)
	GetTransactions(ctx context.Context, user string) (model.Transactions, error)
	GetStats(ctx context.Context) ([]model.Stats, error)
}

type ChatService interface {
	ProvisionChannel(ctx context.Context, transactionUid, caller string) (model.Channel, error)
	ListChannels(ctx context.Context, user string) ([]model.Channel, error)
	SendMessage(ctx context.Context, channelUid string, req model.SendMessageRequest) (model.Message, error)
	GetMessages(ctx context.Context, channelUid, user string) ([]model.Message, error)
	Subscribe(ctx context.Context, channelUid, user string) ([]model.Message, <-chan model.Message, func(), error)
}

type PaymentsService interface {
	GetPaymentInfo(ctx context.Context, username string) (model.PaymentInfo, int, error)
	CB() cb.CircuitBreaker
}

var (
	_ BookService     = (*service.Service)(nil)
	_ ExchangeService = (*service.Service)(nil)
	_ ChatService     = (*service.Service)(nil)
	_ PaymentsService = (*payments.Service)(nil)
)
