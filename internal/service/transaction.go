package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
	"github.com/bookswap/exchange-service/pkg/kafka"
)

// CreateRental registers the intent to rent. No copy is taken here:
// competing requests for the same book are all allowed to wait for the
// owner, and only approval claims inventory.
func (s *Service) CreateRental(ctx context.Context, req model.CreateRentalRequest) (model.Rental, error) {
	book, err := s.repo.GetBook(ctx, req.BookUid)
	if err != nil {
		return model.Rental{}, err
	}
	if book.Disabled {
		return model.Rental{}, errs.ErrBookDisabled
	}
	if book.Owner == req.Renter {
		return model.Rental{}, errs.ErrOwnBook
	}
	if book.AvailableCopies == 0 {
		return model.Rental{}, errs.ErrOutOfStock
	}
	return s.repo.CreateRental(ctx, book, req)
}

func (s *Service) GetRental(ctx context.Context, rentalUid string) (model.Rental, error) {
	return s.repo.GetRental(ctx, rentalUid)
}

func (s *Service) ApproveRental(ctx context.Context, rentalUid, owner string) (model.Rental, error) {
	return s.repo.ApproveRental(ctx, rentalUid, owner)
}

func (s *Service) RejectRental(ctx context.Context, rentalUid, owner string) (model.Rental, error) {
	return s.repo.RejectRental(ctx, rentalUid, owner)
}

func (s *Service) ReturnRental(ctx context.Context, rentalUid, renter string) (model.Rental, error) {
	return s.repo.ReturnRental(ctx, rentalUid, renter)
}

func (s *Service) CreatePurchase(ctx context.Context, req model.CreatePurchaseRequest) (model.Purchase, error) {
	book, err := s.repo.GetBook(ctx, req.BookUid)
	if err != nil {
		return model.Purchase{}, err
	}
	if book.Disabled {
		return model.Purchase{}, errs.ErrBookDisabled
	}
	if book.Owner == req.Buyer {
		return model.Purchase{}, errs.ErrOwnBook
	}
	if book.AvailableCopies == 0 {
		return model.Purchase{}, errs.ErrOutOfStock
	}
	return s.repo.CreatePurchase(ctx, book, req)
}

func (s *Service) GetPurchase(ctx context.Context, purchaseUid string) (model.Purchase, error) {
	return s.repo.GetPurchase(ctx, purchaseUid)
}

func (s *Service) ApprovePurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error) {
	return s.repo.ApprovePurchase(ctx, purchaseUid, seller)
}

func (s *Service) RejectPurchase(ctx context.Context, purchaseUid, seller string) (model.Purchase, error) {
	return s.repo.RejectPurchase(ctx, purchaseUid, seller)
}

// GetTransactions loads both sides of a user's deals in parallel.
func (s *Service) GetTransactions(ctx context.Context, user string) (model.Transactions, error) {
	var txs model.Transactions
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		rentals, err := s.repo.ListRentals(ctx, user)
		if err != nil {
			return err
		}
		txs.Rentals = rentals
		return nil
	})
	gg.Go(func() error {
		purchases, err := s.repo.ListPurchases(ctx, user)
		if err != nil {
			return err
		}
		txs.Purchases = purchases
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.Transactions{}, err
	}
	return txs, nil
}

func (s *Service) GetStats(ctx context.Context) ([]model.Stats, error) {
	return s.repo.GetStats(ctx)
}

func (s *Service) RecordEvent(ctx context.Context, event kafka.Event) error {
	return s.repo.RecordEvent(ctx, event)
}
