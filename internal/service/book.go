package service

import (
	"context"

	"github.com/bookswap/exchange-service/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUid)
}

func (s *Service) ListAvailableBooks(ctx context.Context, user string) ([]model.Book, error) {
	return s.repo.ListAvailableBooks(ctx, user)
}

func (s *Service) ListMyBooks(ctx context.Context, owner string) ([]model.Book, error) {
	return s.repo.ListBooksByOwner(ctx, owner)
}

func (s *Service) UpdateBook(ctx context.Context, bookUid, owner string, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, bookUid, owner, req)
}

func (s *Service) DisableBook(ctx context.Context, bookUid, owner string) error {
	return s.repo.DisableBook(ctx, bookUid, owner)
}
