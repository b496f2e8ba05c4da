package service

import (
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	hub  *Hub
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		hub:  NewHub(),
	}
}
