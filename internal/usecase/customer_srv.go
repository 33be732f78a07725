package usecase

import (
	"context"
	"fmt"
	"strings"

	"booking-console/internal/data/entity"
	"booking-console/internal/data/repository"
	"booking-console/internal/search"

	"go.uber.org/zap"
)

type CustomerService interface {
	Search(ctx context.Context, query string) ([]entity.Customer, error)
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log,
	}
}

// Search enforces the widget contract server-side as well: queries under
// the length threshold return nothing, results are capped at five.
func (s *customerService) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < search.MinQueryLength {
		return nil, nil
	}

	customers, err := s.repo.Customer.Search(ctx, trimmed, search.MaxResults)
	if err != nil {
		s.log.Error("Failed to search customers", zap.Error(err), zap.String("query", trimmed))
		return nil, fmt.Errorf("failed to search customers")
	}

	return customers, nil
}
