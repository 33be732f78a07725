package usecase

import (
	"context"
	"fmt"

	"booking-console/internal/data/entity"
	"booking-console/internal/data/repository"
	"booking-console/internal/dto/request"
	"booking-console/internal/dto/response"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

type AgencyService interface {
	List(ctx context.Context, req *request.ListAgenciesRequest) (*response.AgencyListResponse, error)
}

type agencyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAgencyService(repo *repository.Repository, log *zap.Logger) AgencyService {
	return &agencyService{
		repo: repo,
		log:  log,
	}
}

func (s *agencyService) List(ctx context.Context, req *request.ListAgenciesRequest) (*response.AgencyListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := repository.AgencyFilter{
		Query:   req.Query,
		Status:  req.Status,
		SortKey: req.SortKey,
		SortDir: req.SortDir,
		Limit:   req.Limit(),
		Offset:  req.Offset(),
	}

	agencies, err := s.repo.Agency.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list agencies", zap.Error(err))
		return nil, fmt.Errorf("failed to list agencies")
	}

	total, err := s.repo.Agency.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count agencies", zap.Error(err))
		return nil, fmt.Errorf("failed to list agencies")
	}

	if agencies == nil {
		agencies = []entity.Agency{}
	}

	return &response.AgencyListResponse{
		Data:  agencies,
		Total: total,
	}, nil
}
