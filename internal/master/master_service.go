package master

import (
	"context"
	"time"
)

//go:generate mockgen -source=master_service.go -destination=mock/master_service_mock.go -package=mock
type Service interface {
	GetMasterData(ctx context.Context) (MasterDataResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetMasterData(ctx context.Context) (MasterDataResponse, error) {
	types, err := s.repo.FindStructureTypes(ctx)
	if err != nil {
		return MasterDataResponse{}, mapRepositoryError(err)
	}

	years, err := s.repo.FindFinancialYears(ctx)
	if err != nil {
		return MasterDataResponse{}, mapRepositoryError(err)
	}

	categories, err := s.repo.FindDesignationCategories(ctx)
	if err != nil {
		return MasterDataResponse{}, mapRepositoryError(err)
	}

	resp := MasterDataResponse{
		SalaryStructureTypes: make([]StructureTypeResponse, len(types)),
		FYMaster:             make([]FinancialYearResponse, len(years)),
		DesignationCategory:  make([]DesignationCategoryResponse, len(categories)),
	}

	for i, t := range types {
		resp.SalaryStructureTypes[i] = StructureTypeResponse{Type: t.Type}
	}
	for i, fy := range years {
		resp.FYMaster[i] = FinancialYearResponse{
			ID:         fy.ID,
			Label:      fy.Label,
			StartMonth: fy.StartMonth,
			Enabled:    fy.Enabled,
			CreatedAt:  fy.CreatedAt.Format(time.RFC3339),
		}
	}
	for i, cat := range categories {
		resp.DesignationCategory[i] = DesignationCategoryResponse{
			ID:   cat.ID,
			Name: cat.Name,
		}
	}

	return resp, nil
}
