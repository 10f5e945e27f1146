package master

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=master_repo.go -destination=mock/master_repo_mock.go -package=mock
type Repository interface {
	FindStructureTypes(ctx context.Context) ([]SalaryStructureType, error)
	FindFinancialYears(ctx context.Context) ([]FinancialYear, error)
	FindDesignationCategories(ctx context.Context) ([]DesignationCategory, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindStructureTypes(ctx context.Context) ([]SalaryStructureType, error) {
	var types []SalaryStructureType
	err := r.db.WithContext(ctx).
		Order("type ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindFinancialYears(ctx context.Context) ([]FinancialYear, error) {
	var years []FinancialYear
	err := r.db.WithContext(ctx).
		Where("b_enabled = ?", true).
		Order("dt_created_at DESC").
		Find(&years).Error
	return years, err
}

func (r *repository) FindDesignationCategories(ctx context.Context) ([]DesignationCategory, error) {
	var categories []DesignationCategory
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}
