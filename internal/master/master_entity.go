package master

import "time"

type SalaryStructureType struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Type string `gorm:"column:type"`
}

func (SalaryStructureType) TableName() string { return "salary_structure_types" }

// FinancialYear is an accounting period with a configurable start
// month, distinct from the calendar year.
type FinancialYear struct {
	ID         int64     `gorm:"primaryKey;column:pkl_salary_financial_year_id"`
	Label      string    `gorm:"column:vs_fy"`
	StartMonth int       `gorm:"column:i_start_month"`
	Enabled    bool      `gorm:"column:b_enabled"`
	CreatedAt  time.Time `gorm:"column:dt_created_at"`
}

func (FinancialYear) TableName() string { return "salary_financial_years" }

type DesignationCategory struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
}

func (DesignationCategory) TableName() string { return "designation_categories" }
