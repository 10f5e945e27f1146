package upstream

import (
	"asdm-hrms/internal/sheet"
	"asdm-hrms/internal/slip"
)

type employeeListRequest struct {
	SalaryStructureType string `json:"salaryStructureType"`
	GenerateMonth       int    `json:"generateMonth"`
	GenerateYear        int    `json:"generateYear"`
}

type employeeListResponse struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	EmployeeList []sheet.PayrollRow `json:"employeeList"`
}

// The core spells its report key this way; it is part of the contract.
type generateSalaryResponse struct {
	SucessReport sheet.GenerateReport `json:"sucessReport"`
}

type salarySlipRequest struct {
	EmployeeID    int64 `json:"employeeId"`
	GenerateMonth int   `json:"generateMonth"`
	GenerateYear  int   `json:"generateYear"`
}

type salarySlipResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    []slip.SlipRecord `json:"data"`
}
