package sheet

import "fmt"

// GenerateEmployee carries one employee's override tuple. Unset fields
// are sent as explicit JSON nulls, which the HRMS core treats as "use
// the server-computed value". The arear spelling is fixed by the wire
// contract.
type GenerateEmployee struct {
	EmployeeID     int64    `json:"employeeId"`
	Attendance     *float64 `json:"attendance"`
	LWP            *float64 `json:"lwp"`
	Arear          *float64 `json:"arear"`
	IncomeTax      *float64 `json:"incomeTax"`
	OtherDeduction *float64 `json:"otherDeduction"`
}

type GenerateSalaryPayload struct {
	SalaryStructureType string             `json:"salaryStructureType"`
	GenerateMonth       int                `json:"generateMonth"`
	GenerateYear        int                `json:"generateYear"`
	GenerateEmployees   []GenerateEmployee `json:"generateEmployees"`
}

type GenerateFailure struct {
	EmployeeID int64  `json:"employeeId"`
	Message    string `json:"message"`
}

// GenerateReport mirrors the core's sucessReport object.
type GenerateReport struct {
	SuccessCount int               `json:"successfullyGenerateCount"`
	FailedCount  int               `json:"failedGenerateCount"`
	Failed       []GenerateFailure `json:"failedGenerate"`
	Total        int               `json:"total"`
	Message      string            `json:"message"`
}

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

type GenerateOutcome struct {
	Level        string            `json:"level"`
	Message      string            `json:"message"`
	SuccessCount int               `json:"successCount"`
	FailedCount  int               `json:"failedCount"`
	Failures     []GenerateFailure `json:"failures,omitempty"`
}

// BuildGeneratePayload maps sheet rows to the bulk generate request.
func BuildGeneratePayload(structureType string, tag Tag, rows []PayrollRow) GenerateSalaryPayload {
	employees := make([]GenerateEmployee, len(rows))
	for i, row := range rows {
		employees[i] = GenerateEmployee{
			EmployeeID:     row.EmployeeID,
			Attendance:     row.Attendance,
			LWP:            row.LWPDays,
			Arear:          row.Arrear,
			IncomeTax:      row.IncomeTax,
			OtherDeduction: row.OtherDeductions,
		}
	}

	return GenerateSalaryPayload{
		SalaryStructureType: structureType,
		GenerateMonth:       tag.Month,
		GenerateYear:        tag.Year,
		GenerateEmployees:   employees,
	}
}

// ClassifyReport grades a generation tally. Nothing succeeded is an
// error; anything else is a success, with the failed count called out
// when the success is partial.
func ClassifyReport(report GenerateReport) GenerateOutcome {
	outcome := GenerateOutcome{
		SuccessCount: report.SuccessCount,
		FailedCount:  report.FailedCount,
		Failures:     report.Failed,
	}

	switch {
	case report.SuccessCount == 0 && report.FailedCount > 0:
		outcome.Level = LevelError
		outcome.Message = fmt.Sprintf(
			"Salary generation failed for all %d employees", report.FailedCount)
	case report.FailedCount > 0:
		outcome.Level = LevelSuccess
		outcome.Message = fmt.Sprintf(
			"Salary generated for %d employees, %d failed",
			report.SuccessCount, report.FailedCount)
	default:
		outcome.Level = LevelSuccess
		outcome.Message = fmt.Sprintf(
			"Salary generated for %d employees", report.SuccessCount)
	}

	return outcome
}
