package sheet

import (
	"bytes"
	"fmt"

	sheeterrors "asdm-hrms/internal/sheet/errors"

	"github.com/xuri/excelize/v2"
)

const exportFilePrefix = "SalaryReport"

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var exportHeaders = []string{
	"Sl No", "Employee ID", "Name", "Designation", "Category",
	"Attendance", "LWP Days", "Basic Pay", "Increment", "Salary",
	"House Rent", "Mobile/Internet", "Newspaper", "Conveyance",
	"Education Allowance", "Arrear", "Total Pay", "P-Tax",
	"Income Tax", "Other Deductions", "Total Deduction", "Net Amount",
	"Status",
}

// BuildSalaryReport renders the sheet to an xlsx workbook: one row per
// employee in buffer order, nullable numerics shown as 0, and a single
// TOTAL row summing every numeric column. The zero display is
// presentation only; the buffer keeps its nulls.
func BuildSalaryReport(rows []PayrollRow, tag Tag) (ExportFile, error) {
	if len(rows) == 0 {
		return ExportFile{}, sheeterrors.ErrNothingToExport
	}
	if tag.Month < 1 || tag.Month > 12 {
		return ExportFile{}, sheeterrors.ErrNothingToExport
	}

	f := excelize.NewFile()
	sheetName := "Salary Sheet"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return ExportFile{}, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// Numeric columns summed into the TOTAL row, 1-based.
	numericCols := []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22}
	totals := make(map[int]float64, len(numericCols))

	for i, row := range rows {
		rowIndex := i + 2
		values := []any{
			i + 1,
			row.EmployeeID,
			row.Name,
			row.Designation,
			row.DesignationCategory,
			orZero(row.Attendance),
			orZero(row.LWPDays),
			row.BasicPay,
			row.IncrementValue,
			row.Salary,
			row.HouseRentValue,
			row.MobileInternet,
			row.Newspaper,
			row.Conveyance,
			row.EducationAllowance,
			orZero(row.Arrear),
			row.TotalPay,
			row.PTax,
			orZero(row.IncomeTax),
			orZero(row.OtherDeductions),
			row.TotalDeduction,
			row.NetAmount,
			row.Status,
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIndex)
			f.SetCellValue(sheetName, cell, v)
		}

		for _, col := range numericCols {
			if v, ok := values[col-1].(float64); ok {
				totals[col] += v
			}
		}
	}

	totalRow := len(rows) + 2
	cell, _ := excelize.CoordinatesToCellName(3, totalRow)
	f.SetCellValue(sheetName, cell, "TOTAL")
	for _, col := range numericCols {
		cell, _ := excelize.CoordinatesToCellName(col, totalRow)
		f.SetCellValue(sheetName, cell, totals[col])
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ExportFile{}, err
	}

	name := fmt.Sprintf("%s_%s_%d.xlsx", exportFilePrefix, monthNames[tag.Month-1], tag.Year)
	return ExportFile{Name: name, Content: buf.Bytes()}, nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
