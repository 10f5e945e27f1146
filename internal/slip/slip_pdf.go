package slip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

var slipMonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func slipMonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Month-%d", month)
	}
	return slipMonthNames[month-1]
}

func slipFileName(record SlipRecord) string {
	return fmt.Sprintf("SalarySlip_%d_%s_%d.pdf",
		record.EmployeeID, slipMonthName(record.GenerateMonth), record.GenerateYear)
}

func renderSlipPDF(record SlipRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Slip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%d)", record.Name, record.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", record.Designation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", slipMonthName(record.GenerateMonth), record.GenerateYear))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Attendance: %.0f days, LWP: %.0f days", record.Attendance, record.LWPDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic Pay: %.2f", record.BasicPay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Salary: %.2f", record.Salary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("House Rent: %.2f", record.HouseRent))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances (mobile/newspaper/conveyance/education): %.2f / %.2f / %.2f / %.2f",
		record.MobileInternet, record.Newspaper, record.Conveyance, record.EducationAllowance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Arrear: %.2f", record.Arrear))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Pay: %.2f", record.TotalPay))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("P-Tax: %.2f", record.PTax))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Income Tax: %.2f", record.IncomeTax))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Other Deductions: %.2f", record.OtherDeductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Deduction: %.2f", record.TotalDeduction))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Net Amount: %.2f", record.NetAmount))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
