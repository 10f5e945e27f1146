package slip

// SlipRecord is one employee's finalized monthly slip as returned by
// the HRMS core once the salary has been generated.
type SlipRecord struct {
	EmployeeID          int64   `json:"employeeId"`
	Name                string  `json:"name"`
	Designation         string  `json:"designation"`
	DesignationCategory string  `json:"designationCategory"`
	GenerateMonth       int     `json:"generateMonth"`
	GenerateYear        int     `json:"generateYear"`
	Attendance          float64 `json:"attendance"`
	LWPDays             float64 `json:"lwpDays"`
	BasicPay            float64 `json:"basicPay"`
	Salary              float64 `json:"salary"`
	HouseRent           float64 `json:"houseRentValue"`
	MobileInternet      float64 `json:"mobileInternetAllowance"`
	Newspaper           float64 `json:"newspaperAllowance"`
	Conveyance          float64 `json:"conveyanceAllowance"`
	EducationAllowance  float64 `json:"educationAllowance"`
	Arrear              float64 `json:"arrear"`
	TotalPay            float64 `json:"totalPay"`
	PTax                float64 `json:"pTax"`
	IncomeTax           float64 `json:"deductionIncomeTax"`
	OtherDeductions     float64 `json:"ddvancesOtherDeductions"`
	TotalDeduction      float64 `json:"totalDeduction"`
	NetAmount           float64 `json:"netAmount"`
}
