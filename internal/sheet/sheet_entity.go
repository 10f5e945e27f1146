package sheet

const (
	StatusPending   = "pending"
	StatusGenerated = "generated"
)

// Editable field names, matching the wire names the HRMS core uses.
// The ddvances typo is part of the upstream contract.
const (
	FieldAttendance      = "attendance"
	FieldLWPDays         = "lwpDays"
	FieldArrear          = "arrear"
	FieldIncomeTax       = "deductionIncomeTax"
	FieldOtherDeductions = "ddvancesOtherDeductions"
	FieldName            = "name"
	FieldDesignation     = "designation"
)

// PayrollRow is one employee's row of the monthly salary sheet. Baseline
// fields are computed by the HRMS core and read-only here; the pointer
// fields are user-editable overrides where nil means "unset", which is
// distinct from zero and must survive the round trip to the core.
type PayrollRow struct {
	EmployeeID       int64  `json:"employeeId"`
	BreakingRecordID *int64 `json:"breakingRecordId"`

	Name                string  `json:"name"`
	Designation         string  `json:"designation"`
	DesignationCategory string  `json:"designationCategory"`
	BasicPay            float64 `json:"basicPay"`
	IncrementPercent    float64 `json:"incrementPercentage"`
	IncrementValue      float64 `json:"incrementValue"`
	Salary              float64 `json:"salary"`
	HouseRentPercent    float64 `json:"houseRentPercentage"`
	HouseRentValue      float64 `json:"houseRentValue"`
	MobileInternet      float64 `json:"mobileInternetAllowance"`
	Newspaper           float64 `json:"newspaperAllowance"`
	Conveyance          float64 `json:"conveyanceAllowance"`
	EducationAllowance  float64 `json:"educationAllowance"`
	TotalPay            float64 `json:"totalPay"`
	PTax                float64 `json:"pTax"`
	TotalDeduction      float64 `json:"totalDeduction"`
	NetAmount           float64 `json:"netAmount"`
	Status              string  `json:"status"`

	Attendance      *float64 `json:"attendance"`
	LWPDays         *float64 `json:"lwpDays"`
	Arrear          *float64 `json:"arrear"`
	IncomeTax       *float64 `json:"deductionIncomeTax"`
	OtherDeductions *float64 `json:"ddvancesOtherDeductions"`
}

// RowID is the row identifier used for edits and selection: the breaking
// record id once the core has assigned one, the employee id before that.
func (r PayrollRow) RowID() int64 {
	if r.BreakingRecordID != nil {
		return *r.BreakingRecordID
	}
	return r.EmployeeID
}

// Tag identifies the (month, year) window a sheet belongs to.
type Tag struct {
	Month int
	Year  int
}
