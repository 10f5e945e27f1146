package slip

type GenerateSlipRequest struct {
	SalaryStructureType string `json:"salaryStructureType" binding:"required"`
	EmployeeID          int64  `json:"employeeId" binding:"required"`
	GenerateMonth       int    `json:"generateMonth" binding:"required,min=1,max=12"`
	GenerateYear        int    `json:"generateYear" binding:"required,min=2000"`
}

type SlipFile struct {
	Name    string
	Content []byte
}
