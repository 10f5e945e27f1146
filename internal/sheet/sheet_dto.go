package sheet

type LoadSheetRequest struct {
	SalaryStructureType string `json:"salaryStructureType" binding:"required"`
	GenerateMonth       int    `json:"generateMonth" binding:"required,min=1,max=12"`
	GenerateYear        int    `json:"generateYear" binding:"required,min=2000"`
}

type EditFieldRequest struct {
	SalaryStructureType string `json:"salaryStructureType" binding:"required"`
	RowID               *int64 `json:"rowId"`
	RowIndex            int    `json:"rowIndex"`
	Field               string `json:"field" binding:"required"`
	Value               string `json:"value"`
}

// SelectionRequest toggles the whole sheet when All is set, otherwise
// toggles the single row identified by RowID.
type SelectionRequest struct {
	SalaryStructureType string `json:"salaryStructureType" binding:"required"`
	All                 *bool  `json:"all"`
	RowID               *int64 `json:"rowId"`
}

type GenerateSheetRequest struct {
	SalaryStructureType string `json:"salaryStructureType" binding:"required"`
}

type ExportSheetRequest struct {
	SalaryStructureType string `form:"salaryStructureType" binding:"required"`
}

type SheetView struct {
	SalaryStructureType string       `json:"salaryStructureType"`
	GenerateMonth       int          `json:"generateMonth"`
	GenerateYear        int          `json:"generateYear"`
	EmployeeList        []PayrollRow `json:"employeeList"`
	Selection           []int64      `json:"selection"`
}

type ExportFile struct {
	Name    string
	Content []byte
}
