package master

// Wire field names follow the HRMS core's salary-structure-types
// response so existing dashboard clients keep working unchanged.

type StructureTypeResponse struct {
	Type string `json:"type"`
}

type FinancialYearResponse struct {
	ID         int64  `json:"pklSalaryFinancialYearId"`
	Label      string `json:"vsFy"`
	StartMonth int    `json:"iStartMonth"`
	Enabled    bool   `json:"bEnabled"`
	CreatedAt  string `json:"dtCreatedAt"`
}

type DesignationCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MasterDataResponse struct {
	SalaryStructureTypes []StructureTypeResponse       `json:"salaryStructureTypes"`
	FYMaster             []FinancialYearResponse       `json:"fyMaster"`
	DesignationCategory  []DesignationCategoryResponse `json:"designationCategory"`
}
