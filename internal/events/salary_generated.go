package events

import "time"

const (
	SalaryGeneratedTopic     = "hr.payroll.salary.generated.v1"
	SalaryGeneratedEventType = "salary.generated"
)

type SalaryGeneratedEvent struct {
	EventType           string    `json:"event_type"`
	SalaryStructureType string    `json:"salary_structure_type"`
	GenerateMonth       int       `json:"generate_month"`
	GenerateYear        int       `json:"generate_year"`
	SuccessCount        int       `json:"success_count"`
	FailedCount         int       `json:"failed_count"`
	GeneratedBy         string    `json:"generated_by"`
	OccurredAt          time.Time `json:"occurred_at"`
}
