package dto

type CreateScheduleRequestDTO struct {
	EmployerID string `json:"employer_id" validate:"required" example:"NW-1A2B3C4D"`
	WorkerID   string `json:"worker_id" validate:"required" example:"NW-5E6F7A8B"`
	Amount     string `json:"amount" validate:"required" example:"100"`
	Frequency  string `json:"frequency" validate:"required,oneof=weekly biweekly monthly" example:"monthly"`
	StartDate  string `json:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2025-01-31"`
	Memo       string `json:"memo" validate:"max=28" example:"Salary"`
}

type UpdateScheduleRequestDTO struct {
	Status string `json:"status" validate:"required" example:"paused"`
}

type ExecuteDueRequestDTO struct {
	AsOf string `json:"as_of" validate:"omitempty,datetime=2006-01-02" example:"2025-02-28"`
}
