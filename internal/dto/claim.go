package dto

import "github.com/GlebRadaev/paytrace/internal/domain"

type CreateClaimRequestDTO struct {
	WorkerID   string `json:"worker_id" validate:"required" example:"NW-5E6F7A8B"`
	EmployerID string `json:"employer_id" validate:"required" example:"NW-1A2B3C4D"`
	Amount     string `json:"amount" validate:"required" example:"40"`
	Message    string `json:"message" validate:"max=500" example:"Extra shift on Saturday"`
	ScheduleID string `json:"schedule_id" example:"SP-0A1B2C3D"`
}

type UpdateClaimRequestDTO struct {
	Status string `json:"status" validate:"required" example:"approved"`
}

type PayClaimResponseDTO struct {
	Claim   *domain.Claim         `json:"claim"`
	Payment *domain.PaymentResult `json:"payment"`
}
