package dto

type TransferRequestDTO struct {
	Identifier string `json:"identifier" validate:"required" example:"NW-1A2B3C4D"`
	Phone      string `json:"phone" example:"0712345678"`
	Amount     string `json:"amount" validate:"required" example:"10"`
}

type DepositCallbackRequestDTO struct {
	ExternalID string `json:"external_id" validate:"required" example:"MPESA-COLLECT-0A1B2C3D4E"`
	Success    bool   `json:"success"`
}

type PayoutCallbackRequestDTO struct {
	ExternalID string `json:"external_id" validate:"required" example:"MPESA-0A1B2C3D4E"`
	Success    bool   `json:"success"`
}
