package dto

type CreateAccountRequestDTO struct {
	Phone string `json:"phone" validate:"required" example:"0712345678"`
	Name  string `json:"name" validate:"max=120" example:"Amina Otieno"`
	Role  string `json:"role" validate:"omitempty,oneof=worker employer" example:"worker"`
}

type AccountResponseDTO struct {
	WorkerID  string `json:"worker_id,omitempty" example:"NW-1A2B3C4D"`
	Phone     string `json:"phone,omitempty" example:"254712345678"`
	Name      string `json:"name,omitempty" example:"Amina Otieno"`
	Role      string `json:"role,omitempty" example:"worker"`
	PublicKey string `json:"public_key" example:"GCFX...WXYZ"`
	Created   bool   `json:"created,omitempty"`
	CreatedAt string `json:"created_at,omitempty" example:"2025-01-31T09:00:00Z"`
}

type PlatformKeyResponseDTO struct {
	PlatformPublicKey string `json:"platform_public_key" example:"GCFX...WXYZ"`
}
