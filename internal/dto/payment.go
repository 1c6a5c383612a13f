package dto

type SendPaymentRequestDTO struct {
	From   string `json:"from" validate:"required" example:"NW-1A2B3C4D"`
	To     string `json:"to" validate:"required" example:"254712345678"`
	Amount string `json:"amount" validate:"required" example:"12.5"`
	Memo   string `json:"memo" validate:"max=28" example:"Wages"`
}
