package dto

type SubmitReviewRequestDTO struct {
	ReviewerID string `json:"reviewer_id" validate:"required" example:"NW-1A2B3C4D"`
	RevieweeID string `json:"reviewee_id" validate:"required" example:"NW-5E6F7A8B"`
	Rating     int    `json:"rating" example:"5"`
	Comment    string `json:"comment" validate:"max=1000" example:"Always on time"`
	ScheduleID string `json:"schedule_id" example:"SP-0A1B2C3D"`
}

type InviteRequestDTO struct {
	ScheduleID string `json:"schedule_id" validate:"required" example:"SP-0A1B2C3D"`
	ReviewerID string `json:"reviewer_id" validate:"required" example:"NW-1A2B3C4D"`
}
