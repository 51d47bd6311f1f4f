package dto

// CreateSemesterRequest represents semester creation data.
// Dates are "YYYY-MM-DD".
type CreateSemesterRequest struct {
	Name      string `json:"name" binding:"required" example:"2024/25/1"`
	StartDate string `json:"startDate" binding:"required" example:"2024-09-09"`
	EndDate   string `json:"endDate" binding:"required" example:"2024-12-14"`
	IsCurrent bool   `json:"isCurrent"`
}

// UpdateSemesterRequest represents semester update data
type UpdateSemesterRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}
