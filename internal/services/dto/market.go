package dto

type CreateMarketRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateMarketRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
