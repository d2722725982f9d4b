package dto

import "github.com/ferremax/inventory-service/internal/domain"

type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Limit    int64            `json:"limit"`
	Skip     int64            `json:"skip"`
	HasMore  bool             `json:"hasMore"`
}

type StockAdjustmentResult struct {
	Message       string         `json:"message"`
	Product       domain.Product `json:"product"`
	PreviousStock float64        `json:"previousStock"`
	NewStock      float64        `json:"newStock"`
	Adjustment    float64        `json:"adjustment"`
	Reason        *string        `json:"reason"`
}

type ProductDeleteResponse struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}
