package dto

import "github.com/ferremax/inventory-service/internal/domain"

type ProductRequest struct {
	SKU        string             `json:"sku"`
	Name       string             `json:"name"`
	Brand      string             `json:"brand"`
	Category   string             `json:"category"`
	Unit       string             `json:"unit"`
	Price      float64            `json:"price"`
	Cost       *float64           `json:"cost"`
	Stock      float64            `json:"stock"`
	MinStock   float64            `json:"minStock"`
	Location   string             `json:"location"`
	SupplierID string             `json:"supplierId"`
	Tags       []string           `json:"tags"`
	ImageURL   string             `json:"imageUrl"`
	Active     *bool              `json:"active"`
	Attributes []domain.Attribute `json:"attributes"`
}

// ProductUpdateRequest carries a partial update. Nil means the field was
// absent or JSON null; empty strings are stripped before the merge as well.
type ProductUpdateRequest struct {
	SKU        *string             `json:"sku"`
	Name       *string             `json:"name"`
	Brand      *string             `json:"brand"`
	Category   *string             `json:"category"`
	Unit       *string             `json:"unit"`
	Price      *float64            `json:"price"`
	Cost       *float64            `json:"cost"`
	Stock      *float64            `json:"stock"`
	MinStock   *float64            `json:"minStock"`
	Location   *string             `json:"location"`
	SupplierID *string             `json:"supplierId"`
	Tags       *[]string           `json:"tags"`
	ImageURL   *string             `json:"imageUrl"`
	Active     *bool               `json:"active"`
	Attributes *[]domain.Attribute `json:"attributes"`
}

type StockAdjustmentRequest struct {
	Adjustment *float64 `json:"adjustment"`
	Reason     string   `json:"reason"`
}
