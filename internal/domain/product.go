package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/ferremax/inventory-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Units a product can be sold in.
var ProductUnits = []string{"pz", "caja", "m", "kg", "lt"}

var imageURLPattern = regexp.MustCompile(`^https?://.+`)

type Attribute struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SKU        string             `bson:"sku" json:"sku"`
	Name       string             `bson:"name" json:"name"`
	Brand      string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Category   string             `bson:"category" json:"category"`
	Unit       string             `bson:"unit" json:"unit"`
	Price      float64            `bson:"price" json:"price"`
	Cost       *float64           `bson:"cost,omitempty" json:"cost,omitempty"`
	Stock      float64            `bson:"stock" json:"stock"`
	MinStock   float64            `bson:"minStock" json:"minStock"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	SupplierID string             `bson:"supplierId,omitempty" json:"supplierId,omitempty"`
	Tags       []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	ImageURL   string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active     bool               `bson:"active" json:"active"`
	Attributes []Attribute        `bson:"attributes,omitempty" json:"attributes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Derived, never stored: stock at or below the reorder threshold.
	IsLowStock bool `bson:"-" json:"isLowStock"`
}

// Normalize applies the schema-level coercions: trimmed fields, uppercased
// SKU, lowercased tags.
func (p *Product) Normalize() {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.TrimSpace(p.Category)
	p.Location = strings.TrimSpace(p.Location)
	p.SupplierID = strings.TrimSpace(p.SupplierID)
	p.ImageURL = strings.TrimSpace(p.ImageURL)

	for i, tag := range p.Tags {
		p.Tags[i] = strings.ToLower(strings.TrimSpace(tag))
	}

	for i, attr := range p.Attributes {
		p.Attributes[i].Key = strings.TrimSpace(attr.Key)
		p.Attributes[i].Value = strings.TrimSpace(attr.Value)
	}
}

// ComputeLowStock refreshes the derived low-stock flag.
func (p *Product) ComputeLowStock() {
	p.IsLowStock = p.Stock <= p.MinStock
}

// Validate runs every schema constraint against the document and reports all
// violations at once. Callers run it on create and again on the merged result
// of a partial update.
func (p *Product) Validate() error {
	var violations []errs.FieldViolation

	if p.SKU == "" {
		violations = append(violations, errs.FieldViolation{Field: "sku", Message: "SKU is required"})
	}
	if p.Name == "" {
		violations = append(violations, errs.FieldViolation{Field: "name", Message: "Product name is required"})
	}
	if p.Category == "" {
		violations = append(violations, errs.FieldViolation{Field: "category", Message: "Category is required"})
	}

	if p.Unit == "" {
		violations = append(violations, errs.FieldViolation{Field: "unit", Message: "Unit is required"})
	} else if !validUnit(p.Unit) {
		violations = append(violations, errs.FieldViolation{Field: "unit", Message: "Unit must be one of: " + strings.Join(ProductUnits, ", ")})
	}

	if p.Price < 0 {
		violations = append(violations, errs.FieldViolation{Field: "price", Message: "Price must be greater than or equal to 0"})
	}
	if p.Cost != nil && *p.Cost < 0 {
		violations = append(violations, errs.FieldViolation{Field: "cost", Message: "Cost must be greater than or equal to 0"})
	}
	if p.Stock < 0 {
		violations = append(violations, errs.FieldViolation{Field: "stock", Message: "Stock must be greater than or equal to 0"})
	}
	if p.MinStock < 0 {
		violations = append(violations, errs.FieldViolation{Field: "minStock", Message: "Minimum stock must be greater than or equal to 0"})
	}

	if p.ImageURL != "" && !imageURLPattern.MatchString(p.ImageURL) {
		violations = append(violations, errs.FieldViolation{Field: "imageUrl", Message: "ImageUrl must be a valid URL"})
	}

	for _, attr := range p.Attributes {
		if attr.Key == "" || attr.Value == "" {
			violations = append(violations, errs.FieldViolation{Field: "attributes", Message: "Attribute key and value are required"})
			break
		}
	}

	if len(violations) > 0 {
		return &errs.ValidationError{Violations: violations}
	}

	return nil
}

func validUnit(unit string) bool {
	for _, u := range ProductUnits {
		if u == unit {
			return true
		}
	}
	return false
}
