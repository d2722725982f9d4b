package dto

// ProductFilter holds the raw query parameters of the product listing. Values
// stay strings until the filter builder coerces them so that absent and
// malformed parameters stay distinguishable.
type ProductFilter struct {
	Q             string `query:"q"`
	Category      string `query:"category"`
	Brand         string `query:"brand"`
	MinPrice      string `query:"minPrice"`
	MaxPrice      string `query:"maxPrice"`
	Active        string `query:"active"`
	MinStockAlert string `query:"minStockAlert"`
	Limit         string `query:"limit"`
	Skip          string `query:"skip"`
}

type UserFilter struct {
	Name string `query:"name"`
	Age  string `query:"age"`
}
