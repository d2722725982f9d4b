package repository

import (
	"testing"

	"github.com/ferremax/inventory-service/internal/dto"
	"github.com/ferremax/inventory-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilter_Defaults(t *testing.T) {
	filter, limit, skip, err := BuildProductFilter(dto.ProductFilter{})

	require.NoError(t, err)
	assert.Empty(t, filter)
	assert.Equal(t, int64(10), limit)
	assert.Equal(t, int64(0), skip)
}

func TestBuildProductFilter_Keyword(t *testing.T) {
	filter, _, _, err := BuildProductFilter(dto.ProductFilter{Q: "martillo"})

	require.NoError(t, err)

	re := primitive.Regex{Pattern: "martillo", Options: "i"}
	assert.Equal(t, bson.A{
		bson.M{"name": re},
		bson.M{"brand": re},
		bson.M{"category": re},
	}, filter["$or"])
}

func TestBuildProductFilter_KeywordAndCategoryAreSeparatePredicates(t *testing.T) {
	filter, _, _, err := BuildProductFilter(dto.ProductFilter{
		Q:        "martillo",
		Category: "Herramientas",
		Brand:    "Stanley",
	})

	require.NoError(t, err)
	assert.Contains(t, filter, "$or")
	assert.Equal(t, primitive.Regex{Pattern: "Herramientas", Options: "i"}, filter["category"])
	assert.Equal(t, primitive.Regex{Pattern: "Stanley", Options: "i"}, filter["brand"])
}

func TestBuildProductFilter_PriceBounds(t *testing.T) {
	testCases := []struct {
		name     string
		minPrice string
		maxPrice string
		expected bson.M
	}{
		{name: "min only", minPrice: "1000", expected: bson.M{"$gte": 1000.0}},
		{name: "max only", maxPrice: "50000", expected: bson.M{"$lte": 50000.0}},
		{name: "both", minPrice: "1000", maxPrice: "50000", expected: bson.M{"$gte": 1000.0, "$lte": 50000.0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filter, _, _, err := BuildProductFilter(dto.ProductFilter{MinPrice: tc.minPrice, MaxPrice: tc.maxPrice})

			require.NoError(t, err)
			assert.Equal(t, tc.expected, filter["price"])
		})
	}
}

func TestBuildProductFilter_InvalidNumbers(t *testing.T) {
	testCases := []struct {
		name  string
		param dto.ProductFilter
	}{
		{name: "minPrice", param: dto.ProductFilter{MinPrice: "cheap"}},
		{name: "maxPrice", param: dto.ProductFilter{MaxPrice: "expensive"}},
		{name: "limit", param: dto.ProductFilter{Limit: "ten"}},
		{name: "skip", param: dto.ProductFilter{Skip: "twenty"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := BuildProductFilter(tc.param)
			assert.ErrorIs(t, err, errs.ErrClient)
		})
	}
}

func TestBuildProductFilter_Active(t *testing.T) {
	testCases := []struct {
		name     string
		active   string
		expected interface{}
	}{
		{name: "true", active: "true", expected: true},
		{name: "false", active: "false", expected: false},
		// Any other present value also filters to inactive. Known quirk.
		{name: "garbage", active: "banana", expected: false},
		{name: "absent", active: "", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filter, _, _, err := BuildProductFilter(dto.ProductFilter{Active: tc.active})

			require.NoError(t, err)
			if tc.expected == nil {
				assert.NotContains(t, filter, "active")
			} else {
				assert.Equal(t, tc.expected, filter["active"])
			}
		})
	}
}

func TestBuildProductFilter_MinStockAlert(t *testing.T) {
	filter, _, _, err := BuildProductFilter(dto.ProductFilter{MinStockAlert: "true"})

	require.NoError(t, err)
	assert.Equal(t, bson.M{"$lte": bson.A{"$stock", "$minStock"}}, filter["$expr"])

	filter, _, _, err = BuildProductFilter(dto.ProductFilter{MinStockAlert: "false"})

	require.NoError(t, err)
	assert.NotContains(t, filter, "$expr")
}

func TestBuildProductFilter_Pagination(t *testing.T) {
	_, limit, skip, err := BuildProductFilter(dto.ProductFilter{Limit: "25", Skip: "50"})

	require.NoError(t, err)
	assert.Equal(t, int64(25), limit)
	assert.Equal(t, int64(50), skip)
}

func TestBuildProductFilter_KeywordEscapesRegexMeta(t *testing.T) {
	filter, _, _, err := BuildProductFilter(dto.ProductFilter{Q: "16oz."})

	require.NoError(t, err)

	or := filter["$or"].(bson.A)
	assert.Equal(t, primitive.Regex{Pattern: `16oz\.`, Options: "i"}, or[0].(bson.M)["name"])
}

func TestBuildUserFilter(t *testing.T) {
	filter, err := BuildUserFilter(dto.UserFilter{Name: "john", Age: "30"})

	require.NoError(t, err)
	assert.Equal(t, primitive.Regex{Pattern: "john", Options: "i"}, filter["name"])
	assert.Equal(t, bson.M{"$gt": 30.0}, filter["age"])
}

func TestBuildUserFilter_Empty(t *testing.T) {
	filter, err := BuildUserFilter(dto.UserFilter{})

	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestBuildUserFilter_InvalidAge(t *testing.T) {
	for _, age := range []string{"abc", "NaN", "Inf", "-Inf"} {
		t.Run(age, func(t *testing.T) {
			_, err := BuildUserFilter(dto.UserFilter{Age: age})
			assert.ErrorIs(t, err, errs.ErrInvalidAge)
		})
	}
}
