package repository

import (
	"math"
	"regexp"
	"strconv"

	"github.com/ferremax/inventory-service/internal/dto"
	"github.com/ferremax/inventory-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultLimit = 10
	defaultSkip  = 0
)

// BuildProductFilter translates the listing query parameters into a Mongo
// filter plus coerced pagination numbers. Pure transformation, no I/O.
//
// An explicit category or brand parameter and a q match on the same field are
// kept as separate predicates ($or group vs. top-level key), so both apply.
func BuildProductFilter(param dto.ProductFilter) (filter bson.M, limit int64, skip int64, err error) {
	filter = bson.M{}

	if param.Q != "" {
		re := containsPattern(param.Q)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"brand": re},
			bson.M{"category": re},
		}
	}

	if param.Category != "" {
		filter["category"] = containsPattern(param.Category)
	}

	if param.Brand != "" {
		filter["brand"] = containsPattern(param.Brand)
	}

	price := bson.M{}
	if param.MinPrice != "" {
		minPrice, parseErr := strconv.ParseFloat(param.MinPrice, 64)
		if parseErr != nil {
			return nil, 0, 0, errs.ErrClient
		}
		price["$gte"] = minPrice
	}
	if param.MaxPrice != "" {
		maxPrice, parseErr := strconv.ParseFloat(param.MaxPrice, 64)
		if parseErr != nil {
			return nil, 0, 0, errs.ErrClient
		}
		price["$lte"] = maxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	// Any present value other than the literal "true" filters to inactive
	// products, "false" or not. Known quirk, kept for compatibility.
	if param.Active != "" {
		filter["active"] = param.Active == "true"
	}

	if param.MinStockAlert == "true" {
		filter["$expr"] = bson.M{"$lte": bson.A{"$stock", "$minStock"}}
	}

	limit = defaultLimit
	if param.Limit != "" {
		limit, err = strconv.ParseInt(param.Limit, 10, 64)
		if err != nil {
			return nil, 0, 0, errs.ErrClient
		}
	}

	skip = defaultSkip
	if param.Skip != "" {
		skip, err = strconv.ParseInt(param.Skip, 10, 64)
		if err != nil {
			return nil, 0, 0, errs.ErrClient
		}
	}

	return filter, limit, skip, nil
}

// BuildUserFilter translates the user filter parameters. Age is a strict
// greater-than bound and must parse as a finite number.
func BuildUserFilter(param dto.UserFilter) (filter bson.M, err error) {
	filter = bson.M{}

	if param.Name != "" {
		filter["name"] = containsPattern(param.Name)
	}

	if param.Age != "" {
		age, parseErr := strconv.ParseFloat(param.Age, 64)
		if parseErr != nil || math.IsNaN(age) || math.IsInf(age, 0) {
			return nil, errs.ErrInvalidAge
		}
		filter["age"] = bson.M{"$gt": age}
	}

	return filter, nil
}

// containsPattern is a case-insensitive substring match on the field value.
func containsPattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
