package repository

import (
	"context"
	"time"

	"github.com/ferremax/inventory-service/internal/domain"
	"github.com/ferremax/inventory-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollection = "Product"

type ProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrSKUAlreadyExists
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter bson.M, limit int64, skip int64) (data []domain.Product, err error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(skip).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection(productCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, nil
}

func (r *ProductRepositoryImpl) CountProducts(ctx context.Context, filter bson.M) (total int64, err error) {
	total, err = r.db.Collection(productCollection).CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
	}

	return
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrInvalidProductID
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *ProductRepositoryImpl) ReplaceProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	result, err := r.db.Collection(productCollection).ReplaceOne(ctx, filter, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrSKUAlreadyExists
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "ReplaceProduct").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) SetProductStock(ctx context.Context, id primitive.ObjectID, stock float64, updatedAt time.Time) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "stock", Value: stock},
		{Key: "updatedAt", Value: updatedAt},
	}}}

	result, err := r.db.Collection(productCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetProductStock").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) DeactivateProduct(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrInvalidProductID
	}

	filter := bson.D{{Key: "_id", Value: productID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "active", Value: false},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(productCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "DeactivateProduct").Msg("")
		return product, err
	}

	return product, nil
}
