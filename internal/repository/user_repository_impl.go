package repository

import (
	"context"

	"github.com/ferremax/inventory-service/internal/domain"
	"github.com/ferremax/inventory-service/internal/dto"
	"github.com/ferremax/inventory-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const userCollection = "users"

type UserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(userCollection).InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrEmailAlreadyUsed
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context, filter bson.M) (data []domain.User, err error) {
	cursor, err := r.db.Collection(userCollection).Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	if data == nil {
		data = []domain.User{}
	}

	return data, nil
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, errs.ErrInvalidUserID
	}

	filter := bson.D{{Key: "_id", Value: userID}}

	err = r.db.Collection(userCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrUserNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		return user, err
	}

	return user, nil
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, id string, data domain.User) (result dto.UpdateResult, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return result, errs.ErrInvalidUserID
	}

	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "age", Value: data.Age},
		{Key: "email", Value: data.Email},
		{Key: "password", Value: data.Password},
		{Key: "updatedAt", Value: data.UpdatedAt},
	}}}

	updateResult, err := r.db.Collection(userCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return result, errs.ErrEmailAlreadyUsed
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("")
		return
	}

	result = dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  updateResult.MatchedCount,
		ModifiedCount: updateResult.ModifiedCount,
		UpsertedCount: updateResult.UpsertedCount,
		UpsertedID:    updateResult.UpsertedID,
	}

	return result, nil
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id string) (result dto.DeleteResult, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return result, errs.ErrInvalidUserID
	}

	filter := bson.D{{Key: "_id", Value: userID}}

	deleteResult, err := r.db.Collection(userCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Msg("")
		return
	}

	result = dto.DeleteResult{
		Acknowledged: true,
		DeletedCount: deleteResult.DeletedCount,
	}

	return result, nil
}
