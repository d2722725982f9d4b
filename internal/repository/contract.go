package repository

import (
	"context"
	"time"

	"github.com/ferremax/inventory-service/internal/domain"
	"github.com/ferremax/inventory-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, filter bson.M, limit int64, skip int64) (data []domain.Product, err error)
	CountProducts(ctx context.Context, filter bson.M) (total int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	ReplaceProduct(ctx context.Context, data domain.Product) (err error)
	SetProductStock(ctx context.Context, id primitive.ObjectID, stock float64, updatedAt time.Time) (err error)
	DeactivateProduct(ctx context.Context, id string) (product domain.Product, err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUsers(ctx context.Context, filter bson.M) (data []domain.User, err error)
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	UpdateUser(ctx context.Context, id string, data domain.User) (result dto.UpdateResult, err error)
	DeleteUser(ctx context.Context, id string) (result dto.DeleteResult, err error)
}
