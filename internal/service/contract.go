package service

import (
	"context"

	"github.com/ferremax/inventory-service/internal/domain"
	"github.com/ferremax/inventory-service/internal/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	GetProducts(ctx context.Context, param dto.ProductFilter) (resp dto.ProductListResponse, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, data dto.ProductUpdateRequest) (product domain.Product, err error)
	AdjustStock(ctx context.Context, id string, data dto.StockAdjustmentRequest) (result dto.StockAdjustmentResult, err error)
	DeleteProduct(ctx context.Context, id string) (product domain.Product, err error)
}

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (user domain.User, err error)
	GetUsers(ctx context.Context) (users []domain.User, err error)
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	FilterUsers(ctx context.Context, param dto.UserFilter) (users []domain.User, err error)
	UpdateUser(ctx context.Context, id string, data dto.UserRequest) (result dto.UpdateResult, err error)
	DeleteUser(ctx context.Context, id string) (result dto.DeleteResult, err error)
}

// EventPublisher pushes audit events to the message broker. Implemented by
// the kafka infrastructure package.
type EventPublisher interface {
	Publish(msg []byte) error
}
