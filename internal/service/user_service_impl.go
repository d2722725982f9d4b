package service

import (
	"context"
	"time"

	"github.com/ferremax/inventory-service/config"
	"github.com/ferremax/inventory-service/internal/domain"
	"github.com/ferremax/inventory-service/internal/dto"
	"github.com/ferremax/inventory-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

// AddUser stores the password exactly as given. The wire contract exposes
// it back on reads, so hashing here would break clients; known security gap.
func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (user domain.User, err error) {
	now := time.Now().UTC()

	user = domain.User{
		Name:      data.Name,
		Age:       data.Age,
		Email:     data.Email,
		Password:  data.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = user.Validate(); err != nil {
		return
	}

	id, err := s.repo.AddUser(ctx, user)
	if err != nil {
		return
	}

	user.ID = id

	return user, nil
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) (users []domain.User, err error) {
	return s.repo.GetUsers(ctx, bson.M{})
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserServiceImpl) FilterUsers(ctx context.Context, param dto.UserFilter) (users []domain.User, err error) {
	filter, err := repository.BuildUserFilter(param)
	if err != nil {
		return
	}

	return s.repo.GetUsers(ctx, filter)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, data dto.UserRequest) (result dto.UpdateResult, err error) {
	user := domain.User{
		Name:      data.Name,
		Age:       data.Age,
		Email:     data.Email,
		Password:  data.Password,
		UpdatedAt: time.Now().UTC(),
	}

	return s.repo.UpdateUser(ctx, id, user)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (result dto.DeleteResult, err error) {
	return s.repo.DeleteUser(ctx, id)
}
