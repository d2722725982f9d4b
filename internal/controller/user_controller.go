package controller

import (
	"net/http"

	"github.com/ferremax/inventory-service/internal/dto"
	"github.com/ferremax/inventory-service/internal/service"
	"github.com/ferremax/inventory-service/pkg/errs"
	"github.com/ferremax/inventory-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService) {
	c := UserController{
		service: service,
	}
	e.POST("/users", c.AddUser)
	e.GET("/users", c.GetUsers)
	e.GET("/users/filter", c.FilterUsers)
	e.GET("/users/:id", c.GetUserByID)
	e.PUT("/users/:id", c.UpdateUser)
	e.PATCH("/users/:id", c.UpdateUser)
	e.DELETE("/users/:id", c.DeleteUser)
}

// AddUser godoc
// @Summary Create a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.UserRequest true "User payload"
// @Success 201 {object} domain.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users [post]
func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	user, err := c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, user)
}

// GetUsers godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500 {object} response.ErrorResponse
// @Router /users [get]
func (c *UserController) GetUsers(e echo.Context) error {
	users, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, users)
}

// FilterUsers godoc
// @Summary Filter users by name and age
// @Tags Users
// @Produce json
// @Param name query string false "Case-insensitive name match"
// @Param age query number false "Strictly greater-than age bound"
// @Success 200 {array} domain.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/filter [get]
func (c *UserController) FilterUsers(e echo.Context) error {
	param := dto.UserFilter{}
	if err := e.Bind(&param); err != nil {
		log.Error().Err(err).Str("component", "FilterUsers").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	users, err := c.service.FilterUsers(e.Request().Context(), param)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, users)
}

// GetUserByID godoc
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(e echo.Context) error {
	id := e.Param("id")

	user, err := c.service.GetUserByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Overwrite user fields
// @Description Responds with the raw store update result, not the document.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UserRequest true "Fields to set"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(e echo.Context) error {
	id := e.Param("id")

	payload := dto.UserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	result, err := c.service.UpdateUser(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, result)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Hard delete; responds with the raw store delete result.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(e echo.Context) error {
	id := e.Param("id")

	result, err := c.service.DeleteUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, result)
}
