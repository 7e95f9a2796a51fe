package handlers

import (
	"net/http"

	"hrm-api/internal/services"
	"hrm-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for user and session operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email and password for a bearer token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Login credentials"
// @Success      200 {object}  dto.LoginResponse
// @Failure      400 {object}  dto.ErrorResponse "Validation failed"
// @Failure      401 {object}  dto.ErrorResponse "Invalid email or password"
// @Failure      429 {object}  dto.ErrorResponse "Too many attempts"
// @Router       /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	res, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt})
}

// Profile godoc
// @Summary      Current user
// @Description  Returns the claims of the caller's token.
// @Tags         users
// @Produce      json
// @Success      200 {object}  dto.ProfileResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Router       /user/profile [get]
// @Security     BearerAuth
func (h *UserHandler) Profile(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		UserID:    session.UserID,
		Email:     session.Email,
		Role:      session.Role,
		Name:      session.Name,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the caller's token.
// @Tags         users
// @Produce      json
// @Success      200 {object}  dto.MessageResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Router       /user/logout [post]
// @Security     BearerAuth
func (h *UserHandler) Logout(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.service.Logout(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates a staff account. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body      dto.CreateUserRequest true  "User details"
// @Success      201 {object}  dto.DataResponse[dto.UserResponse]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse "User already exists"
// @Router       /user/create-user [post]
// @Security     BearerAuth
func (h *UserHandler) CreateUser(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	user, err := h.service.Create(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse[dto.UserResponse]{
		Message: "User created successfully",
		Data:    MapUserModelToUserResponse(user),
	})
}

// GetUsers godoc
// @Summary      List users
// @Description  Pages through users, optionally searching by name.
// @Tags         users
// @Produce      json
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(10)
// @Param        search query string false "Name substring"
// @Success      200 {object}  dto.ListResponse[dto.UserResponse]
// @Failure      400 {object}  dto.ErrorResponse
// @Router       /user/get-user [get]
// @Security     BearerAuth
func (h *UserHandler) GetUsers(c *gin.Context) {
	var q dto.PaginationQuery
	if !bindQuery(c, h.validator, &q) {
		return
	}
	page, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(page, MapUserModelToUserResponse))
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      int true  "User ID"
// @Param        user body      dto.UpdateUserRequest true  "User details"
// @Success      200 {object}  dto.DataResponse[dto.UserResponse]
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      409 {object}  dto.ErrorResponse "Email already exists"
// @Router       /user/update-user/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id
	user, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.UserResponse]{
		Message: "User updated successfully",
		Data:    MapUserModelToUserResponse(user),
	})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Admin only. Administrators cannot delete themselves.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /user/delete-user/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteUser(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := bindID(c, h.validator)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), session, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
