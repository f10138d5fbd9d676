package handlers

import (
	"net/http"

	"marketplace_backend/internal/models"
	"marketplace_backend/internal/services"
	"marketplace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/", authMW, h.List)
	rg.GET("/:user_id", authMW, h.GetByID)
	rg.PUT("/:user_id", authMW, h.Update)
	rg.DELETE("/:user_id", authMW, h.Delete)
}

// List returns all users, narrowed by the optional role query parameter.
func (h *UserHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.userService.ListByRole(db, models.UserRole(c.Query("role")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetByID(db, c.Param("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.Update(db, c.Param("user_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.userService.Delete(db, c.Param("user_id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
