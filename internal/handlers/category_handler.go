package handlers

import (
	"net/http"

	"marketplace_backend/internal/services"
	"marketplace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.Use(authMW)
	rg.GET("/", h.List)
	rg.POST("/", h.Create)
	rg.GET("/:category_id", h.GetByID)
	rg.PUT("/:category_id", h.Update)
	rg.DELETE("/:category_id", h.Delete)
}

func (h *CategoryHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	categories, err := h.categoryService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	category, err := h.categoryService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	category, err := h.categoryService.GetByID(db, c.Param("category_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	category, err := h.categoryService.Update(db, c.Param("category_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete soft-deletes: the row keeps its deletion timestamp and drops out of
// listings.
func (h *CategoryHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.categoryService.Delete(db, c.Param("category_id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
