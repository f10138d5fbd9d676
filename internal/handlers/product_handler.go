package handlers

import (
	"net/http"

	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/middleware"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/services"
	"marketplace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		productService: productService,
	}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.Use(authMW)
	rg.GET("/", h.List)
	rg.POST("/", h.Create)
	rg.GET("/:product_id", h.GetByID)
	rg.PUT("/:product_id", h.Update)
	rg.DELETE("/:product_id", h.Delete)
}

// List returns live products, optionally filtered by category_id.
func (h *ProductHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	products, err := h.productService.List(db, c.Query("category_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	if middleware.GetRole(c) != models.UserRoleSeller {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Access forbidden: Only sellers can create products."))
		return
	}

	if middleware.GetUserID(c) == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("User ID is required"))
		return
	}

	var req dto.CreateProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	product, err := h.productService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	product, err := h.productService.GetByID(db, c.Param("product_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	product, err := h.productService.Update(db, c.Param("product_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.productService.Delete(db, c.Param("product_id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
