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

type MarketHandler struct {
	*BaseHandler
	marketService services.MarketService
}

func NewMarketHandler(base *BaseHandler, marketService services.MarketService) *MarketHandler {
	return &MarketHandler{
		BaseHandler:   base,
		marketService: marketService,
	}
}

func (h *MarketHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.Use(authMW)
	rg.GET("/", h.List)
	rg.POST("/", h.Create)
	rg.GET("/:market_id", h.GetByID)
	rg.PUT("/:market_id", h.Update)
	rg.DELETE("/:market_id", h.Delete)
}

// List is restricted to admins.
func (h *MarketHandler) List(c *gin.Context) {
	if middleware.GetRole(c) != models.UserRoleAdmin {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Access forbidden: Only admins can access markets."))
		return
	}

	db := h.GetDB(c)

	markets, err := h.marketService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, markets)
}

// Create opens a storefront owned by the calling seller.
func (h *MarketHandler) Create(c *gin.Context) {
	if middleware.GetRole(c) != models.UserRoleSeller {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Access forbidden: Only sellers can create markets."))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("User ID is required"))
		return
	}

	var req dto.CreateMarketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	market, err := h.marketService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, market)
}

func (h *MarketHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	market, err := h.marketService.GetByID(db, c.Param("market_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, market)
}

func (h *MarketHandler) Update(c *gin.Context) {
	var req dto.UpdateMarketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	market, err := h.marketService.Update(db, c.Param("market_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, market)
}

func (h *MarketHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.marketService.Delete(db, c.Param("market_id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Market deleted successfully"})
}
