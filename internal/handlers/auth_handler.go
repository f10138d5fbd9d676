package handlers

import (
	"net/http"

	"marketplace_backend/internal/services"
	"marketplace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService    services.AuthService
	sessionService services.SessionService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, sessionService services.SessionService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    base,
		authService:    authService,
		sessionService: sessionService,
	}
}

// RegisterRoutes wires the auth surface of the /user group. Register, login
// and the logout pair stay open; admin creation sits behind the auth gate.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.POST("/logout-all", h.LogoutAll)
	rg.POST("/", authMW, h.RegisterAdmin)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// RegisterAdmin only accepts the literal "admin" role in the request body.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.RegisterAdmin(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout revokes the single session holding the refresh token. A token the
// store never saw still yields a success response.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.sessionService.RevokeByToken(db, req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "Session deleted successfully")
}

func (h *AuthHandler) LogoutAll(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.sessionService.RevokeAllByToken(db, req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "All sessions deleted successfully")
}
