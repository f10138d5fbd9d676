package handlers

import (
	"net/http"

	"marketplace_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	*BaseHandler
	sessionService services.SessionService
}

func NewSessionHandler(base *BaseHandler, sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    base,
		sessionService: sessionService,
	}
}

func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/session", authMW, h.List)
}

// List returns every session, or one user's sessions when user_id is given.
func (h *SessionHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	sessions, err := h.sessionService.List(db, c.Query("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}
