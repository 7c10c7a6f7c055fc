package handler

import (
	"net/http"

	"portal/internal/domain"
	"portal/internal/middleware"
	"portal/internal/service"
	"portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if domain.KindOf(err) == domain.KindAuthentication {
			logger.FromGin(c).Info("login rejected", zap.String("username", req.Username), zap.String("ip", c.ClientIP()))
		}
		respondError(c, err)
		return
	}
	logger.FromGin(c).Info("login", zap.String("username", res.Username), zap.String("ip", c.ClientIP()))
	c.JSON(http.StatusOK, res)
}

// Logout is stateless; the client drops its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		respondError(c, domain.NewAuthentication("authentication required"))
		return
	}
	c.JSON(http.StatusOK, u)
}
