package handler

import (
	"net/http"

	"portal/internal/domain"
	"portal/internal/middleware"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminUserHandler struct {
	svc      *service.AdminUserService
	auth     *service.AuthService
	activity *service.ActivityService
}

func NewAdminUserHandler(svc *service.AdminUserService, auth *service.AuthService, activity *service.ActivityService) *AdminUserHandler {
	return &AdminUserHandler{svc: svc, auth: auth, activity: activity}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	FullName string `json:"fullName" binding:"max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMIN"`
	Enabled  *bool  `json:"enabled"`
}

// UpdateUserRequest leaves the password unchanged when it is blank.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"omitempty,min=6,max=72"`
	FullName string `json:"fullName" binding:"max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMIN"`
	Enabled  *bool  `json:"enabled"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (h *AdminUserHandler) List(c *gin.Context) {
	page, err := h.svc.Page(c.Request.Context(), parsePageRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.svc.Create(c.Request.Context(), service.AdminUserInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionCreate, "user: "+u.Username)
	c.JSON(http.StatusCreated, u)
}

func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, service.AdminUserInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionUpdate, "user: "+u.Username)
	c.JSON(http.StatusOK, u)
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionDelete, "user #"+c.Param("id"))
	deleted(c, "user")
}

func (h *AdminUserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.auth.ChangePassword(c.Request.Context(), id, req.Password); err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionChangePassword, "user #"+c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
