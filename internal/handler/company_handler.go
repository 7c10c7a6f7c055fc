package handler

import (
	"net/http"

	"portal/internal/domain"
	"portal/internal/middleware"
	"portal/internal/models"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	svc      *service.CompanyService
	activity *service.ActivityService
}

func NewCompanyHandler(svc *service.CompanyService, activity *service.ActivityService) *CompanyHandler {
	return &CompanyHandler{svc: svc, activity: activity}
}

type CompanyRequest struct {
	Name            string `json:"name" binding:"required,max=255"`
	Description     string `json:"description" binding:"required,max=1000"`
	PhoneNumber     string `json:"phoneNumber" binding:"max=50"`
	Email           string `json:"email" binding:"omitempty,email,max=100"`
	Address         string `json:"address" binding:"max=255"`
	BusinessScope   string `json:"businessScope" binding:"max=500"`
	EstablishedYear *int   `json:"establishedYear"`
	EmployeeCount   *int   `json:"employeeCount" binding:"omitempty,gte=0"`
	IsPrimary       bool   `json:"isPrimary"`
}

func (r *CompanyRequest) model() *models.CompanyInfo {
	return &models.CompanyInfo{
		Name:            r.Name,
		Description:     r.Description,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		Address:         r.Address,
		BusinessScope:   r.BusinessScope,
		EstablishedYear: r.EstablishedYear,
		EmployeeCount:   r.EmployeeCount,
		IsPrimary:       r.IsPrimary,
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CompanyHandler) Main(c *gin.Context) {
	co, err := h.svc.Main(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	co, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	co, err := h.svc.Create(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionCreate, "company: "+co.Name)
	c.JSON(http.StatusCreated, co)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	co, err := h.svc.Update(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionUpdate, "company: "+co.Name)
	c.JSON(http.StatusOK, co)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionDelete, "company #"+c.Param("id"))
	deleted(c, "company")
}
