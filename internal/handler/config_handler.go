package handler

import (
	"net/http"

	"portal/internal/domain"
	"portal/internal/middleware"
	"portal/internal/models"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	svc      *service.ConfigService
	activity *service.ActivityService
}

func NewConfigHandler(svc *service.ConfigService, activity *service.ActivityService) *ConfigHandler {
	return &ConfigHandler{svc: svc, activity: activity}
}

type ConfigRequest struct {
	ConfigKey   string `json:"configKey" binding:"required,max=100"`
	ConfigValue string `json:"configValue"`
	Description string `json:"description" binding:"max=255"`
}

// ConfigValueRequest is the upsert body; a missing description keeps the
// stored one.
type ConfigValueRequest struct {
	ConfigValue string  `json:"configValue"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

func (r *ConfigRequest) model() *models.SystemConfig {
	return &models.SystemConfig{ConfigKey: r.ConfigKey, ConfigValue: r.ConfigValue, Description: r.Description}
}

func (h *ConfigHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ConfigHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cfg, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *ConfigHandler) GetByKey(c *gin.Context) {
	cfg, err := h.svc.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *ConfigHandler) Upsert(c *gin.Context) {
	var req ConfigValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	key := c.Param("key")
	cfg, err := h.svc.SaveOrUpdate(c.Request.Context(), key, req.ConfigValue, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionUpsert, "config: "+key)
	c.JSON(http.StatusOK, cfg)
}

func (h *ConfigHandler) Create(c *gin.Context) {
	var req ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cfg, err := h.svc.Create(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionCreate, "config: "+cfg.ConfigKey)
	c.JSON(http.StatusCreated, cfg)
}

func (h *ConfigHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cfg, err := h.svc.Update(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionUpdate, "config: "+cfg.ConfigKey)
	c.JSON(http.StatusOK, cfg)
}

func (h *ConfigHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionDelete, "config #"+c.Param("id"))
	deleted(c, "config")
}

func (h *ConfigHandler) DeleteByKey(c *gin.Context) {
	key := c.Param("key")
	if err := h.svc.DeleteByKey(c.Request.Context(), key); err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionDelete, "config: "+key)
	deleted(c, "config")
}
