package handler

import (
	"net/http"
	"time"

	"portal/internal/domain"
	"portal/internal/middleware"
	"portal/internal/models"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	svc      *service.NewsService
	activity *service.ActivityService
}

func NewNewsHandler(svc *service.NewsService, activity *service.ActivityService) *NewsHandler {
	return &NewsHandler{svc: svc, activity: activity}
}

type NewsRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Excerpt     string     `json:"excerpt" binding:"max=500"`
	Content     string     `json:"content" binding:"required"`
	Category    string     `json:"category" binding:"max=100"`
	ImageURL    string     `json:"imageUrl" binding:"max=512"`
	Author      string     `json:"author" binding:"max=100"`
	ReadTime    string     `json:"readTime" binding:"max=50"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (r *NewsRequest) model() *models.News {
	return &models.News{
		Title:       r.Title,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Author:      r.Author,
		ReadTime:    r.ReadTime,
		IsPublished: r.IsPublished,
		PublishedAt: r.PublishedAt,
	}
}

func (h *NewsHandler) Published(c *gin.Context) {
	page, err := h.svc.Published(c.Request.Context(), c.Query("category"), parsePageRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *NewsHandler) ByCategory(c *gin.Context) {
	page, err := h.svc.Published(c.Request.Context(), c.Param("category"), parsePageRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *NewsHandler) Latest(c *gin.Context) {
	list, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NewsHandler) Categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Read serves a published article and counts the view.
func (h *NewsHandler) Read(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.svc.Read(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NewsHandler) Page(c *gin.Context) {
	page, err := h.svc.Page(c.Request.Context(), parsePageRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	n, err := h.svc.Create(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionCreate, "news: "+n.Title)
	c.JSON(http.StatusCreated, n)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	n, err := h.svc.Update(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionUpdate, "news: "+n.Title)
	c.JSON(http.StatusOK, n)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionDelete, "news #"+c.Param("id"))
	deleted(c, "news")
}
