package handler

import (
	"net/http"

	"portal/internal/domain"
	"portal/internal/middleware"
	"portal/internal/models"
	"portal/internal/repository"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc      *service.MessageService
	activity *service.ActivityService
}

func NewMessageHandler(svc *service.MessageService, activity *service.ActivityService) *MessageHandler {
	return &MessageHandler{svc: svc, activity: activity}
}

type MessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"max=20"`
	Company string `json:"company" binding:"max=100"`
	Subject string `json:"subject" binding:"max=200"`
	Content string `json:"content" binding:"required,max=2000"`
}

type ReplyRequest struct {
	ReplyContent string `json:"replyContent" binding:"required,max=2000"`
}

// Submit is the public contact form.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	m, err := h.svc.Submit(c.Request.Context(), &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MessageHandler) List(c *gin.Context) {
	isRead, err := optionalBool(c, "isRead")
	if err != nil {
		respondError(c, err)
		return
	}
	isReplied, err := optionalBool(c, "isReplied")
	if err != nil {
		respondError(c, err)
		return
	}
	filter := repository.MessageFilter{IsRead: isRead, IsReplied: isReplied}
	page, err := h.svc.List(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *MessageHandler) Stats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.svc.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionMarkRead, "message from "+m.Name)
	c.JSON(http.StatusOK, m)
}

func (h *MessageHandler) Reply(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	m, err := h.svc.Reply(c.Request.Context(), id, req.ReplyContent)
	if err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionReply, "message from "+m.Name)
	c.JSON(http.StatusOK, m)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.activity.Record(c.Request.Context(), middleware.Operator(c), domain.ActionDelete, "message #"+c.Param("id"))
	deleted(c, "message")
}
