package service

import (
	"context"
	"strings"

	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"
)

// MessageStats backs the inbox badge counters.
type MessageStats struct {
	UnreadCount    int64 `json:"unreadCount"`
	UnrepliedCount int64 `json:"unrepliedCount"`
	TotalCount     int64 `json:"totalCount"`
}

type MessageService struct {
	repo *repository.MessageRepository
}

func NewMessageService(repo *repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Submit stores a visitor enquiry. Workflow fields supplied by the caller are
// ignored: every new message starts unread and unreplied.
func (s *MessageService) Submit(ctx context.Context, in *models.Message) (*models.Message, error) {
	if blank(in.Name) {
		return nil, domain.NewValidation("name is required")
	}
	if blank(in.Email) {
		return nil, domain.NewValidation("email is required")
	}
	if blank(in.Content) {
		return nil, domain.NewValidation("content is required")
	}
	t := now()
	m := models.Message{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     in.Phone,
		Company:   in.Company,
		Subject:   in.Subject,
		Content:   in.Content,
		CreatedAt: t,
		UpdatedAt: t,
	}
	if blank(m.Subject) {
		m.Subject = domain.DefaultMessageSubject
	}
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MessageService) Get(ctx context.Context, id uint) (*models.Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MessageService) List(ctx context.Context, f repository.MessageFilter, req repository.PageRequest) (*repository.Page[models.Message], error) {
	return s.repo.List(ctx, f, req)
}

func (s *MessageService) MarkAsRead(ctx context.Context, id uint) (*models.Message, error) {
	if err := s.repo.MarkRead(ctx, id, now()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Reply records the admin's answer. The reply time is clamped so it never
// precedes the message itself.
func (s *MessageService) Reply(ctx context.Context, id uint, content string) (*models.Message, error) {
	if blank(content) {
		return nil, domain.NewValidation("reply content is required")
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	at := now()
	if at.Before(m.CreatedAt) {
		at = m.CreatedAt
	}
	if err := s.repo.Reply(ctx, id, content, at); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *MessageService) Stats(ctx context.Context) (*MessageStats, error) {
	var st MessageStats
	var err error
	if st.UnreadCount, err = s.repo.CountUnread(ctx); err != nil {
		return nil, err
	}
	if st.UnrepliedCount, err = s.repo.CountUnreplied(ctx); err != nil {
		return nil, err
	}
	if st.TotalCount, err = s.repo.Count(ctx); err != nil {
		return nil, err
	}
	return &st, nil
}
