package repository

import (
	"context"
	"time"

	"portal/internal/models"

	"gorm.io/gorm"
)

const whatMessage = "message"

var messageSort = commonSort.with(sortColumns{
	"name":      "name",
	"email":     "email",
	"isRead":    "is_read",
	"isReplied": "is_replied",
	"replyTime": "reply_time",
})

// MessageFilter narrows the admin inbox. Nil fields do not filter.
type MessageFilter struct {
	IsRead    *bool
	IsReplied *bool
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	return translate(r.db.WithContext(ctx).Create(m).Error, whatMessage)
}

func (r *MessageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return getByID[models.Message](ctx, r.db, id, whatMessage)
}

func (r *MessageRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Message](ctx, r.db, id, whatMessage)
}

func (r *MessageRepository) List(ctx context.Context, f MessageFilter, req PageRequest) (*Page[models.Message], error) {
	page, err := findPage[models.Message](ctx, r.db, req, messageSort, desc("created_at"), func(q *gorm.DB) *gorm.DB {
		if f.IsRead != nil {
			q = q.Where("is_read = ?", *f.IsRead)
		}
		if f.IsReplied != nil {
			q = q.Where("is_replied = ?", *f.IsReplied)
		}
		return q
	})
	return page, translate(err, whatMessage)
}

func (r *MessageRepository) MarkRead(ctx context.Context, id uint, at time.Time) error {
	return r.update(ctx, id, map[string]interface{}{
		"is_read":    true,
		"updated_at": at,
	})
}

// Reply stores the reply text and marks the message both replied and read.
func (r *MessageRepository) Reply(ctx context.Context, id uint, content string, at time.Time) error {
	return r.update(ctx, id, map[string]interface{}{
		"reply_content": content,
		"reply_time":    at,
		"is_replied":    true,
		"is_read":       true,
		"updated_at":    at,
	})
}

func (r *MessageRepository) update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error, whatMessage)
	}
	if res.RowsAffected == 0 {
		return existsAfterNoop[models.Message](ctx, r.db, id, whatMessage)
	}
	return nil
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	n, err := countWhere[models.Message](ctx, r.db, nil)
	return n, translate(err, whatMessage)
}

func (r *MessageRepository) CountUnread(ctx context.Context) (int64, error) {
	n, err := countWhere[models.Message](ctx, r.db, "is_read = ?", false)
	return n, translate(err, whatMessage)
}

func (r *MessageRepository) CountUnreplied(ctx context.Context) (int64, error) {
	n, err := countWhere[models.Message](ctx, r.db, "is_replied = ?", false)
	return n, translate(err, whatMessage)
}
