package models

import "time"

// Message is a visitor enquiry left through the contact form.
// Lifecycle: new (unread, unreplied) -> read -> replied (implies read).
type Message struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:255;not null" json:"email"`
	Phone        string     `gorm:"size:20" json:"phone"`
	Company      string     `gorm:"size:100" json:"company"`
	Subject      string     `gorm:"size:200" json:"subject"`
	Content      string     `gorm:"size:2000;not null" json:"content"`
	IsRead       bool       `gorm:"not null;index" json:"isRead"`
	IsReplied    bool       `gorm:"not null;index" json:"isReplied"`
	ReplyContent string     `gorm:"size:2000" json:"replyContent"`
	ReplyTime    *time.Time `json:"replyTime"`
	CreatedAt    time.Time  `gorm:"autoCreateTime:false;index" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Message) TableName() string { return "messages" }
