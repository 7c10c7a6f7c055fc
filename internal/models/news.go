package models

import "time"

type News struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Excerpt     string     `gorm:"size:500" json:"excerpt"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Category    string     `gorm:"size:100;index" json:"category"`
	ImageURL    string     `gorm:"size:512" json:"imageUrl"`
	Author      string     `gorm:"size:100" json:"author"`
	ReadTime    string     `gorm:"size:50" json:"readTime"`
	IsPublished bool       `gorm:"not null;index" json:"isPublished"`
	PublishedAt *time.Time `gorm:"index" json:"publishedAt"`
	ViewCount   int64      `gorm:"not null" json:"viewCount"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (News) TableName() string { return "news" }
