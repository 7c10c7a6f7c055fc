package models

import "time"

// ActivityLog records an admin mutation for the dashboard feed.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Operator  string    `gorm:"size:100;not null" json:"operator"`
	Action    string    `gorm:"size:50;not null" json:"action"`
	Target    string    `gorm:"size:255" json:"target"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index" json:"time"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
