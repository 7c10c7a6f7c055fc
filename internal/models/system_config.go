package models

import "time"

// SystemConfig stores admin-configurable key/value settings.
type SystemConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ConfigKey   string    `gorm:"column:config_key;uniqueIndex;size:100;not null" json:"configKey"`
	ConfigValue string    `gorm:"column:config_value;type:text" json:"configValue"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (SystemConfig) TableName() string { return "system_configs" }
