package models

import (
	"strings"
	"time"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Price       float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl"`
	Features    string    `gorm:"size:1000" json:"features"` // comma-separated
	IsActive    bool      `gorm:"not null;index" json:"isActive"`
	SortOrder   int       `gorm:"not null;index" json:"sortOrder"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// FeatureList splits the comma-separated feature column.
func (p *Product) FeatureList() []string {
	var out []string
	for _, f := range strings.Split(p.Features, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
