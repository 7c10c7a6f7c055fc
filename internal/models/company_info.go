package models

import "time"

// CompanyInfo is the public company profile. Exactly one row is expected to
// carry IsPrimary; it is what the home page renders.
type CompanyInfo struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     string    `gorm:"size:1000;not null" json:"description"`
	PhoneNumber     string    `gorm:"size:50" json:"phoneNumber"`
	Email           string    `gorm:"size:100" json:"email"`
	Address         string    `gorm:"size:255" json:"address"`
	BusinessScope   string    `gorm:"size:500" json:"businessScope"`
	EstablishedYear *int      `json:"establishedYear"`
	EmployeeCount   *int      `json:"employeeCount"`
	IsPrimary       bool      `gorm:"not null;index" json:"isPrimary"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (CompanyInfo) TableName() string { return "company_info" }
