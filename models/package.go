package models

import (
	"time"

	"gorm.io/datatypes"
)

// Package is a bookable tour package. Only published packages appear on the
// public site; the admin dashboard lists all of them.
type Package struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title     string `gorm:"size:255" json:"title"`
	Duration  string `gorm:"size:100" json:"duration"`
	GroupSize string `gorm:"size:100;column:group_size" json:"group_size"`

	Price         int  `json:"price"`
	OriginalPrice *int `gorm:"column:original_price" json:"original_price,omitempty"`

	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Image   string  `gorm:"size:512" json:"image"`

	Category   string `gorm:"size:100;index" json:"category"`
	Difficulty string `gorm:"size:50" json:"difficulty"`

	Highlights datatypes.JSONSlice[string] `json:"highlights"`
	Includes   datatypes.JSONSlice[string] `json:"includes"`
	Itinerary  datatypes.JSONSlice[string] `json:"itinerary"`

	Featured  bool `json:"featured"`
	Published bool `gorm:"index" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Package) TableName() string {
	return "packages"
}
