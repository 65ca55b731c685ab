package models

import (
	"time"

	"gorm.io/datatypes"
)

type Destination struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:255" json:"name"`
	Location    string  `gorm:"size:255" json:"location"`
	Category    string  `gorm:"size:100;index" json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"size:512" json:"image"`

	Highlights datatypes.JSONSlice[string] `json:"highlights"`

	Difficulty string `gorm:"size:50" json:"difficulty"`
	BestTime   string `gorm:"size:100;column:best_time" json:"best_time"`
	Duration   string `gorm:"size:100" json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
