package models

import (
	"time"

	"gorm.io/datatypes"
)

type Activity struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:255" json:"name"`
	Location string `gorm:"size:255" json:"location"`
	Category string `gorm:"size:100;index" json:"category"`
	Duration string `gorm:"size:100" json:"duration"`

	Price   int     `json:"price"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Image   string  `gorm:"size:512" json:"image"`

	VideoBackground bool `gorm:"column:video_background" json:"video_background"`

	Description string                      `gorm:"type:text" json:"description"`
	Highlights  datatypes.JSONSlice[string] `json:"highlights"`

	BestTime   string `gorm:"size:100;column:best_time" json:"best_time"`
	Difficulty string `gorm:"size:50" json:"difficulty"`
	GroupSize  string `gorm:"size:100;column:group_size" json:"group_size"`

	Published bool `gorm:"index" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Activity) TableName() string {
	return "activities"
}
