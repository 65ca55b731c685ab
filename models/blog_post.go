package models

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPost content holds paragraphs separated by blank lines; the frontend
// splits on the double newline when rendering.
type BlogPost struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:255" json:"title"`
	Excerpt string `gorm:"type:text" json:"excerpt"`
	Content string `gorm:"type:longtext" json:"content"`
	Image   string `gorm:"size:512" json:"image"`
	Author  string `gorm:"size:255" json:"author"`

	Category string                      `gorm:"size:100;index" json:"category"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`

	Featured  bool `json:"featured"`
	Published bool `gorm:"index" json:"published"`

	ReadTime string `gorm:"size:50;column:read_time" json:"read_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
