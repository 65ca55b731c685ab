package models

import "time"

// Review is a visitor-submitted testimonial. Tour is the package or tour name
// as free text, not a foreign key.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:255" json:"name"`
	Country string `gorm:"size:100" json:"country"`
	Tour    string `gorm:"size:255" json:"tour"`
	Comment string `gorm:"type:text" json:"comment"`
	Rating  int    `json:"rating"`

	// Submission day, YYYY-MM-DD.
	Date   string  `gorm:"size:32" json:"date"`
	Avatar *string `gorm:"size:512" json:"avatar"`

	Approved bool `gorm:"index" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}
