// review.go - Defines the Review model for the database

package models

type Review struct {
	ID          uint   `gorm:"primaryKey" json:"id"` // Unique review ID
	AuthorEmail string `gorm:"not null" json:"authorEmail"`
	Text        string `gorm:"not null" json:"text"`
	Rating      int    `json:"rating,omitempty"` // 1-5, optional
}
