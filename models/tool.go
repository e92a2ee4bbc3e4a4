// tool.go - Defines the Tool (product) model for the database

package models // Declares the package name

type Tool struct { // Tool struct represents a product in the catalog
	ID          uint    `gorm:"primaryKey" json:"id"`      // Unique tool ID (primary key)
	Name        string  `gorm:"not null" json:"name"`      // Tool name (cannot be null)
	Quantity    int     `json:"quantity"`                  // Units in stock (never negative)
	Price       float64 `json:"price"`                     // Unit price
	Description string  `json:"description"`               // Free-form description
	ImageURL    string  `json:"imageUrl,omitempty"`        // Product image (optional)
}
