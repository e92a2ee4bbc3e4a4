// order.go - Defines the Order model for the database

package models // Declares the package name

type Order struct { // Order struct represents a placed order
	ID            uint   `gorm:"primaryKey" json:"id"`   // Unique order ID (primary key)
	Email         string `gorm:"not null" json:"email"`  // Owner's email (ownership key)
	ToolID        uint   `gorm:"not null" json:"toolsId"`// References exactly one Tool by id
	Quantity      int    `json:"quantity"`               // Tool stock observed at placement time
	OrderQuantity int    `json:"orderQuantity"`          // Units ordered
	Paid          bool   `json:"paid"`                   // Set true when payment completes
	TransactionID string `json:"transactionId,omitempty"`// Payment provider transaction id
}
