// payment.go - Defines the Payment model for the database
// Payments are an append-only log: one row per successful charge,
// never updated or deleted through this API.

package models // Declares the package name

type Payment struct { // Payment struct represents one completed charge
	ID            uint    `gorm:"primaryKey" json:"id"`          // Unique payment ID (primary key)
	OrderID       uint    `gorm:"not null" json:"orderId"`       // Order this payment settles
	Email         string  `json:"email"`                         // Payer's email
	TransactionID string  `gorm:"not null" json:"transactionId"` // Payment provider transaction id
	Amount        float64 `json:"amount"`                        // Amount charged
}
