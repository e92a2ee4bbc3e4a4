// payments.go - Repository for the payment collection (append-only)

package database // Declares the package name

import ( // Import required packages
	"tool-express-backend/models" // Payment model

	"gorm.io/gorm" // GORM ORM
)

type PaymentRepo struct { // PaymentRepo wraps the payment log operations
	db *gorm.DB // Injected connection handle
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepo { // Constructor
	return &PaymentRepo{db: db}
}

// List returns all recorded payments, newest first.
func (r *PaymentRepo) List() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("id DESC").Find(&payments).Error
	return payments, err
}

// Insert appends one payment record. There is no update or delete: the log
// only ever grows.
func (r *PaymentRepo) Insert(payment *models.Payment) (InsertResult, error) {
	if err := r.db.Create(payment).Error; err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: payment.ID}, nil
}
