// orders.go - Repository for the orders collection
// The two multi-write sequences of the API (place order, complete payment)
// run inside explicit transactions. Order placement uses a conditional
// decrement so two concurrent orders can never both drain the same stock.

package database // Declares the package name

import ( // Import required packages
	"tool-express-backend/models" // Order, Tool and Payment models

	"gorm.io/gorm" // GORM ORM
)

type OrderRepo struct { // OrderRepo wraps all order store operations
	db *gorm.DB // Injected connection handle
}

func NewOrderRepo(db *gorm.DB) *OrderRepo { // Constructor
	return &OrderRepo{db: db}
}

// List returns all orders, newest first.
func (r *OrderRepo) List() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("id DESC").Find(&orders).Error
	return orders, err
}

// Get looks up one order by id. Returns gorm.ErrRecordNotFound on a miss.
func (r *OrderRepo) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByEmail returns the orders owned by the given email, newest first.
func (r *OrderRepo) ListByEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("email = ?", email).Order("id DESC").Find(&orders).Error
	return orders, err
}

// Place atomically decrements the referenced tool's stock and inserts the
// order. The decrement carries a "quantity >= orderQuantity" filter: if it
// matches no row the stock is insufficient (or the tool is missing) and the
// whole transaction rolls back with ErrInsufficientStock.
func (r *OrderRepo) Place(order *models.Order) (InsertResult, error) {
	var result InsertResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// STEP 1: Conditional decrement (the compare-and-set guard)
		dec := tx.Model(&models.Tool{}).
			Where("id = ? AND quantity >= ?", order.ToolID, order.OrderQuantity).
			Update("quantity", gorm.Expr("quantity - ?", order.OrderQuantity))
		if dec.Error != nil {
			return dec.Error
		}
		if dec.RowsAffected == 0 { // Nothing matched: not enough stock
			return ErrInsufficientStock
		}

		// STEP 2: Record the remaining stock on the order, then insert it
		var tool models.Tool
		if err := tx.First(&tool, order.ToolID).Error; err != nil {
			return err
		}
		order.Quantity = tool.Quantity
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		result.InsertedID = order.ID
		return nil
	})
	return result, err
}

// Upsert updates the order with the given id, or creates one with that id
// if none matches. Paid and TransactionID are only touched by CompletePayment.
func (r *OrderRepo) Upsert(id uint, order *models.Order) (UpdateResult, error) {
	var result UpdateResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
			"email":          order.Email,
			"tool_id":        order.ToolID,
			"quantity":       order.Quantity,
			"order_quantity": order.OrderQuantity,
		})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			order.ID = id
			if err := tx.Create(order).Error; err != nil {
				return err
			}
			result.UpsertedCount = 1
			return nil
		}
		result.MatchedCount = update.RowsAffected
		result.ModifiedCount = update.RowsAffected
		return nil
	})
	return result, err
}

// CompletePayment appends the payment record and marks the order paid with
// the provider's transaction id, in one transaction. A payment row only ever
// settles an existing order: an unknown id rolls the insert back and returns
// gorm.ErrRecordNotFound.
func (r *OrderRepo) CompletePayment(id uint, payment *models.Payment) (UpdateResult, error) {
	var result UpdateResult
	payment.OrderID = id
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		update := tx.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
			"paid":           true,
			"transaction_id": payment.TransactionID,
		})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 { // No such order: undo the payment insert
			return gorm.ErrRecordNotFound
		}
		result.MatchedCount = update.RowsAffected
		result.ModifiedCount = update.RowsAffected
		return nil
	})
	return result, err
}

// Delete removes the order with the given id. A missing id deletes zero rows.
func (r *OrderRepo) Delete(id uint) (DeleteResult, error) {
	del := r.db.Delete(&models.Order{}, id)
	if del.Error != nil {
		return DeleteResult{}, del.Error
	}
	return DeleteResult{DeletedCount: del.RowsAffected}, nil
}
