// order_test.go - Tests for order placement, payment completion and the
// conditional stock decrement that prevents the lost-update race.

package handlers

import (
	"encoding/json" // For decoding responses
	"sync"          // Concurrent placement test
	"testing"       // Go's testing package

	"tool-express-backend/database" // Result types
	"tool-express-backend/models"   // Order, Tool and Payment models

	"github.com/stretchr/testify/assert" // For assertions
)

// TestPlaceOrderDecrementsStock: Tool{quantity:10} + orderQuantity=3 ends
// with Tool{quantity:7} and a new order carrying orderQuantity=3
func TestPlaceOrderDecrementsStock(t *testing.T) {
	db := setupTestDB()
	userToken := createStandardUser(db)
	router := setupRouter(db, &fakeIntents{})

	tool := models.Tool{Name: "Hammer", Quantity: 10, Price: 19.99}
	db.Create(&tool)

	input := OrderInput{Email: "user@test.com", ToolID: tool.ID, OrderQuantity: 3}
	w := doJSON(router, "POST", "/payOrders", input, userToken)
	assert.Equal(t, 200, w.Code)

	var insert database.InsertResult
	json.Unmarshal(w.Body.Bytes(), &insert)
	assert.NotZero(t, insert.InsertedID)

	// Stock went 10 -> 7
	var updated models.Tool
	db.First(&updated, tool.ID)
	assert.Equal(t, 7, updated.Quantity)

	// The order row exists with the requested quantity
	var order models.Order
	db.First(&order, insert.InsertedID)
	assert.Equal(t, 3, order.OrderQuantity)
	assert.Equal(t, "user@test.com", order.Email)
	assert.False(t, order.Paid)
}

// TestPlaceOrderInsufficientStock: the second of two 6-unit orders against a
// 10-unit tool is rejected with 409 and writes nothing
func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := setupTestDB()
	userToken := createStandardUser(db)
	router := setupRouter(db, &fakeIntents{})

	tool := models.Tool{Name: "Hammer", Quantity: 10, Price: 19.99}
	db.Create(&tool)

	input := OrderInput{Email: "user@test.com", ToolID: tool.ID, OrderQuantity: 6}
	w := doJSON(router, "POST", "/payOrders", input, userToken)
	assert.Equal(t, 200, w.Code) // First order fits: 10 -> 4

	w = doJSON(router, "POST", "/payOrders", input, userToken)
	assert.Equal(t, 409, w.Code) // 4 < 6: rejected, nothing written

	var updated models.Tool
	db.First(&updated, tool.ID)
	assert.Equal(t, 4, updated.Quantity) // Only one decrement applied

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count) // Only one order exists

	// An unknown tool behaves the same as empty stock
	w = doJSON(router, "POST", "/payOrders", OrderInput{Email: "user@test.com", ToolID: 999, OrderQuantity: 1}, userToken)
	assert.Equal(t, 409, w.Code)
}

// TestPlaceOrderConcurrent: two simultaneous 6-unit orders must not both
// drain the same 10-unit stock; at most one decrement lands
func TestPlaceOrderConcurrent(t *testing.T) {
	db := setupTestDB()
	userToken := createStandardUser(db)
	router := setupRouter(db, &fakeIntents{})

	tool := models.Tool{Name: "Hammer", Quantity: 10, Price: 19.99}
	db.Create(&tool)

	input := OrderInput{Email: "user@test.com", ToolID: tool.ID, OrderQuantity: 6}
	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = doJSON(router, "POST", "/payOrders", input, userToken).Code
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, code := range codes {
		if code == 200 {
			successes++
		}
	}
	assert.Equal(t, 1, successes) // Exactly one placement succeeded

	var updated models.Tool
	db.First(&updated, tool.ID)
	assert.Equal(t, 4, updated.Quantity) // Stock decremented once, never twice
}

// TestCompletePayment: PATCH appends a payment record and marks the order paid
func TestCompletePayment(t *testing.T) {
	db := setupTestDB()
	adminToken := createAdminUser(db)
	userToken := createStandardUser(db)
	router := setupRouter(db, &fakeIntents{})

	tool := models.Tool{Name: "Hammer", Quantity: 10, Price: 19.99}
	db.Create(&tool)
	w := doJSON(router, "POST", "/payOrders", OrderInput{Email: "user@test.com", ToolID: tool.ID, OrderQuantity: 2}, userToken)
	assert.Equal(t, 200, w.Code)

	pay := PaymentInput{TransactionID: "txn_123", Email: "user@test.com", Amount: 39.98}
	w = doJSON(router, "PATCH", "/orders/1", pay, userToken)
	assert.Equal(t, 200, w.Code)
	var result database.UpdateResult
	json.Unmarshal(w.Body.Bytes(), &result)
	assert.Equal(t, int64(1), result.MatchedCount)

	// The order is now paid with the provider's transaction id
	var order models.Order
	db.First(&order, 1)
	assert.True(t, order.Paid)
	assert.Equal(t, "txn_123", order.TransactionID)

	// The payment log grew by one append-only row
	var payment models.Payment
	db.First(&payment)
	assert.Equal(t, "txn_123", payment.TransactionID)
	assert.Equal(t, uint(1), payment.OrderID)

	// Admin sees it in the payment log listing
	w = doJSON(router, "GET", "/payments", nil, adminToken)
	assert.Equal(t, 200, w.Code)
	var payments []models.Payment
	json.Unmarshal(w.Body.Bytes(), &payments)
	assert.Len(t, payments, 1)
}

// TestOrderListingAndGuards covers the per-route guard assignments
func TestOrderListingAndGuards(t *testing.T) {
	db := setupTestDB()
	adminToken := createAdminUser(db)
	userToken := createStandardUser(db)
	router := setupRouter(db, &fakeIntents{})

	tool := models.Tool{Name: "Hammer", Quantity: 100, Price: 5}
	db.Create(&tool)
	for i := 0; i < 3; i++ { // Three orders by the same owner
		w := doJSON(router, "POST", "/payOrders", OrderInput{Email: "user@test.com", ToolID: tool.ID, OrderQuantity: 1}, userToken)
		assert.Equal(t, 200, w.Code)
	}

	// Admin order listing is newest first
	w := doJSON(router, "GET", "/orders", nil, adminToken)
	assert.Equal(t, 200, w.Code)
	var orders []models.Order
	json.Unmarshal(w.Body.Bytes(), &orders)
	assert.Len(t, orders, 3)
	assert.Equal(t, uint(3), orders[0].ID) // Newest first
	assert.Equal(t, uint(1), orders[2].ID)

	// Standard users cannot list all orders
	w = doJSON(router, "GET", "/orders", nil, userToken)
	assert.Equal(t, 403, w.Code)

	// Ownership listing by email is public
	w = doJSON(router, "GET", "/order/user@test.com", nil, "")
	assert.Equal(t, 200, w.Code)
	json.Unmarshal(w.Body.Bytes(), &orders)
	assert.Len(t, orders, 3)

	// Single order lookup is public, with 404 on a miss
	w = doJSON(router, "GET", "/orders/1", nil, "")
	assert.Equal(t, 200, w.Code)
	w = doJSON(router, "GET", "/orders/999", nil, "")
	assert.Equal(t, 404, w.Code)
}

// TestCompletePaymentMissingOrder: settling a nonexistent order is 404 and
// the payment insert rolls back; the append-only log never gains a row that
// settles nothing
func TestCompletePaymentMissingOrder(t *testing.T) {
	db := setupTestDB()
	userToken := createStandardUser(db)
	router := setupRouter(db, &fakeIntents{})

	pay := PaymentInput{TransactionID: "txn_ghost", Email: "user@test.com", Amount: 10}
	w := doJSON(router, "PATCH", "/orders/999", pay, userToken)
	assert.Equal(t, 404, w.Code)

	// The whole transaction rolled back: no dangling payment row
	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// TestOrderDeleteMissing verifies the zero-count delete contract
func TestOrderDeleteMissing(t *testing.T) {
	db := setupTestDB()
	userToken := createStandardUser(db)
	router := setupRouter(db, &fakeIntents{})

	w := doJSON(router, "DELETE", "/orders/123", nil, userToken)
	assert.Equal(t, 200, w.Code)
	var del database.DeleteResult
	json.Unmarshal(w.Body.Bytes(), &del)
	assert.Equal(t, int64(0), del.DeletedCount)
}

// TestOrderUpsertByAdmin covers PUT /order/:id upsert counts
func TestOrderUpsertByAdmin(t *testing.T) {
	db := setupTestDB()
	adminToken := createAdminUser(db)
	router := setupRouter(db, &fakeIntents{})

	input := OrderInput{Email: "user@test.com", ToolID: 1, OrderQuantity: 2}
	w := doJSON(router, "PUT", "/order/7", input, adminToken)
	assert.Equal(t, 200, w.Code)
	var first database.UpdateResult
	json.Unmarshal(w.Body.Bytes(), &first)
	assert.Equal(t, int64(1), first.UpsertedCount) // Miss created id 7

	w = doJSON(router, "PUT", "/order/7", input, adminToken)
	assert.Equal(t, 200, w.Code)
	var second database.UpdateResult
	json.Unmarshal(w.Body.Bytes(), &second)
	assert.Equal(t, int64(1), second.MatchedCount)
	assert.Equal(t, int64(0), second.UpsertedCount)
}
