// order.go - Handlers for the orders resource
// Order placement and payment completion are the two multi-write operations
// of the API; both run transactionally in the repository and publish a
// best-effort event on success.

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel error checks
	"log"      // Event publish failures are logged, not surfaced
	"net/http" // HTTP status codes

	"tool-express-backend/database" // Order repository
	"tool-express-backend/events"   // MQTT event publication
	"tool-express-backend/models"   // Order and Payment models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // For gorm.ErrRecordNotFound
)

type OrderInput struct { // Validated request contract for order placement
	Email         string `json:"email" binding:"required,email"`   // Owner (required)
	ToolID        uint   `json:"toolsId" binding:"required"`       // Referenced tool (required)
	OrderQuantity int    `json:"orderQuantity" binding:"required,min=1"` // Units ordered (>=1)
}

type PaymentInput struct { // Validated request contract for payment completion
	TransactionID string  `json:"transactionId" binding:"required"` // Provider transaction id
	Email         string  `json:"email"`                            // Payer's email
	Amount        float64 `json:"amount" binding:"gte=0"`           // Amount charged
}

type OrderHandler struct { // OrderHandler bundles the order endpoints
	Orders *database.OrderRepo // Injected repository
	Events *events.Publisher   // Optional event publisher (nil-safe)
}

func NewOrderHandler(orders *database.OrderRepo, pub *events.Publisher) *OrderHandler { // Constructor
	return &OrderHandler{Orders: orders, Events: pub}
}

// List - GET /orders (admin): all orders, newest first
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Orders.List()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get - GET /orders/:id (public): one order, 404 if missing
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.Orders.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListByEmail - GET /order/:email (public): orders owned by the email, newest first
func (h *OrderHandler) ListByEmail(c *gin.Context) {
	orders, err := h.Orders.ListByEmail(c.Param("email"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Place - POST /payOrders (auth): conditional stock decrement + order insert
// Insufficient stock (or an unknown tool) is a 409, and nothing is written.
func (h *OrderHandler) Place(c *gin.Context) {
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse and validate JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	order := models.Order{
		Email:         input.Email,
		ToolID:        input.ToolID,
		OrderQuantity: input.OrderQuantity,
	}
	result, err := h.Orders.Place(&order)
	if errors.Is(err, database.ErrInsufficientStock) {
		c.JSON(http.StatusConflict, gin.H{"message": "insufficient stock"})
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	if err := h.Events.Publish(events.TopicOrderPlaced, order); err != nil {
		log.Println("event publish failed:", err) // Best effort only
	}
	c.JSON(http.StatusOK, result)
}

// Upsert - PUT /order/:id (admin): update or create under the given id
func (h *OrderHandler) Upsert(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	order := models.Order{
		Email:         input.Email,
		ToolID:        input.ToolID,
		OrderQuantity: input.OrderQuantity,
	}
	result, err := h.Orders.Upsert(id, &order)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CompletePayment - PATCH /orders/:id (auth): append payment + mark order paid
func (h *OrderHandler) CompletePayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	pay := models.Payment{
		Email:         input.Email,
		TransactionID: input.TransactionID,
		Amount:        input.Amount,
	}
	result, err := h.Orders.CompletePayment(id, &pay)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	if err := h.Events.Publish(events.TopicPaymentCompleted, pay); err != nil {
		log.Println("event publish failed:", err) // Best effort only
	}
	c.JSON(http.StatusOK, result)
}

// Delete - DELETE /orders/:id (auth): delete, zero count for a missing id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result, err := h.Orders.Delete(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
