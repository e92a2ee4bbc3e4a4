// payment.go - Handlers for payment intents and the payment log

package handlers // Declares the package name

import ( // Import required packages
	"math"     // Price to minor-units conversion
	"net/http" // HTTP status codes

	"tool-express-backend/database" // Payment repository
	"tool-express-backend/payment"  // Payment provider client

	"github.com/gin-gonic/gin" // Gin web framework
)

type IntentInput struct { // Validated request contract for intent creation
	Price float64 `json:"price" binding:"required,gt=0"` // Major units (e.g. dollars)
}

type PaymentHandler struct { // PaymentHandler bundles the payment endpoints
	Payments *database.PaymentRepo // Append-only payment log
	Intents  payment.IntentCreator // Payment provider (stubbed in tests)
}

func NewPaymentHandler(payments *database.PaymentRepo, intents payment.IntentCreator) *PaymentHandler { // Constructor
	return &PaymentHandler{Payments: payments, Intents: intents}
}

// List - GET /payments (admin): all recorded payments, newest first
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.Payments.List()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreateIntent - POST /create-payment-intent (auth): returns the client secret
// the frontend confirms the charge with. Amount is converted to minor units.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input IntentInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse and validate JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	amount := int64(math.Round(input.Price * 100)) // Dollars to cents
	secret, err := h.Intents.CreateIntent(amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
