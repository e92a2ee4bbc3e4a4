// tool.go - Handlers for the tools (product) resource

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes

	"tool-express-backend/database" // Tool repository
	"tool-express-backend/models"   // Tool model

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // For gorm.ErrRecordNotFound
)

type ToolInput struct { // Validated request contract for create/upsert
	Name        string  `json:"name" binding:"required"`  // Tool name (required)
	Quantity    int     `json:"quantity" binding:"gte=0"` // Stock, never negative
	Price       float64 `json:"price" binding:"gte=0"`    // Unit price
	Description string  `json:"description"`              // Optional
	ImageURL    string  `json:"imageUrl"`                 // Optional
}

type ToolHandler struct { // ToolHandler bundles the tool endpoints
	Tools *database.ToolRepo // Injected repository
}

func NewToolHandler(tools *database.ToolRepo) *ToolHandler { // Constructor
	return &ToolHandler{Tools: tools}
}

// List - GET /tools (public): all tools, newest first
func (h *ToolHandler) List(c *gin.Context) {
	tools, err := h.Tools.List()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tools)
}

// Get - GET /tools/:id (auth): one tool, 404 if missing
func (h *ToolHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	tool, err := h.Tools.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "tool not found"})
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tool)
}

// Create - POST /tools (admin): insert a tool, return the insert acknowledgment
func (h *ToolHandler) Create(c *gin.Context) {
	var input ToolInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse and validate JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	tool := models.Tool{
		Name:        input.Name,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	result, err := h.Tools.Insert(&tool)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Upsert - PUT /tools/:id (admin): update or create under the given id
func (h *ToolHandler) Upsert(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input ToolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	tool := models.Tool{
		Name:        input.Name,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	result, err := h.Tools.Upsert(id, &tool)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete - DELETE /tools/:id (admin): delete, zero count for a missing id
func (h *ToolHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result, err := h.Tools.Delete(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
